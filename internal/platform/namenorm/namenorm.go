// Package namenorm folds player names into a comparison key so records from
// sources with different diacritic handling can be joined on name.
package namenorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTable covers letters that do not decompose into a base letter plus a
// combining mark, along with the common Balkan and Turkish forms.
var foldTable = strings.NewReplacer(
	"ć", "c",
	"č", "c",
	"š", "s",
	"ž", "z",
	"đ", "dj",
	"ň", "n",
	"ř", "r",
	"ı", "i",
	"ş", "s",
	"ģ", "g",
)

// Normalize trims, lower-cases and strips diacritics. Two names that differ
// only in case, surrounding space or accents produce the same key.
func Normalize(name string) string {
	folded := foldTable.Replace(strings.ToLower(strings.TrimSpace(name)))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, folded)
	if err != nil {
		return folded
	}
	return out
}

// Index maps normalized names to values. The first value stored under a key
// wins, later duplicates are ignored.
type Index[V any] struct {
	items map[string]V
}

func NewIndex[V any](capacity int) *Index[V] {
	return &Index[V]{items: make(map[string]V, capacity)}
}

func (i *Index[V]) Add(name string, value V) {
	key := Normalize(name)
	if _, exists := i.items[key]; exists {
		return
	}
	i.items[key] = value
}

func (i *Index[V]) Lookup(name string) (V, bool) {
	v, ok := i.items[Normalize(name)]
	return v, ok
}

func (i *Index[V]) Len() int {
	return len(i.items)
}
