package namenorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "caron and acute", in: "Luka Dončić", want: "luka doncic"},
		{name: "ascii passthrough", in: "luka doncic", want: "luka doncic"},
		{name: "surrounding space and case", in: "  LeBron James ", want: "lebron james"},
		{name: "upper case diacritics", in: "DONČIĆ", want: "doncic"},
		{name: "d with stroke", in: "Đorđe", want: "djordje"},
		{name: "dotless i and cedilla", in: "Alperen Şengün", want: "alperen sengun"},
		{name: "combining marks", in: "Nikola Jokić", want: "nikola jokic"},
		{name: "generic accent", in: "José Alvarado", want: "jose alvarado"},
		{name: "turkish dotless", in: "Furkan Korkmaz ı", want: "furkan korkmaz i"},
		{name: "cedilla g", in: "Ģirts", want: "girts"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIndex_FirstMatchWins(t *testing.T) {
	idx := NewIndex[int](2)
	idx.Add("Nikola Jokić", 70)
	idx.Add("nikola jokic", 12)

	got, ok := idx.Lookup("NIKOLA JOKIC")
	if !ok {
		t.Fatalf("expected lookup hit")
	}
	if got != 70 {
		t.Fatalf("expected first stored value 70, got %d", got)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected one key, got %d", idx.Len())
	}
	if _, ok := idx.Lookup("Unknown Player"); ok {
		t.Fatalf("did not expect lookup hit for unknown player")
	}
}
