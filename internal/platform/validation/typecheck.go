package validation

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// checkTypes walks a generically decoded document against t and reports
// every value whose JSON type cannot populate the target field. null is
// always accepted; "required" rules catch it later.
func checkTypes(value any, t reflect.Type, path string) []Violation {
	if value == nil || t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]any)
		if !ok {
			return []Violation{{Path: path, Message: "must be an object"}}
		}
		var out []Violation
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name == "" {
				name = field.Name
			}
			child, ok := lookupKey(obj, name)
			if !ok {
				continue
			}
			out = append(out, checkTypes(child, field.Type, joinPath(path, name))...)
		}
		return out
	case reflect.Slice, reflect.Array:
		items, ok := value.([]any)
		if !ok {
			return []Violation{{Path: path, Message: "must be an array"}}
		}
		var out []Violation
		for i, item := range items {
			out = append(out, checkTypes(item, t.Elem(), joinPath(path, strconv.Itoa(i)))...)
		}
		return out
	case reflect.String:
		if _, ok := value.(string); !ok {
			return []Violation{{Path: path, Message: "must be a string"}}
		}
	case reflect.Bool:
		if _, ok := value.(bool); !ok {
			return []Violation{{Path: path, Message: "must be a boolean"}}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, ok := value.(json.Number)
		if !ok {
			return []Violation{{Path: path, Message: "must be an integer"}}
		}
		if _, err := strconv.ParseInt(num.String(), 10, t.Bits()); err != nil {
			return []Violation{{Path: path, Message: "must be an integer"}}
		}
	case reflect.Float32, reflect.Float64:
		num, ok := value.(json.Number)
		if !ok {
			return []Violation{{Path: path, Message: "must be a number"}}
		}
		if _, err := strconv.ParseFloat(num.String(), t.Bits()); err != nil {
			return []Violation{{Path: path, Message: "must be a number"}}
		}
	}
	return nil
}

// lookupKey mirrors the decoder: exact key first, then case-insensitive.
func lookupKey(obj map[string]any, name string) (any, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for key, v := range obj {
		if strings.EqualFold(key, name) {
			return v, true
		}
	}
	return nil, false
}

func joinPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}
