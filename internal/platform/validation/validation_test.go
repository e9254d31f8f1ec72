package validation

import (
	"context"
	"errors"
	"testing"
)

type item struct {
	PickNumber *int   `json:"pick_number" validate:"required,gt=0"`
	Label      string `json:"label" validate:"required,color"`
}

type batch struct {
	Stamp string `json:"stamp" validate:"required"`
	Items []item `json:"items" validate:"required,min=1,dive"`
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v := New()
	if err := v.RegisterString("color", func(s string) bool { return s == "red" || s == "blue" }); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func TestParse_Valid(t *testing.T) {
	v := newTestValidator(t)

	res, err := Parse[batch](context.Background(), v, []byte(`{"stamp":"s1","items":[{"pick_number":1,"label":"red"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, ok := res.Value()
	if !ok {
		t.Fatalf("expected valid result, got %+v", res.Violations())
	}
	if got.Stamp != "s1" || len(got.Items) != 1 || *got.Items[0].PickNumber != 1 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestParse_ViolationPathsUseJSONNamesAndIndexes(t *testing.T) {
	v := newTestValidator(t)

	raw := `{"stamp":"s1","items":[
		{"pick_number":1,"label":"red"},
		{"pick_number":2,"label":"red"},
		{"pick_number":3,"label":"blue"},
		{"pick_number":-4,"label":"green"}
	]}`
	res, err := Parse[batch](context.Background(), v, []byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Valid() {
		t.Fatalf("expected invalid result")
	}
	if _, ok := res.Value(); ok {
		t.Fatalf("invalid result must not expose a value")
	}

	paths := map[string]string{}
	for _, violation := range res.Violations() {
		paths[violation.Path] = violation.Message
	}
	if msg, ok := paths["items.3.pick_number"]; !ok || msg != "must be greater than 0" {
		t.Fatalf("expected items.3.pick_number violation, got %+v", res.Violations())
	}
	if _, ok := paths["items.3.label"]; !ok {
		t.Fatalf("expected items.3.label violation, got %+v", res.Violations())
	}
}

func TestParse_MissingFields(t *testing.T) {
	v := newTestValidator(t)

	res, err := Parse[batch](context.Background(), v, []byte(`{"items":[]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	paths := map[string]bool{}
	for _, violation := range res.Violations() {
		paths[violation.Path] = true
	}
	if !paths["stamp"] || !paths["items"] {
		t.Fatalf("expected stamp and items violations, got %+v", res.Violations())
	}
}

func TestParse_Malformed(t *testing.T) {
	v := newTestValidator(t)

	for _, raw := range []string{``, `{`, `not json`, `[1,2]`, `"stamp"`, "{\"stamp\":\"s\xff1\",\"items\":[]}"} {
		_, err := Parse[batch](context.Background(), v, []byte(raw))
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("Parse(%q) expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestParse_WrongTypesBecomeViolations(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		raw      string
		wantPath string
		wantMsg  string
	}{
		{
			name:     "string for integer",
			raw:      `{"stamp":"s1","items":[{"pick_number":"one","label":"red"}]}`,
			wantPath: "items.0.pick_number",
			wantMsg:  "must be an integer",
		},
		{
			name:     "fraction for integer",
			raw:      `{"stamp":"s1","items":[{"pick_number":1,"label":"red"},{"pick_number":1.5,"label":"red"}]}`,
			wantPath: "items.1.pick_number",
			wantMsg:  "must be an integer",
		},
		{
			name:     "number for string",
			raw:      `{"stamp":7,"items":[{"pick_number":1,"label":"red"}]}`,
			wantPath: "stamp",
			wantMsg:  "must be a string",
		},
		{
			name:     "object for array",
			raw:      `{"stamp":"s1","items":{"pick_number":1}}`,
			wantPath: "items",
			wantMsg:  "must be an array",
		},
		{
			name:     "scalar for object",
			raw:      `{"stamp":"s1","items":[3]}`,
			wantPath: "items.0",
			wantMsg:  "must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse[batch](context.Background(), v, []byte(tt.raw))
			if err != nil {
				t.Fatalf("wrong types must not be malformed: %v", err)
			}
			got := res.Violations()
			if len(got) != 1 || got[0].Path != tt.wantPath || got[0].Message != tt.wantMsg {
				t.Fatalf("violations=%+v want %s %q", got, tt.wantPath, tt.wantMsg)
			}
		})
	}
}

func TestParse_NullLeavesRequiredRuleInCharge(t *testing.T) {
	v := newTestValidator(t)

	res, err := Parse[batch](context.Background(), v, []byte(`{"stamp":"s1","items":[{"pick_number":null,"label":"red"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := res.Violations()
	if len(got) != 1 || got[0].Path != "items.0.pick_number" || got[0].Message != "is required" {
		t.Fatalf("unexpected violations: %+v", got)
	}
}

func TestMalformedError(t *testing.T) {
	cause := errors.New("invalid char")
	err := error(&MalformedError{Cause: cause})

	if !errors.Is(err, ErrMalformed) || !errors.Is(err, cause) {
		t.Fatalf("expected error to match ErrMalformed and its cause")
	}
	if err.Error() != "invalid char" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
