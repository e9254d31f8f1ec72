package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

// ErrMalformed marks input that could not be decoded at all.
var ErrMalformed = errors.New("malformed payload")

// MalformedError carries the decoder's reason and matches ErrMalformed.
type MalformedError struct {
	Cause error
}

func (e *MalformedError) Error() string {
	if e.Cause == nil {
		return ErrMalformed.Error()
	}
	return e.Cause.Error()
}

func (e *MalformedError) Unwrap() error { return e.Cause }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// decodeAPI rejects invalid UTF-8 and keeps numbers verbatim so integer
// fields can be told apart from fractional ones.
var decodeAPI = sonic.Config{UseNumber: true, ValidateString: true}.Froze()

// Violation is one failed field rule. Path uses json names joined by dots,
// with slice indexes as segments, e.g. allpicks.3.pick_number.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is either a valid value or the list of violations that rejected it.
type Result[T any] struct {
	value      T
	violations []Violation
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Invalid[T any](violations []Violation) Result[T] {
	return Result[T]{violations: violations}
}

func (r Result[T]) Valid() bool {
	return len(r.violations) == 0
}

// Value returns the decoded payload; ok is false for an invalid result.
func (r Result[T]) Value() (T, bool) {
	if !r.Valid() {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T]) Violations() []Violation {
	return r.violations
}

// Validator wraps go-playground validator with json-named field paths.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// RegisterString adds a custom tag that checks string fields with fn.
func (v *Validator) RegisterString(tag string, fn func(string) bool) error {
	if err := v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register %s validation: %w", tag, err)
	}
	return nil
}

// Check runs the struct rules and converts failures into violations. A
// non-nil error means payload could not be validated at all.
func (v *Validator) Check(ctx context.Context, payload any) ([]Violation, error) {
	err := v.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate payload: %w", err)
	}

	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Path: fieldPath(fe.Namespace()), Message: message(fe)})
	}
	return out, nil
}

// Parse decodes raw JSON into T and validates it. Syntax errors, invalid
// UTF-8 and a non-object top level are malformed and never reach the field
// rules. Values of the wrong JSON type are reported as violations.
func Parse[T any](ctx context.Context, v *Validator, raw []byte) (Result[T], error) {
	if !utf8.Valid(raw) {
		return Result[T]{}, &MalformedError{Cause: errors.New("payload is not valid UTF-8")}
	}
	var tree any
	if err := decodeAPI.Unmarshal(raw, &tree); err != nil {
		return Result[T]{}, &MalformedError{Cause: err}
	}
	if _, ok := tree.(map[string]any); !ok {
		return Result[T]{}, &MalformedError{Cause: errors.New("payload must be a JSON object")}
	}

	var payload T
	if violations := checkTypes(tree, reflect.TypeOf(payload), ""); len(violations) > 0 {
		return Invalid[T](violations), nil
	}
	if err := decodeAPI.Unmarshal(raw, &payload); err != nil {
		return Result[T]{}, &MalformedError{Cause: err}
	}

	violations, err := v.Check(ctx, &payload)
	if err != nil {
		return Result[T]{}, err
	}
	if len(violations) > 0 {
		return Invalid[T](violations), nil
	}
	return Ok(payload), nil
}

func fieldPath(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be at least " + fe.Param()
	case "datetime":
		return "must match format " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
