package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/draft-ratings/internal/platform/validation"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrNotFound         = errors.New("resource not found")
)

// ValidationError rejects a whole ingestion batch. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Violations []validation.Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	first := e.Violations[0]
	return fmt.Sprintf("validation failed: %s %s (%d violation(s))", first.Path, first.Message, len(e.Violations))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
