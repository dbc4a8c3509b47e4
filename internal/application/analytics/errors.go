package analytics

import (
	"errors"
	"fmt"
)

// ErrValidation matches every ValidationError with errors.Is.
var ErrValidation = errors.New("analytics: validation failed")

// ValidationError reports an analysis the input table cannot satisfy.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
