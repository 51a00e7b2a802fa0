package analysis

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a field the pipeline refuses to default.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
