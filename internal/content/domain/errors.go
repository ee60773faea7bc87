package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFound wraps ErrNotFound with the entity kind so messages read naturally.
func NotFound(kind Kind) error {
	return fmt.Errorf("%s %w", kind.Singular(), ErrNotFound)
}

func SlugConflict(kind Kind, slug string) error {
	return fmt.Errorf("%w: %s slug %q already exists", ErrConflict, kind.Singular(), slug)
}
