package services

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError signals that a single-entity lookup missed. Resource and ID
// feed the human-readable message and the 404 body.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// DuplicateError signals a uniqueness conflict, currently only on user email.
type DuplicateError struct {
	Resource string
	ID       string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

// ErrInvalidCredentials deliberately carries no detail: an unknown email and a
// wrong password must be indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level failures from request binding.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return strings.Join(parts, ", ")
}
