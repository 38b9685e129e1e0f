package application

import (
	"errors"

	repo "github.com/oksasatya/go-directory-portal/internal/domain/repository"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrNotFound           = repo.ErrNotFound
)

// ValidationError carries user-facing messages keyed by form field.
// It matches ErrValidation and, when set, Cause with errors.Is.
type ValidationError struct {
	Fields  map[string]string
	Summary string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Summary != "" {
		return e.Summary
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// Message returns the summary, or the first field message in a stable order.
func (e *ValidationError) Message() string {
	if e.Summary != "" {
		return e.Summary
	}
	for _, f := range fieldOrder {
		if m, ok := e.Fields[f]; ok {
			return m
		}
	}
	return ErrValidation.Error()
}

var fieldOrder = []string{"name", "username", "email", "password", "confirm"}
