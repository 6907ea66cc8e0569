package errors

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for authentication failures (bad token, unknown user).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks the rights for an action.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned when request data fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned for state conflicts, including unique constraint violations.
	ErrConflict = errors.New("resource state conflict")
)

// Scoring pipeline errors
var (
	// ErrReferenceDataMissing means a required catalog row (assessment type, dimension,
	// classification) is absent. It points at a data-seeding defect.
	ErrReferenceDataMissing = errors.New("reference data missing")

	// ErrModelUnavailable means an inference artifact failed to load. Fatal at startup.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrNoScorableDimensions means every predicted dimension failed reference resolution.
	ErrNoScorableDimensions = errors.New("no scorable dimensions")

	// ErrInvalidInput means caller-supplied data is malformed (non-UUID reference, non-finite answer).
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistence wraps database failures that forced a rollback.
	ErrPersistence = errors.New("persistence failure")
)

// ReferenceDataMissingError names the catalog row that could not be found.
type ReferenceDataMissingError struct {
	Kind string // assessment_type, dimension, holland_code, personality_type, value_category
	Name string
}

func (e *ReferenceDataMissingError) Error() string {
	return fmt.Sprintf("reference data missing: %s %q", e.Kind, e.Name)
}

func (e *ReferenceDataMissingError) Unwrap() error { return ErrReferenceDataMissing }

// ModelUnavailableError is returned by the model loader.
type ModelUnavailableError struct {
	Model string
	Err   error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model %s unavailable: %v", e.Model, e.Err)
}

func (e *ModelUnavailableError) Unwrap() []error { return []error{ErrModelUnavailable, e.Err} }

// NoScorableDimensionsError is returned when zero dimensions of a submission resolve.
type NoScorableDimensionsError struct {
	Assessment string
}

func (e *NoScorableDimensionsError) Error() string {
	return fmt.Sprintf("no scorable dimensions for %s assessment", e.Assessment)
}

func (e *NoScorableDimensionsError) Unwrap() error { return ErrNoScorableDimensions }

// InvalidInputError describes which caller-supplied field was rejected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// PersistenceError wraps a failed database operation.
// Constraint violations additionally match ErrConflict.
type PersistenceError struct {
	Op         string
	Err        error
	Constraint bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Constraint {
		return []error{ErrPersistence, ErrConflict, e.Err}
	}
	return []error{ErrPersistence, e.Err}
}
