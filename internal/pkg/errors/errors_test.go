package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "reference data",
			err:      &ReferenceDataMissingError{Kind: "dimension", Name: "Openness"},
			sentinel: ErrReferenceDataMissing,
			message:  `reference data missing: dimension "Openness"`,
		},
		{
			name:     "no scorable dimensions",
			err:      &NoScorableDimensionsError{Assessment: "value"},
			sentinel: ErrNoScorableDimensions,
			message:  "no scorable dimensions for value assessment",
		},
		{
			name:     "invalid input",
			err:      &InvalidInputError{Field: "q1", Reason: "answer must be a finite number"},
			sentinel: ErrInvalidInput,
			message:  "invalid input: q1: answer must be a finite number",
		},
		{
			name:     "model unavailable",
			err:      &ModelUnavailableError{Model: "interest", Err: os.ErrNotExist},
			sentinel: ErrModelUnavailable,
			message:  "model interest unavailable: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)

			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestModelUnavailableError_KeepsCause(t *testing.T) {
	err := &ModelUnavailableError{Model: "value", Err: os.ErrNotExist}

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrPersistence))
}

func TestPersistenceError_Constraint(t *testing.T) {
	cause := errors.New("duplicate key value")

	plain := &PersistenceError{Op: "save_scores", Err: cause}
	constraint := &PersistenceError{Op: "save_scores", Err: cause, Constraint: true}

	assert.True(t, errors.Is(plain, ErrPersistence))
	assert.True(t, errors.Is(plain, cause))
	assert.False(t, errors.Is(plain, ErrConflict))

	assert.True(t, errors.Is(constraint, ErrPersistence))
	assert.True(t, errors.Is(constraint, ErrConflict))
	assert.Equal(t, "persistence failure during save_scores: duplicate key value", constraint.Error())
}

func TestErrorsAs_ExtractsDetails(t *testing.T) {
	err := fmt.Errorf("submit: %w", &ReferenceDataMissingError{Kind: "holland_code", Name: "RIA"})

	var ref *ReferenceDataMissingError
	if assert.True(t, errors.As(err, &ref)) {
		assert.Equal(t, "holland_code", ref.Kind)
		assert.Equal(t, "RIA", ref.Name)
	}
}
