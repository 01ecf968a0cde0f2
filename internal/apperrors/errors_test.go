package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewInternalServerError("failed to save debt", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "failed to save debt: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var appErr *apperrors.AppError
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "failed to save debt", appErr.Message)
}

func TestIsBusinessRule(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", fmt.Errorf("%w: name is required", apperrors.ErrValidation), true},
		{"duplicate phone", apperrors.ErrDuplicatePhone, true},
		{"invalid amount", apperrors.ErrInvalidAmount, true},
		{"exceeds remaining", fmt.Errorf("wrapped: %w", apperrors.ErrExceedsRemaining), true},
		{"already settled", apperrors.ErrAlreadySettled, true},
		{"has dependents", apperrors.ErrHasDependents, true},
		{"not found", apperrors.ErrNotFound, false},
		{"internal", apperrors.NewInternalServerError("boom", errors.New("x")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.IsBusinessRule(tt.err))
		})
	}
}
