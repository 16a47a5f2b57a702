package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-timesheet/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("wrapped app error keeps details", func(t *testing.T) {
		err := fmt.Errorf("update entry: %w", apperror.ErrInvalidInput.WithDetails([]string{"x"}))

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, []string{"x"}, httpErr.Details)
	})

	t.Run("unknown error hides cause", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	withDetails := apperror.ErrInvalidInput.WithDetails("detail")

	assert.Nil(t, apperror.ErrInvalidInput.Details)
	assert.ErrorIs(t, withDetails, apperror.ErrInvalidInput)
	assert.NotErrorIs(t, withDetails, apperror.ErrNotFound)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Employee string `validate:"required"`
		Status   string `validate:"oneof=DRAFT LOCKED"`
	}

	err := validator.New().Struct(payload{Status: "PAID"})
	mapped := apperror.MapValidationError(err)

	httpErr := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Employee is required", httpErr.Message)
	details, ok := httpErr.Details.([]apperror.FieldDetail)
	if assert.True(t, ok) {
		assert.Len(t, details, 2)
		assert.Equal(t, "Status", details[1].Field)
	}

	other := apperror.ToHTTP(apperror.MapValidationError(errors.New("EOF")))
	assert.Equal(t, apperror.CodeInvalidInput, other.Code)
}
