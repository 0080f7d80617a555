package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"eleave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMapValidationError(t *testing.T) {
	type form struct {
		Email    string `validate:"required"`
		Duration string `validate:"omitempty,oneof=SHORT HALF_DAY FULL_DAY"`
	}

	v := validator.New()

	t.Run("missing required field", func(t *testing.T) {
		mapped := apperror.MapValidationError(v.Struct(form{Duration: "SHORT"}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Email is required", appErr.Message)
	})

	t.Run("failed tag other than required", func(t *testing.T) {
		mapped := apperror.MapValidationError(v.Struct(form{Email: "eka@example.com", Duration: "WEEKEND"}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Duration is invalid", appErr.Message)
	})

	t.Run("non-validator errors fall back to a generic message", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Invalid input", appErr.Message)
	})
}
