package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-leave-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app errors keep their status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "Name already exists", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "Name already exists", httpErr.Message)
	})

	t.Run("unknown errors become an opaque 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: deadlock detected"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "deadlock")
	})

	t.Run("wrapped app errors unwrap through ToHTTP", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := apperror.Wrap(inner, apperror.CodeServiceUnavailable, "Database unavailable", http.StatusServiceUnavailable)

		assert.ErrorIs(t, err, inner)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
		assert.Equal(t, "Database unavailable", httpErr.Message)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "boom", http.StatusInternalServerError))
	})
}

func TestMapValidationError(t *testing.T) {
	t.Run("non validator errors fall back to the generic 422", func(t *testing.T) {
		got := apperror.MapValidationError(errors.New("unexpected end of JSON input"))

		assert.ErrorIs(t, got, apperror.ErrInvalidInput)
		httpErr := apperror.ToHTTP(got)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
	})
}
