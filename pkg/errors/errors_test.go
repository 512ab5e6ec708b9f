package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := ProductNotFound("soft-winter-jacket")
	assert.Contains(t, e.Error(), "PRODUCT_NOT_FOUND")
	assert.Contains(t, e.Error(), "soft-winter-jacket")
}

func TestAppError_Unwrap(t *testing.T) {
	e := VariantNotFound("Black", "Medium")
	assert.ErrorIs(t, e, ErrVariantNotFound)

	e = VariantUnavailable("Black", "Medium")
	assert.ErrorIs(t, e, ErrVariantUnavailable)
}

func TestSubmissionFailed_PreservesCause(t *testing.T) {
	cause := errors.New("upstream timed out")
	e := SubmissionFailed(cause)

	require.ErrorIs(t, e, ErrSubmissionFailed)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, http.StatusBadGateway, e.Status)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error product not found", ProductNotFound("x"), http.StatusNotFound},
		{"app error incomplete selection", IncompleteSelection("size"), http.StatusBadRequest},
		{"app error variant unavailable", VariantUnavailable("Red", "L"), http.StatusConflict},
		{"app error submission failed", SubmissionFailed(errors.New("boom")), http.StatusBadGateway},
		{"sentinel not found", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"sentinel variant not found", fmt.Errorf("resolve: %w", ErrVariantNotFound), http.StatusNotFound},
		{"sentinel variant unavailable", fmt.Errorf("resolve: %w", ErrVariantUnavailable), http.StatusConflict},
		{"sentinel invalid input", fmt.Errorf("parse: %w", ErrInvalidInput), http.StatusBadRequest},
		{"sentinel service unavailable", fmt.Errorf("call: %w", ErrServiceUnavail), http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
