package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{e.ErrInvalidQuantity, http.StatusBadRequest},
		{e.ErrInvalidProductID, http.StatusBadRequest},
		{e.ErrPasswordTooShort, http.StatusBadRequest},
		{e.ErrUnauthenticated, http.StatusUnauthorized},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrAdminRightsRequired, http.StatusForbidden},
		{e.ErrProductUnavailable, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrEmailTaken, http.StatusConflict},
		{e.ErrConflict, http.StatusConflict},
		{e.ErrInvalidTransition, http.StatusConflict},
		{e.ErrEmptyCart, http.StatusUnprocessableEntity},
		{e.ErrInvalidCartState, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.wantCode, code, "%v", tt.err)
	}
}

func TestToHTTPResponse_WrappedError(t *testing.T) {
	wrapped := e.Wrap("CartUseCase.AddItem", e.Wrap("product 5", e.ErrProductUnavailable))

	code, msg := ToHTTPResponse(wrapped)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrProductUnavailable.Error(), msg, "клиент видит только корневую ошибку")
}

func TestToHTTPResponse_UnknownErrorHidden(t *testing.T) {
	code, msg := ToHTTPResponse(fmt.Errorf("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg, "внутренние детали не утекают клиенту")
}

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"599.99", 59999, false},
		{"600", 60000, false},
		{"0.01", 1, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"1.999", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePriceToCents(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
