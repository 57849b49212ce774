package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid payload wraps validator error", fmt.Errorf("%w: %w", service.ErrInvalidPayload, validators.ErrDanglingFactory), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"consumed refresh token", fmt.Errorf("%w: %w", service.ErrRefreshTokenInvalid, store.ErrRefreshTokenNotFound), http.StatusUnauthorized},
		{"not owner", service.ErrNotGameOwner, http.StatusForbidden},
		{"no access", service.ErrNoGameAccess, http.StatusForbidden},
		{"missing game", fmt.Errorf("%w: %w", service.ErrGameNotFound, store.ErrGameNotFound), http.StatusNotFound},
		{"login taken", service.ErrLoginAlreadyTaken, http.StatusConflict},
		{"bad query", fmt.Errorf("%w: author_id", ErrInvalidQueryParam), http.StatusBadRequest},
		{"query failure", fmt.Errorf("%w: timeout", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
