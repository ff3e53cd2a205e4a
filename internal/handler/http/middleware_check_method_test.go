package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// TestCheckHTTPMethod_UnsupportedMethodHidden verifies that calling a known
// route with an unsupported HTTP method yields 404 rather than chi's
// default 405, so unsupported methods do not reveal route existence.
func TestCheckHTTPMethod_UnsupportedMethodHidden(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/auth/signup", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_SupportedMethodPasses(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.AuthRequest) (models.Token, error) {
			return stubToken("token"), nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// empty body fails JSON decoding, but the route itself is reachable
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
	assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
}
