package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func TestGetMe_Success(t *testing.T) {
	want := models.User{ID: 7, Email: "ian@gmail.com", FirstName: "Ian"}

	users := &mockUserService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, users, nil)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil).WithContext(authedContext(7))
	rec := httptest.NewRecorder()

	h.getMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.FirstName, got.FirstName)

	// the password hash must never leak into the response
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetMe_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, nil, &mockUserService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	h.getMe(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditUser_Success(t *testing.T) {
	patch := models.EditUserRequest{FirstName: strPtr("Ian"), LastName: strPtr("Doe")}
	want := models.User{ID: 7, Email: "ian@gmail.com", FirstName: "Ian", LastName: "Doe"}

	users := &mockUserService{
		editUserFn: func(_ context.Context, userID int64, got models.EditUserRequest) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, patch, got)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, users, nil)
	req := httptest.NewRequest(http.MethodPatch, "/users", strings.NewReader(jsonBody(t, patch))).WithContext(authedContext(7))
	rec := httptest.NewRecorder()

	h.editUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Ian", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
}

func TestEditUser_UnknownField(t *testing.T) {
	h := newTestHandler(t, nil, &mockUserService{}, nil)

	body := `{"firstName":"Ian","role":"admin"}`
	req := httptest.NewRequest(http.MethodPatch, "/users", strings.NewReader(body)).WithContext(authedContext(7))
	rec := httptest.NewRecorder()

	h.editUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditUser_DuplicateEmail(t *testing.T) {
	users := &mockUserService{
		editUserFn: func(_ context.Context, _ int64, _ models.EditUserRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, nil, users, nil)
	body := jsonBody(t, models.EditUserRequest{Email: strPtr("taken@example.com")})
	req := httptest.NewRequest(http.MethodPatch, "/users", strings.NewReader(body)).WithContext(authedContext(7))
	rec := httptest.NewRecorder()

	h.editUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func strPtr(s string) *string { return &s }
