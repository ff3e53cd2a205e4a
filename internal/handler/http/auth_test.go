// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

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

	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

var validCredentials = models.AuthRequest{
	Email:    "ian@gmail.com",
	Password: "123",
}

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

// TestSignUp_Success verifies that a valid registration request results in
// 201 Created, an Authorization header, and an access_token body.
func TestSignUp_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signUpFn: func(_ context.Context, request models.AuthRequest) (models.Token, error) {
			assert.Equal(t, validCredentials, request)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var response models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.AccessToken)
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestSignUp_UnknownField verifies that payloads with unexpected fields are
// rejected instead of silently accepted.
func TestSignUp_UnknownField(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	body := `{"email":"ian@gmail.com","password":"123","admin":true}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.AuthRequest) (models.Token, error) {
			return models.Token{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUp_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.AuthRequest) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, models.AuthRequest{Email: "bad"})))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// signIn
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signInFn: func(_ context.Context, request models.AuthRequest) (models.Token, error) {
			assert.Equal(t, validCredentials, request)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var response models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.AccessToken)
}

func TestSignIn_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.AuthRequest) (models.Token, error) {
			return models.Token{}, service.ErrWrongCredentials
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignIn_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
