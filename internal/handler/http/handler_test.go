// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn     func(ctx context.Context, request models.AuthRequest) (models.Token, error)
	signInFn     func(ctx context.Context, request models.AuthRequest) (models.Token, error)
	parseTokenFn func(tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	return m.signInFn(ctx, request)
}

func (m *mockAuthService) ParseToken(tokenString string) (models.Token, error) {
	return m.parseTokenFn(tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
	editUserFn    func(ctx context.Context, userID int64, patch models.EditUserRequest) (models.User, error)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserService) EditUser(ctx context.Context, userID int64, patch models.EditUserRequest) (models.User, error) {
	return m.editUserFn(ctx, userID, patch)
}

// mockBookmarkService implements service.BookmarkService for unit tests.
type mockBookmarkService struct {
	getBookmarksFn    func(ctx context.Context, userID int64) ([]models.Bookmark, error)
	getBookmarkByIDFn func(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	createBookmarkFn  func(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error)
	editBookmarkFn    func(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error)
	deleteBookmarkFn  func(ctx context.Context, userID, bookmarkID int64) error
}

func (m *mockBookmarkService) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return m.getBookmarksFn(ctx, userID)
}

func (m *mockBookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	return m.getBookmarkByIDFn(ctx, userID, bookmarkID)
}

func (m *mockBookmarkService) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	return m.createBookmarkFn(ctx, userID, request)
}

func (m *mockBookmarkService) EditBookmark(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error) {
	return m.editBookmarkFn(ctx, userID, bookmarkID, patch)
}

func (m *mockBookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	return m.deleteBookmarkFn(ctx, userID, bookmarkID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service mocks. Nil mocks
// are fine for handlers the test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, users service.UserService, bookmarks service.BookmarkService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		UserService:     users,
		BookmarkService: bookmarks,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// authedContext returns a context carrying userID the way the auth
// middleware stores it.
func authedContext(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
