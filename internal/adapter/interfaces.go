// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

// Package adapter provides the transport layer the terminal client uses to
// talk to the bookmark server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the bookmark
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful SignUp or SignIn.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account. On success it stores the returned
	// bearer token via SetToken and returns it with the UserID populated
	// from the token's subject claim.
	SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error)

	// SignIn authenticates with existing credentials. On success it stores
	// the returned bearer token via SetToken.
	SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error)

	// GetProfile fetches the authenticated user's profile.
	GetProfile(ctx context.Context) (models.User, error)

	// EditProfile applies a partial profile update and returns the updated
	// record.
	EditProfile(ctx context.Context, patch models.EditUserRequest) (models.User, error)

	// GetBookmarks lists all bookmarks owned by the authenticated user.
	GetBookmarks(ctx context.Context) ([]models.Bookmark, error)

	// GetBookmark fetches one bookmark by ID. Returns ErrNotFound (wrapped)
	// when the bookmark does not exist or belongs to another user.
	GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error)

	// CreateBookmark stores a new bookmark and returns it with
	// server-assigned fields populated.
	CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error)

	// EditBookmark applies a partial update to one bookmark.
	EditBookmark(ctx context.Context, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error)

	// DeleteBookmark removes one bookmark. Returns ErrNotFound (wrapped)
	// when the bookmark does not exist.
	DeleteBookmark(ctx context.Context, bookmarkID int64) error
}
