package store

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the client's sign-in state between runs.
// At most one session is stored at a time.
type SessionRepository interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session or ErrLocalSessionNotFound.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the stored session. Deleting an absent session
	// is not an error.
	DeleteSession(ctx context.Context) error
}

// BookmarkCacheRepository is the client's local read cache of the
// authenticated user's bookmarks, refreshed from the server on every
// successful listing and served when the server is unreachable.
type BookmarkCacheRepository interface {
	// ReplaceAll atomically swaps the cached bookmark set of userID.
	ReplaceAll(ctx context.Context, userID int64, bookmarks []models.Bookmark) error

	// GetAll returns the cached bookmarks of userID in insertion order.
	GetAll(ctx context.Context, userID int64) ([]models.Bookmark, error)

	// Put inserts or updates one cached bookmark.
	Put(ctx context.Context, bookmark models.Bookmark) error

	// Delete removes one cached bookmark. Deleting an absent entry is not
	// an error.
	Delete(ctx context.Context, userID, bookmarkID int64) error
}
