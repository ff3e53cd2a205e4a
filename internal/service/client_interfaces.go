package service

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// ClientAuthService is the client-side contract for account access and the
// locally cached sign-in session.
type ClientAuthService interface {
	// SignUp registers a new account on the server, stores the resulting
	// session locally, and returns it.
	SignUp(ctx context.Context, request models.AuthRequest) (models.Session, error)

	// SignIn authenticates against the server, stores the resulting session
	// locally, and returns it.
	SignIn(ctx context.Context, request models.AuthRequest) (models.Session, error)

	// RestoreSession loads the locally cached session, if any, and primes
	// the transport with its token. Returns store.ErrLocalSessionNotFound
	// when no session is cached.
	RestoreSession(ctx context.Context) (models.Session, error)

	// SignOut drops the cached session and clears the transport token.
	SignOut(ctx context.Context) error
}

// ClientUserService is the client-side contract for profile reads and edits.
type ClientUserService interface {
	GetProfile(ctx context.Context) (models.User, error)
	EditProfile(ctx context.Context, patch models.EditUserRequest) (models.User, error)
}

// ClientBookmarkService is the client-side contract for bookmark CRUD. Reads
// prefer the server and fall back to the local cache when the server cannot
// be reached; writes go to the server and update the cache on success.
type ClientBookmarkService interface {
	// List returns the user's bookmarks. On server success the local cache
	// is refreshed; when the server is unreachable the cached copy is
	// served instead.
	List(ctx context.Context, userID int64) ([]models.Bookmark, error)

	// Get returns one bookmark from the server.
	Get(ctx context.Context, bookmarkID int64) (models.Bookmark, error)

	// Create stores a new bookmark on the server and caches it locally.
	Create(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error)

	// Edit applies a partial update on the server and refreshes the cached
	// copy.
	Edit(ctx context.Context, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error)

	// Delete removes a bookmark on the server and evicts it from the cache.
	Delete(ctx context.Context, userID, bookmarkID int64) error
}
