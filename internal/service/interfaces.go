package service

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// AuthService covers account registration, credential checks, and bearer
// token issuance/verification.
type AuthService interface {
	// SignUp registers a new account and returns a signed token for it.
	// A taken email yields store.ErrEmailAlreadyExists; a malformed request
	// yields ErrInvalidDataProvided.
	SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error)

	// SignIn verifies the credentials and returns a signed token.
	// Unknown email and wrong password both yield ErrWrongCredentials.
	SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error)

	// ParseToken verifies a compact JWT and returns the parsed token, or
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(tokenString string) (models.Token, error)
}

// UserService covers profile reads and edits for an authenticated user.
type UserService interface {
	// GetUserByID returns the account identified by userID, or
	// store.ErrNoUserWasFound.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// EditUser applies the non-nil fields of patch to the account and
	// returns the updated record. An empty patch is a no-op read.
	EditUser(ctx context.Context, userID int64, patch models.EditUserRequest) (models.User, error)
}

// BookmarkService covers per-user bookmark CRUD. All methods operate within
// the scope of userID: bookmarks of other users are invisible.
type BookmarkService interface {
	GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error)
	EditBookmark(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}
