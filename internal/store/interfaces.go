package store

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUser applies the non-nil fields of patch to the account and
	// returns the updated row. A duplicate email yields ErrEmailAlreadyExists;
	// a missing account yields ErrNoUserWasFound.
	UpdateUser(ctx context.Context, id int64, patch models.EditUserRequest) (models.User, error)
}

// BookmarkRepository is the data-access contract for bookmarks. Every method
// is scoped by the owning user's ID: a bookmark owned by someone else is
// indistinguishable from a bookmark that does not exist.
type BookmarkRepository interface {
	// CreateBookmark persists a new bookmark owned by bookmark.UserID and
	// returns it with server-assigned fields populated.
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)

	// GetAllBookmarks returns every bookmark owned by userID in insertion order.
	GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)

	// GetBookmarkByID returns the bookmark with the given ID if it is owned
	// by userID, or ErrBookmarkNotFound.
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)

	// UpdateBookmark applies the non-nil fields of patch to the bookmark if
	// it is owned by userID and returns the updated row, or ErrBookmarkNotFound.
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error)

	// DeleteBookmark removes the bookmark if it is owned by userID.
	// Deleting an absent (or foreign) bookmark yields ErrBookmarkNotFound.
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}
