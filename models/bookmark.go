package models

import "time"

// Bookmark is a link saved by a single owning user. Every read and mutation
// of a bookmark is scoped by UserID, so one user can never observe another
// user's records.
type Bookmark struct {
	// ID is the server-assigned unique identifier of the bookmark.
	ID int64 `json:"id"`

	// UserID is the owner of the bookmark. It is set on creation and is
	// immutable afterwards.
	UserID int64 `json:"userId"`

	// Title is a required short label for the bookmark.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Link is the saved URL.
	Link string `json:"link,omitempty"`

	// CreatedAt is the timestamp when the bookmark was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}
