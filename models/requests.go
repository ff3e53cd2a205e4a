package models

// AuthRequest is the body of POST /auth/signup and POST /auth/signin.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditUserRequest is the body of PATCH /users. All fields are optional;
// nil means "leave the current value untouched", which is why pointers are
// used instead of plain strings.
type EditUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r EditUserRequest) IsEmpty() bool {
	return r.Email == nil && r.FirstName == nil && r.LastName == nil
}

// CreateBookmarkRequest is the body of POST /bookmarks.
// Title is required; Description and Link are optional.
type CreateBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// EditBookmarkRequest is the body of PATCH /bookmarks/{id}. All fields are
// optional; only non-nil fields are applied to the stored record.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r EditBookmarkRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Link == nil
}
