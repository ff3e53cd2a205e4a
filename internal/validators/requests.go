// Package validators holds the request-payload validation rules applied at
// the service boundary, before any business logic or storage access runs.
// Each function returns a sentinel error from this package; handlers map
// those to HTTP 400 responses.
package validators

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// ValidateAuthRequest checks the signup/signin payload: both email and
// password must be present, and the email must parse as an address.
func ValidateAuthRequest(req models.AuthRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrInvalidEmail
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidateEditUserRequest checks a profile patch. Absent fields are fine;
// a provided email must be non-empty and well formed.
func ValidateEditUserRequest(req models.EditUserRequest) error {
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return ErrEmptyEmail
		}
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return ErrInvalidEmail
		}
	}

	return nil
}

// ValidateCreateBookmarkRequest checks a bookmark creation payload.
// Title is required; link, when present, must be URL-shaped.
func ValidateCreateBookmarkRequest(req models.CreateBookmarkRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if req.Link != "" {
		if err := validateLink(req.Link); err != nil {
			return err
		}
	}

	return nil
}

// ValidateEditBookmarkRequest checks a bookmark patch. Absent fields are
// fine; a provided title must be non-empty and a provided link URL-shaped.
func ValidateEditBookmarkRequest(req models.EditBookmarkRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrEmptyTitle
	}
	if req.Link != nil && *req.Link != "" {
		if err := validateLink(*req.Link); err != nil {
			return err
		}
	}

	return nil
}

func validateLink(link string) error {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidLink
	}
	return nil
}
