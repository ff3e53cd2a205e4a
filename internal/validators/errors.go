package validators

import "errors"

// Validation errors returned when request payloads violate field rules.
// Handlers map all of them to HTTP 400 Bad Request.
var (
	// ErrEmptyEmail indicates a missing or blank email field.
	ErrEmptyEmail = errors.New("email must not be empty")

	// ErrInvalidEmail indicates an email that does not parse as an address.
	ErrInvalidEmail = errors.New("email is not a valid address")

	// ErrEmptyPassword indicates a missing or blank password field.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrEmptyTitle indicates a missing or blank bookmark title.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrInvalidLink indicates a bookmark link that is not URL-shaped.
	ErrInvalidLink = errors.New("link is not a valid URL")
)
