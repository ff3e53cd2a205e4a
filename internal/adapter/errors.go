package adapter

import "errors"

// Sentinel errors mapped from HTTP response status codes. Callers match them
// with [errors.Is] without caring about the underlying transport.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoTokenInResponse is returned when a successful auth response
	// carries neither an access_token body field nor an Authorization header.
	ErrNoTokenInResponse = errors.New("no token in server response")
)
