package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request fails validation
	// before any storage or crypto work is attempted.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned on sign-in when the email is unknown or
	// the password does not match. Both cases collapse into one error so the
	// response does not reveal which part was wrong.
	ErrWrongCredentials = errors.New("wrong login or password")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer, or lifetime checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a fresh JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
