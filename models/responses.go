package models

// TokenResponse is the success body of the signup and signin endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the structured error body returned for every failed
// request. The message is intentionally generic for authentication failures
// so that responses do not reveal whether an account exists.
type ErrorResponse struct {
	Error string `json:"error"`
}
