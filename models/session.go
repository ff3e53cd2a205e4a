package models

import "time"

// Session is the locally cached sign-in state of the terminal client. It
// lets the client restore the last signed-in identity and bearer token
// between runs without prompting for credentials again.
type Session struct {
	UserID  int64     `json:"userId"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}
