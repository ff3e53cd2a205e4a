package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// NavigateTo asks the root model to switch the active page. An optional
// Payload message is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult carries the outcome of an async sign-in or sign-up command.
// A nil Err finishes the authentication flow.
type AuthResult struct {
	Err     error
	Session models.Session
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

type listLoadedMsg struct {
	bookmarks []models.Bookmark
	err       error
}

type bookmarkSavedMsg struct {
	err error
}

type bookmarkDeletedMsg struct {
	err error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}
