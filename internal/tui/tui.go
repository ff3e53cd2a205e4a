// Package tui implements the terminal user interface of the bookmark client:
// an authentication flow (menu, sign in, sign up) and a main loop for browsing
// and editing bookmarks.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// ErrUserQuit is returned by LoginFlow when the user quits before signing in.
var ErrUserQuit = errors.New("user quit the program")

// TUI drives the interactive terminal screens on top of the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// New creates the terminal UI bound to the client services.
func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// LoginFlow runs the authentication screens (menu, sign in, sign up) and
// returns the established session. Returns ErrUserQuit if the user exits
// without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the bookmark browser for an authenticated session. Returns
// logout=true when the user chose to sign out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
