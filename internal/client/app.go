// Package client assembles the terminal bookmark client: local storage, the
// server transport, the client services, and the TUI, plus the top-level run
// loop that ties the authentication flow to the main screen.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/internal/tui"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// App is the terminal client application.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client application from already constructed services and UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: log}
}

// Run drives the client: restore or establish a session, then hand control to
// the main loop. Signing out returns to the authentication flow.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.loginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.SignOut(ctx); err != nil {
			a.logger.Err(err).Msg("sign out")
		}
		return a.Run()
	}

	return nil
}

func (a *App) loginFlow(ctx context.Context) (models.Session, error) {
	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Int64("userID", session.UserID).Msg("signed in")
	return session, nil
}
