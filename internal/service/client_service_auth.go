package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientAuthService wires a ClientAuthService to the local session cache
// and the server transport.
func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) SignUp(ctx context.Context, request models.AuthRequest) (models.Session, error) {
	token, err := a.adapter.SignUp(ctx, request)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign up on server: %w", err)
	}

	return a.storeSession(ctx, token)
}

func (a *clientAuthService) SignIn(ctx context.Context, request models.AuthRequest) (models.Session, error) {
	token, err := a.adapter.SignIn(ctx, request)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in on server: %w", err)
	}

	return a.storeSession(ctx, token)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	a.logger.Info().Int64("userID", session.UserID).Msg("restored local session")

	return session, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.localStore.DeleteSession(ctx); err != nil {
		return fmt.Errorf("drop local session: %w", err)
	}

	return nil
}

func (a *clientAuthService) storeSession(ctx context.Context, token models.Token) (models.Session, error) {
	session := models.Session{
		UserID:  token.UserID,
		Email:   token.Email,
		Token:   token.SignedString,
		SavedAt: time.Now(),
	}

	// A failed cache write should not cancel a successful sign-in; the
	// session simply won't survive a restart.
	if err := a.localStore.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Msg("failed to cache session locally")
	}

	return session, nil
}
