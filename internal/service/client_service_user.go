package service

import (
	"context"

	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter
}

// NewClientUserService wires a ClientUserService to the server transport.
func NewClientUserService(serverAdapter adapter.ServerAdapter) ClientUserService {
	return &clientUserService{adapter: serverAdapter}
}

func (u *clientUserService) GetProfile(ctx context.Context) (models.User, error) {
	return u.adapter.GetProfile(ctx)
}

func (u *clientUserService) EditProfile(ctx context.Context, patch models.EditUserRequest) (models.User, error) {
	return u.adapter.EditProfile(ctx, patch)
}
