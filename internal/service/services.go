// Package service holds the business logic between the HTTP layer and the
// repositories: credential handling, token issuance, and per-user bookmark
// rules.
package service

import (
	"github.com/avolkhov/go-bookmark-keeper/internal/config"
	"github.com/avolkhov/go-bookmark-keeper/internal/crypto"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
)

// Services bundles the server-side services behind their interfaces.
type Services struct {
	AuthService
	UserService
	BookmarkService
}

// NewServices wires all services to the given repositories and settings.
func NewServices(storages *store.Storages, app config.App, log *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), app, log),
		UserService:     NewUserService(storages.UserRepository, log),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, log),
	}
}
