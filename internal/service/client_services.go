package service

import (
	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
)

// ClientServices bundles the client-side services behind a single handle.
type ClientServices struct {
	AuthService     ClientAuthService
	UserService     ClientUserService
	BookmarkService ClientBookmarkService
}

// NewClientServices wires the client-side services to the local storage and
// the server transport.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(localStore, serverAdapter, log),
		UserService:     NewClientUserService(serverAdapter),
		BookmarkService: NewClientBookmarkService(localStore, serverAdapter, log),
	}
}
