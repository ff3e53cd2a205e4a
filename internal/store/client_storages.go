package store

import (
	"context"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/config"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories: the cached sign-in
// session and the local bookmark cache.
type ClientStorages struct {
	SessionRepository
	BookmarkCacheRepository
}

// NewClientStorages opens the local SQLite cache and wires the client-side
// repositories to it.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.CachePath, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite cache connection error: %w", err)
	}

	return &ClientStorages{
		SessionRepository:       NewSQLiteSessionRepository(db),
		BookmarkCacheRepository: NewSQLiteBookmarkCacheRepository(db),
	}, nil
}
