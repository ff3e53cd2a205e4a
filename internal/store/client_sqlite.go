package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// ErrLocalSessionNotFound is returned when no sign-in session has been
// cached locally yet.
var ErrLocalSessionNotFound = errors.New("local session not found")

// ClientDB wraps the SQLite handle used by the client-side repositories.
type ClientDB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the client's local SQLite
// cache database at path and applies the cache schema. An empty path opens
// an in-memory database, which is handy for tests.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*ClientDB, error) {
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create cache dir: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite cache")
		return nil, fmt.Errorf("error opening sqlite cache: %w", err)
	}

	// the sqlite driver does not tolerate concurrent writers on one file
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting sqlite cache (ping)")
		return nil, err
	}

	db := &ClientDB{DB: conn, logger: log}
	if err = db.migrate(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("sqlite cache ready")

	return db, nil
}

func (db *ClientDB) migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, createClientSchema); err != nil {
		return fmt.Errorf("error applying sqlite cache schema: %w", err)
	}

	return nil
}
