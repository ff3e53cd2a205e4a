package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// SQLiteSessionRepository implements SessionRepository on the local cache.
type SQLiteSessionRepository struct {
	db *ClientDB
}

// NewSQLiteSessionRepository returns a SessionRepository backed by db.
func NewSQLiteSessionRepository(db *ClientDB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db}
}

func (r *SQLiteSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSessionQuery,
		session.UserID, session.Email, session.Token, session.SavedAt)
	if err != nil {
		r.db.logger.Err(err).Str("func", "SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *SQLiteSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	row := r.db.QueryRowContext(ctx, getSessionQuery)

	var session models.Session
	err := row.Scan(&session.UserID, &session.Email, &session.Token, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		r.db.logger.Err(err).Str("func", "GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *SQLiteSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionQuery); err != nil {
		r.db.logger.Err(err).Str("func", "DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
