package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// PostgresBookmarkRepository implements BookmarkRepository on top of
// PostgreSQL. All queries carry a user_id predicate so that bookmarks are
// only ever visible to their owner.
type PostgresBookmarkRepository struct {
	db *DB
}

// NewPostgresBookmarkRepository returns a BookmarkRepository backed by db.
func NewPostgresBookmarkRepository(db *DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := r.db.logger.With().Str("repository", "PostgresBookmarkRepository").Logger()

	row := r.db.QueryRowContext(ctx, createBookmarkQuery,
		bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link)

	created, err := scanBookmark(row)
	if err != nil {
		log.Err(err).Str("func", "CreateBookmark").Msg("failed to insert bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *PostgresBookmarkRepository) GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := r.db.logger.With().Str("repository", "PostgresBookmarkRepository").Logger()

	rows, err := r.db.QueryContext(ctx, getAllBookmarksQuery, userID)
	if err != nil {
		log.Err(err).Str("func", "GetAllBookmarks").Msg("failed to query bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		err = rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "GetAllBookmarks").Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "GetAllBookmarks").Msg("bookmark rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

func (r *PostgresBookmarkRepository) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := r.db.logger.With().Str("repository", "PostgresBookmarkRepository").Logger()

	row := r.db.QueryRowContext(ctx, getBookmarkByIDQuery, userID, bookmarkID)

	bookmark, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).Str("func", "GetBookmarkByID").Msg("failed to query bookmark by id")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bookmark, nil
}

func (r *PostgresBookmarkRepository) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error) {
	log := r.db.logger.With().Str("repository", "PostgresBookmarkRepository").Logger()

	query, args, err := buildUpdateBookmarkQuery(userID, bookmarkID, patch)
	if err != nil {
		log.Err(err).Str("func", "UpdateBookmark").Msg("failed to build update query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	bookmark, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).Str("func", "UpdateBookmark").Msg("failed to update bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return bookmark, nil
}

func (r *PostgresBookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := r.db.logger.With().Str("repository", "PostgresBookmarkRepository").Logger()

	result, err := r.db.ExecContext(ctx, deleteBookmarkQuery, userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", "DeleteBookmark").Msg("failed to delete bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "DeleteBookmark").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}

func scanBookmark(row *sql.Row) (models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Bookmark{}, err
	}

	return b, nil
}
