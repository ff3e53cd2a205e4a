package store

import (
	"context"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// SQLiteBookmarkCacheRepository implements BookmarkCacheRepository on the
// local cache.
type SQLiteBookmarkCacheRepository struct {
	db *ClientDB
}

// NewSQLiteBookmarkCacheRepository returns a BookmarkCacheRepository backed
// by db.
func NewSQLiteBookmarkCacheRepository(db *ClientDB) *SQLiteBookmarkCacheRepository {
	return &SQLiteBookmarkCacheRepository{db: db}
}

func (r *SQLiteBookmarkCacheRepository) ReplaceAll(ctx context.Context, userID int64, bookmarks []models.Bookmark) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.db.logger.Err(err).Str("func", "ReplaceAll").Msg("failed to begin cache transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearCachedBookmarksQuery, userID); err != nil {
		r.db.logger.Err(err).Str("func", "ReplaceAll").Msg("failed to clear cached bookmarks")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, b := range bookmarks {
		_, err = tx.ExecContext(ctx, putCachedBookmarkQuery,
			b.ID, b.UserID, b.Title, b.Description, b.Link, b.CreatedAt, b.UpdatedAt)
		if err != nil {
			r.db.logger.Err(err).Str("func", "ReplaceAll").Int64("bookmarkID", b.ID).Msg("failed to cache bookmark")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteBookmarkCacheRepository) GetAll(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, getAllCachedBookmarksQuery, userID)
	if err != nil {
		r.db.logger.Err(err).Str("func", "GetAll").Msg("failed to query cached bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		err = rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			r.db.logger.Err(err).Str("func", "GetAll").Msg("failed to scan cached bookmark")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

func (r *SQLiteBookmarkCacheRepository) Put(ctx context.Context, bookmark models.Bookmark) error {
	_, err := r.db.ExecContext(ctx, putCachedBookmarkQuery,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link,
		bookmark.CreatedAt, bookmark.UpdatedAt)
	if err != nil {
		r.db.logger.Err(err).Str("func", "Put").Int64("bookmarkID", bookmark.ID).Msg("failed to cache bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *SQLiteBookmarkCacheRepository) Delete(ctx context.Context, userID, bookmarkID int64) error {
	if _, err := r.db.ExecContext(ctx, deleteCachedBookmarkQuery, userID, bookmarkID); err != nil {
		r.db.logger.Err(err).Str("func", "Delete").Int64("bookmarkID", bookmarkID).Msg("failed to evict cached bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
