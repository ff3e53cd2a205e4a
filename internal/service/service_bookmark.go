package service

import (
	"context"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/internal/validators"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// Bookmark implements BookmarkService.
type Bookmark struct {
	bookmarks store.BookmarkRepository
	logger    *logger.Logger
}

// NewBookmarkService wires a BookmarkService to the bookmark repository.
func NewBookmarkService(bookmarks store.BookmarkRepository, log *logger.Logger) *Bookmark {
	return &Bookmark{
		bookmarks: bookmarks,
		logger:    log,
	}
}

func (s *Bookmark) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return s.bookmarks.GetAllBookmarks(ctx, userID)
}

func (s *Bookmark) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	return s.bookmarks.GetBookmarkByID(ctx, userID, bookmarkID)
}

func (s *Bookmark) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCreateBookmarkRequest(request); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	bookmark, err := s.bookmarks.CreateBookmark(ctx, models.Bookmark{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Link:        request.Link,
	})
	if err != nil {
		return models.Bookmark{}, err
	}
	log.Info().Str("func", "CreateBookmark").Int64("userID", userID).Int64("bookmarkID", bookmark.ID).Msg("bookmark created")

	return bookmark, nil
}

func (s *Bookmark) EditBookmark(ctx context.Context, userID, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error) {
	if err := validators.ValidateEditBookmarkRequest(patch); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if patch.IsEmpty() {
		return s.bookmarks.GetBookmarkByID(ctx, userID, bookmarkID)
	}

	return s.bookmarks.UpdateBookmark(ctx, userID, bookmarkID, patch)
}

func (s *Bookmark) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	err := s.bookmarks.DeleteBookmark(ctx, userID, bookmarkID)
	if err != nil {
		return err
	}
	log.Info().Str("func", "DeleteBookmark").Int64("userID", userID).Int64("bookmarkID", bookmarkID).Msg("bookmark deleted")

	return nil
}
