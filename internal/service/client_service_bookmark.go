package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

type clientBookmarkService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientBookmarkService wires a ClientBookmarkService to the local cache
// and the server transport.
func NewClientBookmarkService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientBookmarkService {
	return &clientBookmarkService{localStore: localStore, adapter: serverAdapter, logger: log}
}

func (b *clientBookmarkService) List(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	bookmarks, err := b.adapter.GetBookmarks(ctx)
	if err != nil {
		if serverResponded(err) {
			return nil, err
		}

		b.logger.Err(err).Msg("server unreachable, serving bookmarks from local cache")

		cached, cacheErr := b.localStore.GetAll(ctx, userID)
		if cacheErr != nil {
			return nil, fmt.Errorf("read bookmark cache: %w", cacheErr)
		}

		return cached, nil
	}

	if err = b.localStore.ReplaceAll(ctx, userID, bookmarks); err != nil {
		b.logger.Err(err).Msg("failed to refresh bookmark cache")
	}

	return bookmarks, nil
}

func (b *clientBookmarkService) Get(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	return b.adapter.GetBookmark(ctx, bookmarkID)
}

func (b *clientBookmarkService) Create(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	bookmark, err := b.adapter.CreateBookmark(ctx, request)
	if err != nil {
		return models.Bookmark{}, err
	}

	if err = b.localStore.Put(ctx, bookmark); err != nil {
		b.logger.Err(err).Msg("failed to cache created bookmark")
	}

	return bookmark, nil
}

func (b *clientBookmarkService) Edit(ctx context.Context, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error) {
	bookmark, err := b.adapter.EditBookmark(ctx, bookmarkID, patch)
	if err != nil {
		return models.Bookmark{}, err
	}

	if err = b.localStore.Put(ctx, bookmark); err != nil {
		b.logger.Err(err).Msg("failed to cache edited bookmark")
	}

	return bookmark, nil
}

func (b *clientBookmarkService) Delete(ctx context.Context, userID, bookmarkID int64) error {
	if err := b.adapter.DeleteBookmark(ctx, bookmarkID); err != nil {
		return err
	}

	if err := b.localStore.BookmarkCacheRepository.Delete(ctx, userID, bookmarkID); err != nil {
		b.logger.Err(err).Msg("failed to evict deleted bookmark from cache")
	}

	return nil
}

// serverResponded reports whether err carries a status the server actually
// returned, as opposed to a transport failure. Only transport failures may
// fall back to the local cache.
func serverResponded(err error) bool {
	return errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrConflict) ||
		errors.Is(err, adapter.ErrInternalServerError)
}
