package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/mock"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func TestClientBookmarkService_List_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now().UTC().Truncate(time.Second)
	fromServer := []models.Bookmark{
		{ID: 1, UserID: 7, Title: "First Bookmark", CreatedAt: now, UpdatedAt: now},
		{ID: 2, UserID: 7, Title: "K8s for beginners", Link: "https://example.com/k8s", CreatedAt: now, UpdatedAt: now},
	}
	serverAdapter.EXPECT().GetBookmarks(gomock.Any()).Return(fromServer, nil)

	got, err := bookmarks.List(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	cached, err := localStore.GetAll(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "K8s for beginners", cached[1].Title)
}

func TestClientBookmarkService_List_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now()
	require.NoError(t, localStore.Put(context.Background(), models.Bookmark{ID: 1, UserID: 7, Title: "cached copy", CreatedAt: now, UpdatedAt: now}))

	serverAdapter.EXPECT().
		GetBookmarks(gomock.Any()).
		Return(nil, errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"))

	got, err := bookmarks.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cached copy", got[0].Title)
}

func TestClientBookmarkService_List_ServerErrorDoesNotFallBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now()
	require.NoError(t, localStore.Put(context.Background(), models.Bookmark{ID: 1, UserID: 7, Title: "stale", CreatedAt: now, UpdatedAt: now}))

	// 401 means the server answered: the token is bad, the cache must not
	// mask that.
	serverAdapter.EXPECT().GetBookmarks(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	_, err := bookmarks.List(context.Background(), 7)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientBookmarkService_Create_CachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now().UTC().Truncate(time.Second)
	request := models.CreateBookmarkRequest{Title: "First Bookmark", Link: "https://example.com"}
	serverAdapter.EXPECT().
		CreateBookmark(gomock.Any(), request).
		Return(models.Bookmark{ID: 11, UserID: 7, Title: "First Bookmark", Link: "https://example.com", CreatedAt: now, UpdatedAt: now}, nil)

	created, err := bookmarks.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	cached, err := localStore.GetAll(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "First Bookmark", cached[0].Title)
}

func TestClientBookmarkService_Edit_UpdatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now()
	require.NoError(t, localStore.Put(context.Background(), models.Bookmark{ID: 11, UserID: 7, Title: "old title", CreatedAt: now, UpdatedAt: now}))

	patch := models.EditBookmarkRequest{Title: strPtr("new title")}
	serverAdapter.EXPECT().
		EditBookmark(gomock.Any(), int64(11), patch).
		Return(models.Bookmark{ID: 11, UserID: 7, Title: "new title", CreatedAt: now, UpdatedAt: now}, nil)

	edited, err := bookmarks.Edit(context.Background(), 11, patch)
	require.NoError(t, err)
	assert.Equal(t, "new title", edited.Title)

	cached, err := localStore.GetAll(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "new title", cached[0].Title)
}

func TestClientBookmarkService_Delete_EvictsFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newClientStorages(t)
	bookmarks := NewClientBookmarkService(localStore, serverAdapter, logger.Nop())

	now := time.Now()
	require.NoError(t, localStore.Put(context.Background(), models.Bookmark{ID: 11, UserID: 7, Title: "doomed", CreatedAt: now, UpdatedAt: now}))

	serverAdapter.EXPECT().DeleteBookmark(gomock.Any(), int64(11)).Return(nil)

	require.NoError(t, bookmarks.Delete(context.Background(), 7, 11))

	cached, err := localStore.GetAll(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestClientBookmarkService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	bookmarks := NewClientBookmarkService(newClientStorages(t), serverAdapter, logger.Nop())

	serverAdapter.EXPECT().DeleteBookmark(gomock.Any(), int64(404)).Return(adapter.ErrNotFound)

	err := bookmarks.Delete(context.Background(), 7, 404)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
