package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func newClientDB(t *testing.T) *ClientDB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "cache.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSQLiteSessionRepository_SaveAndGet(t *testing.T) {
	repo := NewSQLiteSessionRepository(newClientDB(t))
	ctx := context.Background()

	session := models.Session{
		UserID:  7,
		Email:   "ian@gmail.com",
		Token:   "signed.jwt.token",
		SavedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SaveSession(ctx, session))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.Token, got.Token)
}

func TestSQLiteSessionRepository_SaveReplacesPrevious(t *testing.T) {
	repo := NewSQLiteSessionRepository(newClientDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, models.Session{UserID: 1, Email: "old@example.com", Token: "old", SavedAt: time.Now()}))
	require.NoError(t, repo.SaveSession(ctx, models.Session{UserID: 2, Email: "new@example.com", Token: "new", SavedAt: time.Now()}))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "new", got.Token)
}

func TestSQLiteSessionRepository_GetMissing(t *testing.T) {
	repo := NewSQLiteSessionRepository(newClientDB(t))

	_, err := repo.GetSession(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSQLiteSessionRepository_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepository(newClientDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, models.Session{UserID: 7, Email: "ian@gmail.com", Token: "t", SavedAt: time.Now()}))
	require.NoError(t, repo.DeleteSession(ctx))

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	// deleting again is a no-op
	assert.NoError(t, repo.DeleteSession(ctx))
}

func TestSQLiteBookmarkCacheRepository_ReplaceAllAndGetAll(t *testing.T) {
	repo := NewSQLiteBookmarkCacheRepository(newClientDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	first := models.Bookmark{ID: 1, UserID: 7, Title: "First Bookmark", CreatedAt: now, UpdatedAt: now}
	second := models.Bookmark{ID: 2, UserID: 7, Title: "K8s for beginners", Link: "https://example.com/k8s", CreatedAt: now, UpdatedAt: now}
	foreign := models.Bookmark{ID: 3, UserID: 99, Title: "someone else's", CreatedAt: now, UpdatedAt: now}

	require.NoError(t, repo.Put(ctx, foreign))
	require.NoError(t, repo.ReplaceAll(ctx, 7, []models.Bookmark{first, second}))

	got, err := repo.GetAll(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First Bookmark", got[0].Title)
	assert.Equal(t, "K8s for beginners", got[1].Title)

	// other users' cache entries survive a ReplaceAll
	other, err := repo.GetAll(ctx, 99)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSQLiteBookmarkCacheRepository_PutUpdatesExisting(t *testing.T) {
	repo := NewSQLiteBookmarkCacheRepository(newClientDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Put(ctx, models.Bookmark{ID: 1, UserID: 7, Title: "old title", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Put(ctx, models.Bookmark{ID: 1, UserID: 7, Title: "new title", CreatedAt: now, UpdatedAt: now}))

	got, err := repo.GetAll(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new title", got[0].Title)
}

func TestSQLiteBookmarkCacheRepository_Delete(t *testing.T) {
	repo := NewSQLiteBookmarkCacheRepository(newClientDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Put(ctx, models.Bookmark{ID: 1, UserID: 7, Title: "x", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Delete(ctx, 7, 1))

	got, err := repo.GetAll(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}
