package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// withURLParam attaches a chi route context carrying the {id} parameter.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBookmarks_Success(t *testing.T) {
	want := []models.Bookmark{
		{ID: 1, UserID: 42, Title: "First Bookmark"},
		{ID: 2, UserID: 42, Title: "K8s for beginners"},
	}

	bookmarks := &mockBookmarkService{
		getBookmarksFn: func(_ context.Context, userID int64) ([]models.Bookmark, error) {
			assert.Equal(t, int64(42), userID)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil).WithContext(authedContext(42))
	rec := httptest.NewRecorder()

	h.getBookmarks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "First Bookmark", got[0].Title)
}

func TestGetBookmarks_EmptyList(t *testing.T) {
	bookmarks := &mockBookmarkService{
		getBookmarksFn: func(_ context.Context, _ int64) ([]models.Bookmark, error) {
			return []models.Bookmark{}, nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil).WithContext(authedContext(42))
	rec := httptest.NewRecorder()

	h.getBookmarks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetBookmarkByID_Success(t *testing.T) {
	want := models.Bookmark{ID: 5, UserID: 42, Title: "K8s for beginners"}

	bookmarks := &mockBookmarkService{
		getBookmarkByIDFn: func(_ context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), bookmarkID)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/bookmarks/5", nil).WithContext(authedContext(42))
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.getBookmarkByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want.Title, got.Title)
}

func TestGetBookmarkByID_BadID(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodGet, "/bookmarks/abc", nil).WithContext(authedContext(42))
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.getBookmarkByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookmarkByID_NotFound(t *testing.T) {
	bookmarks := &mockBookmarkService{
		getBookmarkByIDFn: func(_ context.Context, _, _ int64) (models.Bookmark, error) {
			return models.Bookmark{}, store.ErrBookmarkNotFound
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/bookmarks/404", nil).WithContext(authedContext(42))
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.getBookmarkByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookmark_Success(t *testing.T) {
	request := models.CreateBookmarkRequest{
		Title: "First Bookmark",
		Link:  "https://www.youtube.com/watch?v=d6WC5n9G_sM",
	}
	want := models.Bookmark{ID: 1, UserID: 42, Title: request.Title, Link: request.Link}

	bookmarks := &mockBookmarkService{
		createBookmarkFn: func(_ context.Context, userID int64, got models.CreateBookmarkRequest) (models.Bookmark, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, request, got)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(jsonBody(t, request))).WithContext(authedContext(42))
	rec := httptest.NewRecorder()

	h.createBookmark(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(42), got.UserID)
}

func TestCreateBookmark_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader("{")).WithContext(authedContext(42))
	rec := httptest.NewRecorder()

	h.createBookmark(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditBookmark_Success(t *testing.T) {
	patch := models.EditBookmarkRequest{Title: strPtr("renamed")}
	want := models.Bookmark{ID: 5, UserID: 42, Title: "renamed"}

	bookmarks := &mockBookmarkService{
		editBookmarkFn: func(_ context.Context, userID, bookmarkID int64, got models.EditBookmarkRequest) (models.Bookmark, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), bookmarkID)
			assert.Equal(t, patch, got)
			return want, nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodPatch, "/bookmarks/5", strings.NewReader(jsonBody(t, patch))).WithContext(authedContext(42))
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.editBookmark(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteBookmark_Success(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, userID, bookmarkID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), bookmarkID)
			return nil
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/bookmarks/5", nil).WithContext(authedContext(42))
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteBookmark_NotFound(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, _, _ int64) error {
			return store.ErrBookmarkNotFound
		},
	}

	h := newTestHandler(t, nil, nil, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/bookmarks/404", nil).WithContext(authedContext(42))
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
