package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func (h *Handler) getBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	bookmarks, err := h.services.BookmarkService.GetBookmarks(ctx, userID)
	if err != nil {
		writeError(w, r, err, "failed to list bookmarks")
		return
	}

	if _, err = utils.WriteJSON(w, bookmarks, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write bookmarks response")
	}
}

func (h *Handler) getBookmarkByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, ErrInvalidID.Error())
		return
	}

	bookmark, err := h.services.BookmarkService.GetBookmarkByID(ctx, userID, bookmarkID)
	if err != nil {
		writeError(w, r, err, "failed to get bookmark")
		return
	}

	if _, err = utils.WriteJSON(w, bookmark, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write bookmark response")
	}
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.CreateBookmarkRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	bookmark, err := h.services.BookmarkService.CreateBookmark(ctx, userID, request)
	if err != nil {
		writeError(w, r, err, "failed to create bookmark")
		return
	}

	if _, err = utils.WriteJSON(w, bookmark, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write bookmark response")
	}
}

func (h *Handler) editBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, ErrInvalidID.Error())
		return
	}

	var patch models.EditBookmarkRequest
	if err = decodeJSON(r, &patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	bookmark, err := h.services.BookmarkService.EditBookmark(ctx, userID, bookmarkID, patch)
	if err != nil {
		writeError(w, r, err, "failed to edit bookmark")
		return
	}

	if _, err = utils.WriteJSON(w, bookmark, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write bookmark response")
	}
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, ErrInvalidID.Error())
		return
	}

	if err = h.services.BookmarkService.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		writeError(w, r, err, "failed to delete bookmark")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkIDFromRequest parses the {id} path parameter.
func bookmarkIDFromRequest(r *http.Request) (int64, error) {
	rawID := chi.URLParam(r, "id")
	bookmarkID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return bookmarkID, nil
}
