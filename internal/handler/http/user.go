package http

import (
	"net/http"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, userID)
	if err != nil {
		writeError(w, r, err, "failed to load profile")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write user response")
	}
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, http.StatusText(http.StatusUnauthorized))
		return
	}

	var patch models.EditUserRequest
	if err := decodeJSON(r, &patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	user, err := h.services.UserService.EditUser(ctx, userID, patch)
	if err != nil {
		writeError(w, r, err, "failed to edit profile")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write user response")
	}
}
