package http

import (
	"fmt"
	"net/http"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AuthRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	token, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		writeError(w, r, err, "sign up failed")
		return
	}
	log.Info().Str("email", request.Email).Msg("user signed up")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write token response")
	}
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AuthRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	token, err := h.services.AuthService.SignIn(ctx, request)
	if err != nil {
		writeError(w, r, err, "sign in failed")
		return
	}
	log.Info().Str("email", request.Email).Msg("user signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write token response")
	}
}
