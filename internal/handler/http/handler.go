package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// decodeJSON decodes the request body into dst. Unknown fields are rejected
// so that typos in request payloads fail loudly instead of being ignored.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// writeError sends a JSON error body with the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(message)

	status := statusFromError(err)
	body := models.ErrorResponse{Error: message}
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		body.Error = http.StatusText(http.StatusInternalServerError)
	}

	if _, err = utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Msg("failed to write error response")
	}
}
