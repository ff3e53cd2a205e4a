// Package handler bundles the transport handlers of the application.
package handler

import (
	"github.com/avolkhov/go-bookmark-keeper/internal/handler/http"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
