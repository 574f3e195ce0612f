package handler

import (
	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/handler/http"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/service"
)

// Handlers groups the transport-layer handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers from configuration. An empty
// HTTP address is a fatal misconfiguration since there would be nothing to
// serve.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
