package http

import (
	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/service"
)

// Handler carries the service layer and per-application settings needed by
// the HTTP handlers and middleware.
type Handler struct {
	services *service.Services

	// corsOrigins is the configured list of browser origins allowed to call
	// the API. Empty means the CORS layer is not mounted.
	corsOrigins []string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: cfg.CORSOrigins,
		logger:      logger,
	}
}
