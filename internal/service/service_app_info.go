package service

import (
	"context"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
)

const unknownAppVersion = "unknown"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs the AppInfoService. An empty configured
// version is reported as "unknown" rather than failing startup.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = unknownAppVersion
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
