package service

import (
	"context"

	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
)

// fallbackVersion is reported when no version was injected at build or
// configuration time.
const fallbackVersion = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = fallbackVersion
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
