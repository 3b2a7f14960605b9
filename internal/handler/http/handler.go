package http

import (
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/internal/service"
)

// Handler owns the HTTP surface of the vault. Every route method hangs off
// it and reaches the domain through services only.
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
