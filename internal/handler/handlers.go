package handler

import (
	"github.com/avstepanov/docvault/internal/handler/http"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/internal/service"
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
