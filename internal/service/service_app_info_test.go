package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_GetAppVersion_Fallback(t *testing.T) {
	svc := NewAppInfoService(config.App{}, logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
