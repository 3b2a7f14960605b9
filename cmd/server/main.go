package main

import (
	"context"
	"fmt"

	"github.com/avstepanov/docvault/internal/adapter"
	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/handler"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/internal/server"
	"github.com/avstepanov/docvault/internal/service"
	"github.com/avstepanov/docvault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docvault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	billing, err := adapter.NewHTTPBillingAdapter(cfg.Billing, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating billing adapter")
	}

	services := service.NewServices(*storages, billing, *cfg, log)

	ctx := context.Background()

	// Warm the in-memory state before serving: document list, catalog with
	// fallback pricing, and the current entitlement.
	services.DocumentService.Refresh(ctx)
	services.SubscriptionService.LoadCatalogWithRetry(ctx)
	if err = services.SubscriptionService.RefreshEntitlement(ctx); err != nil {
		log.Warn().Msg("initial entitlement recompute failed: " + err.Error())
	}

	services.TransactionListener.Start(ctx, cfg.Billing.ListenerPollInterval)
	defer services.TransactionListener.Stop()

	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
