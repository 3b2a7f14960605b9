package service

import (
	"github.com/avstepanov/docvault/internal/adapter"
	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/internal/store"
)

type Services struct {
	AppInfoService      AppInfoService
	DocumentService     DocumentService
	SubscriptionService SubscriptionService
	TransactionListener TransactionListenerJob
}

func NewServices(storages store.Storages, billing adapter.BillingAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	subscription := NewSubscriptionService(billing, cfg.Billing, logger)

	return &Services{
		AppInfoService:      NewAppInfoService(cfg.App, logger),
		DocumentService:     NewDocumentService(storages.Documents, storages.Files, logger),
		SubscriptionService: subscription,
		TransactionListener: NewTransactionListenerJob(billing, subscription, logger),
	}
}
