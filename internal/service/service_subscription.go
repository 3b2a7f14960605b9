// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/avstepanov/docvault/internal/adapter"
	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

const (
	defaultCatalogAttempts   = 3
	defaultCatalogRetryDelay = 2 * time.Second
)

type subscriptionManager struct {
	billing adapter.BillingAdapter

	catalogAttempts   int
	catalogRetryDelay time.Duration

	logger *logger.Logger

	mu          sync.Mutex
	products    []models.Product
	catalogErr  error
	entitlement models.Entitlement
}

func NewSubscriptionService(billing adapter.BillingAdapter, cfg config.Billing, logger *logger.Logger) SubscriptionService {
	attempts := cfg.CatalogAttempts
	if attempts <= 0 {
		attempts = defaultCatalogAttempts
	}
	delay := cfg.CatalogRetryDelay
	if delay <= 0 {
		delay = defaultCatalogRetryDelay
	}

	return &subscriptionManager{
		billing:           billing,
		catalogAttempts:   attempts,
		catalogRetryDelay: delay,
		logger:            logger,
	}
}

// LoadCatalog implements SubscriptionService. An empty result counts as a
// failure: all three tiers are expected to exist on the platform.
func (s *subscriptionManager) LoadCatalog(ctx context.Context) error {
	products, err := s.billing.FetchProducts(ctx, models.ProductIDs())
	if err == nil && len(products) == 0 {
		err = errors.New("catalog returned no products")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Err(err).Str("func", "LoadCatalog").Msg("catalog load failed")
		s.catalogErr = err
		return err
	}

	sortProductsByPrice(products)
	s.products = products
	s.catalogErr = nil

	return nil
}

// LoadCatalogWithRetry implements SubscriptionService. Attempts are bounded
// by the configured ceiling with a constant inter-attempt delay; when they
// are exhausted the hardcoded fallback table takes over, so every tier ends
// up with a price either way.
func (s *subscriptionManager) LoadCatalogWithRetry(ctx context.Context) {
	backoff := retry.WithMaxRetries(uint64(s.catalogAttempts-1), retry.NewConstant(s.catalogRetryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if loadErr := s.LoadCatalog(ctx); loadErr != nil {
			return retry.RetryableError(loadErr)
		}
		return nil
	})
	if err == nil {
		return
	}

	s.logger.Warn().Str("func", "LoadCatalogWithRetry").Msg("catalog unavailable, switching to fallback pricing: " + err.Error())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = fallbackCatalog()
}

func (s *subscriptionManager) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.products)
}

func (s *subscriptionManager) CatalogError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalogErr
}

// Purchase implements SubscriptionService. A verified purchase finishes the
// transaction and triggers a full entitlement recompute. A user cancellation
// changes nothing; a pending purchase reports an informational message and
// leaves entitlement untouched until the platform settles it.
func (s *subscriptionManager) Purchase(ctx context.Context, productID string) (models.PurchaseResponse, error) {
	if !slices.Contains(models.ProductIDs(), productID) {
		return models.PurchaseResponse{}, ErrUnknownProduct
	}

	txn, err := s.billing.Purchase(ctx, productID)
	switch {
	case err == nil:
		if finishErr := s.billing.FinishTransaction(ctx, txn.ID); finishErr != nil {
			s.logger.Err(finishErr).Str("func", "Purchase").Str("transaction_id", txn.ID).Msg("finish transaction failed")
		}
		if err = s.RefreshEntitlement(ctx); err != nil {
			return models.PurchaseResponse{}, fmt.Errorf("recompute entitlement: %w", err)
		}

		entitlement := s.Entitlement()
		return models.PurchaseResponse{Outcome: "success", Entitlement: &entitlement}, nil

	case errors.Is(err, adapter.ErrPurchaseCancelled):
		return models.PurchaseResponse{Outcome: "cancelled"}, nil

	case errors.Is(err, adapter.ErrPurchasePending):
		return models.PurchaseResponse{
			Outcome: "pending",
			Message: "purchase is awaiting approval and will activate once settled",
		}, nil

	default:
		return models.PurchaseResponse{}, fmt.Errorf("purchase %s: %w", productID, err)
	}
}

// Restore implements SubscriptionService. It replays past purchases on the
// platform side, then recomputes entitlement from the refreshed ledger.
func (s *subscriptionManager) Restore(ctx context.Context) error {
	if err := s.billing.SyncPurchases(ctx); err != nil {
		return fmt.Errorf("sync purchases: %w", err)
	}

	return s.RefreshEntitlement(ctx)
}

func (s *subscriptionManager) Entitlement() models.Entitlement {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entitlement
}

// RefreshEntitlement implements SubscriptionService. Entitlement is always
// derived from the full set of current transactions; among the valid ones
// the furthest-future expiry wins. The recompute is idempotent over an
// unchanged ledger.
func (s *subscriptionManager) RefreshEntitlement(ctx context.Context) error {
	transactions, err := s.billing.CurrentTransactions(ctx)
	if err != nil {
		return fmt.Errorf("fetch current transactions: %w", err)
	}

	entitlement := computeEntitlement(transactions, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entitlement = entitlement

	return nil
}

func computeEntitlement(transactions []models.Transaction, now time.Time) models.Entitlement {
	var latest *time.Time
	for i := range transactions {
		if !transactions[i].Valid(now) {
			continue
		}
		if latest == nil || transactions[i].ExpiresAt.After(*latest) {
			latest = transactions[i].ExpiresAt
		}
	}

	if latest == nil {
		return models.NotSubscribed()
	}

	return models.SubscribedUntil(*latest)
}
