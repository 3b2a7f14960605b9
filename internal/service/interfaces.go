package service

import (
	"context"
	"image"
	"time"

	"github.com/avstepanov/docvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService owns the in-memory view of the vault and coordinates
// record persistence with PDF file storage.
type DocumentService interface {
	// Refresh reloads the document list from the record store. Failures do
	// not return an error: they set the observable error state and leave
	// the previously loaded list intact.
	Refresh(ctx context.Context)

	// Documents returns the currently loaded list, newest first.
	Documents() []models.Document

	// Loading reports whether a Refresh is in flight.
	Loading() bool

	// LastError returns the error recorded by the most recent failed
	// Refresh, or nil after a successful one.
	LastError() error

	CreateFromBytes(ctx context.Context, name string, data []byte, tags []string) (models.Document, error)
	CreateFromImages(ctx context.Context, name string, images []image.Image, tags []string) (models.Document, error)

	Update(ctx context.Context, id string, update models.UpdateDocumentRequest) (models.Document, error)
	Rename(ctx context.Context, id string, name string) (models.Document, error)

	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, ids []string) error

	Search(query string) []models.Document
	FilterByTag(tag string) []models.Document
	Favorites() []models.Document
	TotalStorageUsed() int64
	Summary() models.VaultSummary

	// DocumentFile returns the record and the stored PDF bytes for export.
	DocumentFile(ctx context.Context, id string) (models.Document, []byte, error)
}

// SubscriptionService tracks the product catalog and the derived
// entitlement status.
type SubscriptionService interface {
	// LoadCatalog fetches the three fixed products from the platform once.
	// On failure it records the error state and returns the error.
	LoadCatalog(ctx context.Context) error

	// LoadCatalogWithRetry retries LoadCatalog with a fixed delay up to the
	// configured attempt ceiling, then falls back to the hardcoded price
	// table. After it returns, every tier has a price.
	LoadCatalogWithRetry(ctx context.Context)

	// Products returns the loaded catalog sorted by ascending price.
	Products() []models.Product

	// CatalogError returns the error recorded by the most recent failed
	// catalog load, or nil.
	CatalogError() error

	Purchase(ctx context.Context, productID string) (models.PurchaseResponse, error)
	Restore(ctx context.Context) error

	// Entitlement returns the current derived subscription status.
	Entitlement() models.Entitlement

	// RefreshEntitlement recomputes entitlement from the platform's full
	// transaction ledger.
	RefreshEntitlement(ctx context.Context) error
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TransactionListenerJob is the background observer of the billing
// platform's transaction-update feed.
type TransactionListenerJob interface {
	// Start launches the background goroutine polling for updates every
	// interval. Calling Start on a running job restarts it.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it exits.
	Stop()
}
