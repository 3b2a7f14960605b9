package adapter

import (
	"context"
	"time"

	"github.com/avstepanov/docvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BillingAdapter mediates all communication with the billing platform: the
// product catalog, purchase and restore flows, and the transaction ledger
// used to compute entitlement. Implementations must be safe for concurrent
// use; the subscription manager and its background listener share one
// instance.
type BillingAdapter interface {
	// FetchProducts requests the catalog entries for the given product
	// identifiers. The platform may return fewer products than requested.
	FetchProducts(ctx context.Context, ids []string) ([]models.Product, error)

	// Purchase submits a purchase for productID. It returns the verified
	// transaction on success, [ErrPurchaseCancelled] when the user backed
	// out, [ErrPurchasePending] when the purchase awaits external
	// approval, or another error for every other outcome.
	Purchase(ctx context.Context, productID string) (models.Transaction, error)

	// SyncPurchases replays the platform's synchronization of prior
	// purchases (the restore flow). Entitlement must be recomputed from
	// [CurrentTransactions] afterwards.
	SyncPurchases(ctx context.Context) error

	// CurrentTransactions returns the full set of currently valid
	// transactions from the platform ledger.
	CurrentTransactions(ctx context.Context) ([]models.Transaction, error)

	// TransactionUpdates returns the transactions the platform recorded
	// after the given instant. Used by the background listener.
	TransactionUpdates(ctx context.Context, since time.Time) ([]models.Transaction, error)

	// FinishTransaction acknowledges a delivered transaction so the
	// platform stops redelivering it.
	FinishTransaction(ctx context.Context, transactionID string) error
}
