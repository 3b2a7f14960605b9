package service

import (
	"context"
	"sync"
	"time"

	"github.com/avstepanov/docvault/internal/adapter"
	"github.com/avstepanov/docvault/internal/logger"
)

type transactionListenerJob struct {
	billing      adapter.BillingAdapter
	subscription SubscriptionService

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	since  time.Time
}

// NewTransactionListenerJob creates a transactionListenerJob that polls the
// billing platform's transaction-update feed. The job is idle until Start
// is called.
func NewTransactionListenerJob(billing adapter.BillingAdapter, subscription SubscriptionService, logger *logger.Logger) TransactionListenerJob {
	return &transactionListenerJob{
		billing:      billing,
		subscription: subscription,
		logger:       logger,
		since:        time.Now().UTC(),
	}
}

// Start implements TransactionListenerJob. It stops any previously running
// job, then launches a background goroutine that polls the update feed
// every interval. If interval is zero or negative it defaults to 30 seconds.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *transactionListenerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements TransactionListenerJob. It cancels the background
// goroutine's context and blocks until the goroutine has fully exited.
// Safe to call when the job is not running (no-op in that case).
func (j *transactionListenerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// poll fetches updates recorded since the last successful poll, finishes
// each delivered transaction, and recomputes entitlement once when the
// batch was non-empty. The watermark only advances after a successful
// fetch, so a failed poll retries the same window.
func (j *transactionListenerJob) poll(ctx context.Context) {
	j.mu.Lock()
	since := j.since
	j.mu.Unlock()

	pollStarted := time.Now().UTC()

	updates, err := j.billing.TransactionUpdates(ctx, since)
	if err != nil {
		j.logger.Err(err).Str("func", "poll").Msg("transaction update poll failed")
		return
	}

	j.mu.Lock()
	j.since = pollStarted
	j.mu.Unlock()

	if len(updates) == 0 {
		return
	}

	for _, txn := range updates {
		if err = j.billing.FinishTransaction(ctx, txn.ID); err != nil {
			j.logger.Err(err).Str("func", "poll").Str("transaction_id", txn.ID).Msg("finish transaction failed")
		}
	}

	if err = j.subscription.RefreshEntitlement(ctx); err != nil {
		j.logger.Err(err).Str("func", "poll").Msg("entitlement recompute failed")
	}
}
