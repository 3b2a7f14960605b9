package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

// spyBillingAdapter counts update polls and records finished transactions.
type spyBillingAdapter struct {
	polls    atomic.Int64
	finished atomic.Int64
	pollErr  error

	updates []models.Transaction
}

func (s *spyBillingAdapter) FetchProducts(context.Context, []string) ([]models.Product, error) {
	return nil, nil
}

func (s *spyBillingAdapter) Purchase(context.Context, string) (models.Transaction, error) {
	return models.Transaction{}, nil
}

func (s *spyBillingAdapter) SyncPurchases(context.Context) error { return nil }

func (s *spyBillingAdapter) CurrentTransactions(context.Context) ([]models.Transaction, error) {
	return s.updates, nil
}

func (s *spyBillingAdapter) TransactionUpdates(context.Context, time.Time) ([]models.Transaction, error) {
	s.polls.Add(1)
	return s.updates, s.pollErr
}

func (s *spyBillingAdapter) FinishTransaction(context.Context, string) error {
	s.finished.Add(1)
	return nil
}

// spySubscriptionRecomputer counts entitlement recomputes triggered by the
// listener.
type spySubscriptionRecomputer struct {
	SubscriptionService
	recomputes atomic.Int64
}

func (s *spySubscriptionRecomputer) RefreshEntitlement(context.Context) error {
	s.recomputes.Add(1)
	return nil
}

func TestNewTransactionListenerJob_ReturnsInterface(t *testing.T) {
	spy := &spyBillingAdapter{}
	job := NewTransactionListenerJob(spy, &spySubscriptionRecomputer{}, logger.Nop())
	require.NotNil(t, job)

	var _ TransactionListenerJob = job
}

func TestTransactionListenerJob_Start_PollsUpdates(t *testing.T) {
	spy := &spyBillingAdapter{}
	job := NewTransactionListenerJob(spy, &spySubscriptionRecomputer{}, logger.Nop())
	ctx := context.Background()

	// 10ms interval, ~5 ticks over 55ms.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.polls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "update feed should be polled repeatedly, polled: %d", got)
}

func TestTransactionListenerJob_UpdateFinishesAndRecomputes(t *testing.T) {
	expiry := time.Now().Add(24 * time.Hour).UTC()
	spy := &spyBillingAdapter{
		updates: []models.Transaction{
			{ID: "txn-1", ProductID: models.ProductWeekly, Type: models.AutoRenewable, ExpiresAt: &expiry},
		},
	}
	recomputer := &spySubscriptionRecomputer{}
	job := NewTransactionListenerJob(spy, recomputer, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.finished.Load(), int64(1), "delivered transactions must be finished")
	assert.GreaterOrEqual(t, recomputer.recomputes.Load(), int64(1), "each update batch must trigger a recompute")
}

func TestTransactionListenerJob_PollFailureSkipsRecompute(t *testing.T) {
	spy := &spyBillingAdapter{pollErr: context.DeadlineExceeded}
	recomputer := &spySubscriptionRecomputer{}
	job := NewTransactionListenerJob(spy, recomputer, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.polls.Load(), int64(1))
	assert.Zero(t, recomputer.recomputes.Load())
	assert.Zero(t, spy.finished.Load())
}

func TestTransactionListenerJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyBillingAdapter{}
	job := NewTransactionListenerJob(spy, &spySubscriptionRecomputer{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	pollsAfterStop := spy.polls.Load()
	time.Sleep(30 * time.Millisecond)
	pollsLater := spy.polls.Load()

	assert.Equal(t, pollsAfterStop, pollsLater, "no polls may happen after Stop")
}

func TestTransactionListenerJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewTransactionListenerJob(&spyBillingAdapter{}, &spySubscriptionRecomputer{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestTransactionListenerJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewTransactionListenerJob(&spyBillingAdapter{}, &spySubscriptionRecomputer{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestTransactionListenerJob_Restart(t *testing.T) {
	spy := &spyBillingAdapter{}
	job := NewTransactionListenerJob(spy, &spySubscriptionRecomputer{}, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.polls.Load(), int64(1))
}
