package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/orderflow/orderflow/internal/adapter/sheets"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/domain/repository"
)

// SyncDispatcher forwards persisted orders to the spreadsheet sink in the
// background, so submission latency never includes the webhook. Each
// order gets exactly one attempt: a failed sync is logged and the order
// stays unsynced, it is never retried and never affects the stored order.
type SyncDispatcher struct {
	sheets  sheets.Client
	orders  repository.OrderRepository
	workers int
	logger  *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSyncDispatcher constructs the dispatcher with a bounded queue.
func NewSyncDispatcher(sheetsClient sheets.Client, orders repository.OrderRepository, workers, queueSize int, logger *slog.Logger) *SyncDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &SyncDispatcher{
		sheets:  sheetsClient,
		orders:  orders,
		workers: workers,
		logger:  logger,
		jobs:    make(chan model.Order, queueSize),
	}
}

// Start launches background workers.
func (d *SyncDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for in-flight syncs to finish. Queued orders that were
// never attempted are dropped; sync is fire and forget by contract.
func (d *SyncDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue schedules an order for sync. Returns false when the queue is
// full, which only drops the sync attempt, never the order itself.
func (d *SyncDispatcher) Enqueue(order model.Order) bool {
	select {
	case d.jobs <- order:
		return true
	default:
		d.logger.Warn("sync queue full, dropping sync attempt", slog.String("order", order.ID))
		return false
	}
}

func (d *SyncDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleOrder(ctx, order)
		}
	}
}

func (d *SyncDispatcher) handleOrder(ctx context.Context, order model.Order) {
	if err := d.sheets.Send(ctx, order); err != nil {
		if errors.Is(err, sheets.ErrSyncDisabled) {
			return
		}
		d.logger.Error("sheet sync failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		return
	}

	if err := d.orders.MarkSynced(ctx, order.ID); err != nil {
		d.logger.Error("mark order synced failed", slog.String("order", order.ID), slog.String("error", err.Error()))
	}
}
