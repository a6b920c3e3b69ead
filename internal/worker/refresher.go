package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// OrdersSource exposes the subset of application functionality required by
// the refresher.
type OrdersSource interface {
	Orders(ctx context.Context) ([]model.Order, error)
}

// SnapshotFunc receives each successfully fetched order list.
type SnapshotFunc func(orders []model.Order)

// CabinetRefresher periodically refetches the order list for watch mode.
// A failed poll is logged and skipped; the consumer keeps its prior
// snapshot.
type CabinetRefresher struct {
	source   OrdersSource
	interval time.Duration
	onUpdate SnapshotFunc
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCabinetRefresher constructs the refresher.
func NewCabinetRefresher(source OrdersSource, interval time.Duration, onUpdate SnapshotFunc, logger *slog.Logger) *CabinetRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CabinetRefresher{
		source:   source,
		interval: interval,
		onUpdate: onUpdate,
		logger:   logger,
	}
}

// Start launches background polling. The first fetch happens immediately.
func (r *CabinetRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the polling loop to finish.
func (r *CabinetRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CabinetRefresher) loop(ctx context.Context) {
	defer r.wg.Done()

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *CabinetRefresher) refresh(ctx context.Context) {
	orders, err := r.source.Orders(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("orders refresh failed", slog.String("error", err.Error()))
		return
	}
	r.onUpdate(orders)
}
