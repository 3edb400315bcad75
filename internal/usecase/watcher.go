package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/shared"
)

// WatermarkReads exposes the single value the watcher polls.
type WatermarkReads interface {
	LatestCreatedAt(ctx context.Context, dbtx db.DBTX) (*time.Time, error)
}

// ReservationWatcher polls the reservation table and notifies subscribers
// when new rows appear, so long-lived clients can refresh without holding a
// database connection each. One poll failure is logged and skipped; the
// ticker keeps running.
type ReservationWatcher struct {
	uow      shared.UnitOfWork
	reads    WatermarkReads
	interval time.Duration

	mu        sync.Mutex
	watermark *time.Time
	subs      []func(latest time.Time)
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewReservationWatcher(uow shared.UnitOfWork, reads WatermarkReads, interval time.Duration) *ReservationWatcher {
	return &ReservationWatcher{
		uow:      uow,
		reads:    reads,
		interval: interval,
	}
}

// Subscribe registers a callback invoked with the new watermark after each
// detected change. Callbacks run on the watcher goroutine; keep them short.
func (w *ReservationWatcher) Subscribe(fn func(latest time.Time)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}

func (w *ReservationWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *ReservationWatcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *ReservationWatcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Seed the watermark so startup does not fire a spurious notification.
	if err := w.poll(ctx, false); err != nil {
		slog.Warn("initial reservation poll failed", "error", err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.poll(ctx, true); err != nil {
				slog.Warn("reservation poll failed", "error", err.Error())
			}
		}
	}
}

func (w *ReservationWatcher) poll(ctx context.Context, notify bool) error {
	var latest *time.Time
	err := w.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		latest, err = w.reads.LatestCreatedAt(ctx, dbtx)
		return err
	})
	if err != nil {
		return err
	}
	if latest == nil {
		return nil
	}

	w.mu.Lock()
	changed := w.watermark == nil || latest.After(*w.watermark)
	if changed {
		w.watermark = latest
	}
	subs := w.subs
	w.mu.Unlock()

	if changed && notify {
		slog.Debug("reservation change detected", "latest_created_at", latest)
		for _, fn := range subs {
			fn(*latest)
		}
	}
	return nil
}
