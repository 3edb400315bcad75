package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var WatcherModule = fx.Module("watcher",
	fx.Provide(
		NewWatcher,
	),
	fx.Invoke(runWatcher),
)

func NewWatcher(uow shared.UnitOfWork, reads usecase.WatermarkReads, cfg config.Config) *usecase.ReservationWatcher {
	return usecase.NewReservationWatcher(uow, reads, cfg.Hotel.WatchInterval)
}

func runWatcher(lc fx.Lifecycle, watcher *usecase.ReservationWatcher) {
	watcher.Subscribe(func(latest time.Time) {
		slog.Info("new reservations detected", "latest_created_at", latest)
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			watcher.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			watcher.Stop()
			return nil
		},
	})
}
