package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"
)

var ErrInvalidRetention = errs.New("retention must be positive")

type LogCommands struct {
	uow       shared.UnitOfWork
	audit     AuditWrites
	clk       clock.Clock
	retention time.Duration
}

func NewLogCommands(uow shared.UnitOfWork, audit AuditWrites, clk clock.Clock, retention time.Duration) *LogCommands {
	return &LogCommands{
		uow:       uow,
		audit:     audit,
		clk:       clk,
		retention: retention,
	}
}

// PurgeBefore removes audit entries older than cutoff and reports how many
// were deleted.
func (c *LogCommands) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		deleted, err = c.audit.PurgeOlderThan(ctx, tx, cutoff)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to purge audit log")
	}
	if deleted > 0 {
		slog.Info("audit log purged", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

// PurgeOlderThanDays removes entries older than the given number of days.
func (c *LogCommands) PurgeOlderThanDays(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, ErrInvalidRetention
	}
	return c.PurgeBefore(ctx, c.clk.Now().AddDate(0, 0, -days))
}

// PurgeExpired applies the configured retention window.
func (c *LogCommands) PurgeExpired(ctx context.Context) (int64, error) {
	if c.retention <= 0 {
		return 0, ErrInvalidRetention
	}
	return c.PurgeBefore(ctx, c.clk.Now().Add(-c.retention))
}
