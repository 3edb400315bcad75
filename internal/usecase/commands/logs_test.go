//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/shared"
	"hotel-frontdesk/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuditLog keeps timestamped entries so purge cutoffs can be exercised.
type fakeAuditLog struct {
	changedAt []time.Time
}

func (f *fakeAuditLog) Append(_ context.Context, _ db.DBTX, _ shared.AuditEntry) error {
	return nil
}

func (f *fakeAuditLog) PurgeOlderThan(_ context.Context, _ db.DBTX, cutoff time.Time) (int64, error) {
	var kept []time.Time
	var deleted int64
	for _, at := range f.changedAt {
		if at.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, at)
	}
	f.changedAt = kept
	return deleted, nil
}

func TestPurgeLogs(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	seed := func() *fakeAuditLog {
		return &fakeAuditLog{changedAt: []time.Time{
			now.AddDate(0, 0, -400),
			now.AddDate(0, 0, -366),
			now.AddDate(0, 0, -365).Add(-time.Minute),
			now.AddDate(0, 0, -364),
			now.AddDate(0, 0, -1),
		}}
	}

	t.Run("expired entries beyond the retention window are removed", func(t *testing.T) {
		audit := seed()
		logs := commands.NewLogCommands(&fake.UoW{}, audit, clock.NewMockClock(now), 365*24*time.Hour)

		deleted, err := logs.PurgeExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		assert.Len(t, audit.changedAt, 2)
	})

	t.Run("second purge is a no-op", func(t *testing.T) {
		audit := seed()
		logs := commands.NewLogCommands(&fake.UoW{}, audit, clock.NewMockClock(now), 365*24*time.Hour)

		_, err := logs.PurgeExpired(context.Background())
		require.NoError(t, err)

		deleted, err := logs.PurgeExpired(context.Background())
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("explicit cutoff bypasses the retention window", func(t *testing.T) {
		audit := seed()
		logs := commands.NewLogCommands(&fake.UoW{}, audit, clock.NewMockClock(now), 365*24*time.Hour)

		deleted, err := logs.PurgeBefore(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(5), deleted)
		assert.Empty(t, audit.changedAt)
	})

	t.Run("older-than-days cutoff", func(t *testing.T) {
		audit := seed()
		logs := commands.NewLogCommands(&fake.UoW{}, audit, clock.NewMockClock(now), 365*24*time.Hour)

		deleted, err := logs.PurgeOlderThanDays(context.Background(), 365)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		_, err = logs.PurgeOlderThanDays(context.Background(), 0)
		assert.ErrorIs(t, err, commands.ErrInvalidRetention)
	})

	t.Run("non-positive retention is rejected", func(t *testing.T) {
		logs := commands.NewLogCommands(&fake.UoW{}, &fakeAuditLog{}, clock.NewMockClock(now), 0)

		_, err := logs.PurgeExpired(context.Background())
		assert.ErrorIs(t, err, commands.ErrInvalidRetention)
	})
}
