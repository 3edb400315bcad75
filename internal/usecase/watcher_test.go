//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWatermark serves a settable latest-created-at value and can be told to
// fail the next read.
type fakeWatermark struct {
	mu     sync.Mutex
	latest *time.Time
	fail   bool
	polls  int
}

func (f *fakeWatermark) LatestCreatedAt(_ context.Context, _ db.DBTX) (*time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if f.fail {
		return nil, errors.New("connection reset")
	}
	return f.latest, nil
}

func (f *fakeWatermark) set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = &t
}

func (f *fakeWatermark) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeWatermark) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal(msg)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestReservationWatcher(t *testing.T) {
	t.Run("notifies on new rows but not on the seeded watermark", func(t *testing.T) {
		reads := &fakeWatermark{}
		reads.set(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

		w := usecase.NewReservationWatcher(&fakeUoW{}, reads, 10*time.Millisecond)

		var mu sync.Mutex
		var notified []time.Time
		w.Subscribe(func(latest time.Time) {
			mu.Lock()
			defer mu.Unlock()
			notified = append(notified, latest)
		})

		w.Start(context.Background())
		defer w.Stop()

		// Let a few ticks pass with nothing new: the seed value must not fire.
		waitFor(t, func() bool { return reads.pollCount() >= 3 }, "watcher never polled")
		mu.Lock()
		assert.Empty(t, notified)
		mu.Unlock()

		next := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
		reads.set(next)

		waitFor(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(notified) > 0
		}, "watcher never notified after a new row appeared")

		mu.Lock()
		require.NotEmpty(t, notified)
		assert.Equal(t, next, notified[0])
		// An unchanged watermark must not fire again.
		count := len(notified)
		mu.Unlock()

		waitFor(t, func() bool { return reads.pollCount() >= 8 }, "watcher stopped polling")
		mu.Lock()
		assert.Equal(t, count, len(notified))
		mu.Unlock()
	})

	t.Run("poll failure is skipped and polling continues", func(t *testing.T) {
		reads := &fakeWatermark{}
		reads.setFail(true)

		w := usecase.NewReservationWatcher(&fakeUoW{}, reads, 10*time.Millisecond)

		var mu sync.Mutex
		var notified []time.Time
		w.Subscribe(func(latest time.Time) {
			mu.Lock()
			defer mu.Unlock()
			notified = append(notified, latest)
		})

		w.Start(context.Background())
		defer w.Stop()

		waitFor(t, func() bool { return reads.pollCount() >= 3 }, "watcher gave up after a failed poll")

		reads.setFail(false)
		reads.set(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

		// The failed seed left no watermark, so the first good value counts as
		// a change.
		waitFor(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(notified) > 0
		}, "watcher never recovered from the failed poll")
	})

	t.Run("empty table never notifies", func(t *testing.T) {
		reads := &fakeWatermark{}

		w := usecase.NewReservationWatcher(&fakeUoW{}, reads, 10*time.Millisecond)

		fired := false
		var mu sync.Mutex
		w.Subscribe(func(time.Time) {
			mu.Lock()
			defer mu.Unlock()
			fired = true
		})

		w.Start(context.Background())
		waitFor(t, func() bool { return reads.pollCount() >= 3 }, "watcher never polled")
		w.Stop()

		mu.Lock()
		assert.False(t, fired)
		mu.Unlock()
	})

	t.Run("stop is idempotent and start twice is a no-op", func(t *testing.T) {
		reads := &fakeWatermark{}
		w := usecase.NewReservationWatcher(&fakeUoW{}, reads, 10*time.Millisecond)

		w.Start(context.Background())
		w.Start(context.Background())

		w.Stop()
		w.Stop()
	})
}
