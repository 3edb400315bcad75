//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayPeriod(t *testing.T) {
	t.Run("normalizes bare dates to hotel clock times", func(t *testing.T) {
		stay, err := reservation.NewStayPeriod(
			builder.Date(2026, 3, 10),
			builder.Date(2026, 3, 12),
		)
		require.NoError(t, err)

		assert.Equal(t, 14, stay.CheckIn().Hour())
		assert.Equal(t, 12, stay.CheckOut().Hour())
		assert.Equal(t, builder.Date(2026, 3, 10), stay.CheckInDate())
		assert.Equal(t, builder.Date(2026, 3, 12), stay.CheckOutDate())
	})

	t.Run("arbitrary clock times collapse to the same stay", func(t *testing.T) {
		a, err := reservation.NewStayPeriod(
			time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 23, 15, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		b, err := reservation.NewStayPeriod(
			builder.Date(2026, 3, 10),
			builder.Date(2026, 3, 12),
		)
		require.NoError(t, err)

		assert.Equal(t, b, a)
	})

	t.Run("same-day stay is rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(builder.Date(2026, 3, 10), builder.Date(2026, 3, 10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("inverted dates are rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(builder.Date(2026, 3, 12), builder.Date(2026, 3, 10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := builder.Stay(builder.Date(2026, 3, 10), builder.Date(2026, 3, 13))

	cases := []struct {
		name     string
		other    reservation.StayPeriod
		overlaps bool
	}{
		{
			name:     "identical stay",
			other:    builder.Stay(builder.Date(2026, 3, 10), builder.Date(2026, 3, 13)),
			overlaps: true,
		},
		{
			name:     "contained stay",
			other:    builder.Stay(builder.Date(2026, 3, 11), builder.Date(2026, 3, 12)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    builder.Stay(builder.Date(2026, 3, 12), builder.Date(2026, 3, 15)),
			overlaps: true,
		},
		{
			name:     "touching at checkout is not an overlap",
			other:    builder.Stay(builder.Date(2026, 3, 13), builder.Date(2026, 3, 15)),
			overlaps: false,
		},
		{
			name:     "touching at check-in is not an overlap",
			other:    builder.Stay(builder.Date(2026, 3, 8), builder.Date(2026, 3, 10)),
			overlaps: false,
		},
		{
			name:     "disjoint later stay",
			other:    builder.Stay(builder.Date(2026, 3, 20), builder.Date(2026, 3, 22)),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestStayPeriodBoundaries(t *testing.T) {
	earlier := builder.Stay(builder.Date(2026, 3, 8), builder.Date(2026, 3, 10))
	later := builder.Stay(builder.Date(2026, 3, 10), builder.Date(2026, 3, 13))

	t.Run("turnover boundary", func(t *testing.T) {
		assert.True(t, earlier.EndsAtStartOf(later))
		assert.False(t, later.EndsAtStartOf(earlier))
	})

	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 2, earlier.Nights())
		assert.Equal(t, 3, later.Nights())
	})

	t.Run("covers half-open day range", func(t *testing.T) {
		assert.True(t, later.Covers(builder.Date(2026, 3, 10)))
		assert.True(t, later.Covers(builder.Date(2026, 3, 12)))
		assert.False(t, later.Covers(builder.Date(2026, 3, 13)))
		assert.False(t, later.Covers(builder.Date(2026, 3, 9)))
	})

	t.Run("day position and last day", func(t *testing.T) {
		assert.Equal(t, 0, later.DayPosition(builder.Date(2026, 3, 10)))
		assert.Equal(t, 2, later.DayPosition(builder.Date(2026, 3, 12)))
		assert.True(t, later.IsLastDay(builder.Date(2026, 3, 12)))
		assert.False(t, later.IsLastDay(builder.Date(2026, 3, 11)))
	})
}
