//go:build unit

package builder_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationBuilder(t *testing.T) {
	t.Run("pins the id and status", func(t *testing.T) {
		id := uuid.New()
		res := builder.NewReservationBuilder().
			WithID(id).
			WithStatus(reservation.StatusCheckedIn).
			Build()

		assert.Equal(t, id, res.ID())
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		d := builder.Date(2026, 3, 10)
		_, err := builder.NewReservationBuilder().WithDates(d, d).BuildDomain()
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})
}
