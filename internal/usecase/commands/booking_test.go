//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/shared"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(store *fake.Store) *commands.BookingCommands {
	uow := &fake.UoW{}
	pricing := reservation.NewNightlyPriceCalculator()
	engine := usecase.NewAvailabilityEngine(uow, store, store.RoomReads(), pricing)
	return commands.NewBookingCommands(uow, engine, store, store.GuestWrites(), store.RoomReads(), store.AuditWrites(), pricing)
}

func mustRoom(number string, capacity int, nightly int64) *room.Room {
	rm, err := room.NewRoom(number, capacity, nightly)
	if err != nil {
		panic(err)
	}
	return rm
}

func createInput(roomID uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomID:   roomID,
		CheckIn:  builder.Date(2024, 6, 1),
		CheckOut: builder.Date(2024, 6, 3),
		Adults:   2,
		Guest: commands.GuestInput{
			FirstName:   "Maria",
			LastName:    "Novak",
			Phone:       "+420123456789",
			Nationality: "CZ",
		},
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("persists guest, reservation, and one audit entry", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		store := fake.NewStore(rm)
		booking := newBooking(store)

		id, conflicts, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		require.NoError(t, err)
		assert.Empty(t, conflicts)

		res := store.Reservations[id]
		require.NotNil(t, res)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, int64(2*10000), res.TotalAmount())

		g := store.Guests[res.GuestID()]
		require.NotNil(t, g)
		assert.Equal(t, "Maria Novak", g.FullName())

		require.Len(t, store.Audit, 1)
		entry := store.Audit[0]
		assert.Equal(t, shared.AuditActionCreate, entry.Action)
		assert.Equal(t, shared.AuditTableReservations, entry.TableName)
		assert.Equal(t, id, entry.RecordID)
		assert.Equal(t, "alice", entry.ChangedBy)
		assert.NotEmpty(t, entry.NewValues)
		assert.Empty(t, entry.OldValues)
	})

	t.Run("back-to-back turnover books with a warning", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		departing := builder.NewReservationBuilder().
			WithRoomID(rm.ID()).
			WithDates(builder.Date(2024, 5, 30), builder.Date(2024, 6, 1)).
			WithStatus(reservation.StatusCheckedIn).
			Build()
		store := fake.NewStore(rm).Seed(departing)
		booking := newBooking(store)

		id, conflicts, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		require.NoError(t, err)

		require.Len(t, conflicts, 1)
		assert.Equal(t, usecase.ConflictBackToBack, conflicts[0].Type)
		assert.Equal(t, departing.ID(), conflicts[0].ReservationID)
		assert.NotNil(t, store.Reservations[id])
		assert.Len(t, store.Audit, 1)
	})

	t.Run("blocking overlap writes nothing", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		blocking := builder.NewReservationBuilder().
			WithRoomID(rm.ID()).
			WithDates(builder.Date(2024, 5, 31), builder.Date(2024, 6, 2)).
			Build()
		store := fake.NewStore(rm).Seed(blocking)
		booking := newBooking(store)

		_, conflicts, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)

		require.Len(t, conflicts, 1)
		assert.Equal(t, usecase.ConflictOverlap, conflicts[0].Type)
		assert.Len(t, store.Reservations, 1)
		assert.Empty(t, store.Guests)
		assert.Empty(t, store.Audit)
	})

	t.Run("invalid date range", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		booking := newBooking(fake.NewStore(rm))

		in := createInput(rm.ID())
		in.CheckOut = in.CheckIn

		_, _, err := booking.CreateReservation(context.Background(), "alice", in)
		assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
	})

	t.Run("unknown room", func(t *testing.T) {
		booking := newBooking(fake.NewStore())

		_, _, err := booking.CreateReservation(context.Background(), "alice", createInput(uuid.New()))
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("party larger than the room", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		booking := newBooking(fake.NewStore(rm))

		in := createInput(rm.ID())
		in.Adults = 2
		in.Children = 1

		_, _, err := booking.CreateReservation(context.Background(), "alice", in)
		assert.ErrorIs(t, err, commands.ErrRoomCapacityExceeded)
	})

	t.Run("deactivated room is rejected", func(t *testing.T) {
		rm := mustRoom("101", 2, 10000)
		rm.Deactivate()
		booking := newBooking(fake.NewStore(rm))

		_, _, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		assert.ErrorIs(t, err, commands.ErrRoomInactive)
	})
}

func TestUpdateReservation(t *testing.T) {
	seed := func(t *testing.T) (*fake.Store, *commands.BookingCommands, uuid.UUID, *room.Room) {
		t.Helper()
		rm := mustRoom("101", 4, 10000)
		store := fake.NewStore(rm)
		booking := newBooking(store)

		id, _, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		require.NoError(t, err)
		store.ResetAudit()
		return store, booking, id, rm
	}

	t.Run("date change revalidates and audits the diff", func(t *testing.T) {
		store, booking, id, _ := seed(t)
		newOut := builder.Date(2024, 6, 5)

		conflicts, err := booking.UpdateReservation(context.Background(), "bob", id, reservation.Update{CheckOut: &newOut})
		require.NoError(t, err)
		assert.Empty(t, conflicts)

		res := store.Reservations[id]
		assert.Equal(t, builder.Date(2024, 6, 5), res.Stay().CheckOutDate())

		require.Len(t, store.Audit, 1)
		entry := store.Audit[0]
		assert.Equal(t, shared.AuditActionUpdate, entry.Action)
		assert.Equal(t, "bob", entry.ChangedBy)

		var oldDiff, newDiff map[string]any
		require.NoError(t, json.Unmarshal(entry.OldValues, &oldDiff))
		require.NoError(t, json.Unmarshal(entry.NewValues, &newDiff))
		assert.Contains(t, oldDiff, "check_out")
		assert.Contains(t, newDiff, "check_out")
		assert.NotContains(t, newDiff, "check_in")
	})

	t.Run("moving onto an occupied span is rejected", func(t *testing.T) {
		store, booking, id, rm := seed(t)
		blocking := builder.NewReservationBuilder().
			WithRoomID(rm.ID()).
			WithDates(builder.Date(2024, 6, 10), builder.Date(2024, 6, 12)).
			Build()
		store.Seed(blocking)

		newIn := builder.Date(2024, 6, 9)
		newOut := builder.Date(2024, 6, 11)
		conflicts, err := booking.UpdateReservation(context.Background(), "bob", id,
			reservation.Update{CheckIn: &newIn, CheckOut: &newOut})

		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
		require.Len(t, conflicts, 1)
		assert.Equal(t, blocking.ID(), conflicts[0].ReservationID)
		assert.Empty(t, store.Audit)
	})

	t.Run("extending over its own dates does not self-conflict", func(t *testing.T) {
		store, booking, id, _ := seed(t)
		newOut := builder.Date(2024, 6, 4)

		_, err := booking.UpdateReservation(context.Background(), "bob", id, reservation.Update{CheckOut: &newOut})
		require.NoError(t, err)
		assert.Len(t, store.Audit, 1)
	})

	t.Run("empty update", func(t *testing.T) {
		_, booking, id, _ := seed(t)

		_, err := booking.UpdateReservation(context.Background(), "bob", id, reservation.Update{})
		assert.ErrorIs(t, err, commands.ErrEmptyUpdate)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, booking, _, _ := seed(t)
		adults := 2

		_, err := booking.UpdateReservation(context.Background(), "bob", uuid.New(), reservation.Update{Adults: &adults})
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestUpdateGuest(t *testing.T) {
	seed := func(t *testing.T) (*fake.Store, *commands.BookingCommands, uuid.UUID) {
		t.Helper()
		rm := mustRoom("101", 2, 10000)
		store := fake.NewStore(rm)
		booking := newBooking(store)

		id, _, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		require.NoError(t, err)
		store.ResetAudit()
		return store, booking, store.Reservations[id].GuestID()
	}

	t.Run("renames the guest and audits the guests table", func(t *testing.T) {
		store, booking, guestID := seed(t)
		last := "Svobodova"

		require.NoError(t, booking.UpdateGuest(context.Background(), "bob", guestID, guest.Update{LastName: &last}))
		assert.Equal(t, "Maria Svobodova", store.Guests[guestID].FullName())

		require.Len(t, store.Audit, 1)
		entry := store.Audit[0]
		assert.Equal(t, shared.AuditActionUpdate, entry.Action)
		assert.Equal(t, shared.AuditTableGuests, entry.TableName)
		assert.Equal(t, guestID, entry.RecordID)

		var newDiff map[string]any
		require.NoError(t, json.Unmarshal(entry.NewValues, &newDiff))
		assert.Contains(t, newDiff, "last_name")
		assert.NotContains(t, newDiff, "first_name")
	})

	t.Run("blank first name is rejected", func(t *testing.T) {
		store, booking, guestID := seed(t)
		blank := "  "

		err := booking.UpdateGuest(context.Background(), "bob", guestID, guest.Update{FirstName: &blank})
		assert.ErrorIs(t, err, guest.ErrEmptyGuestName)
		assert.Empty(t, store.Audit)
	})

	t.Run("empty update", func(t *testing.T) {
		_, booking, guestID := seed(t)

		err := booking.UpdateGuest(context.Background(), "bob", guestID, guest.Update{})
		assert.ErrorIs(t, err, commands.ErrEmptyUpdate)
	})

	t.Run("unknown guest", func(t *testing.T) {
		_, booking, _ := seed(t)
		phone := "+420777000111"

		err := booking.UpdateGuest(context.Background(), "bob", uuid.New(), guest.Update{Phone: &phone})
		assert.ErrorIs(t, err, commands.ErrGuestNotFound)
	})
}

func TestStatusCommands(t *testing.T) {
	seed := func(t *testing.T) (*fake.Store, *commands.BookingCommands, uuid.UUID) {
		t.Helper()
		rm := mustRoom("101", 2, 10000)
		store := fake.NewStore(rm)
		booking := newBooking(store)

		id, _, err := booking.CreateReservation(context.Background(), "alice", createInput(rm.ID()))
		require.NoError(t, err)
		store.ResetAudit()
		return store, booking, id
	}

	t.Run("check-in then check-out, one audit entry each", func(t *testing.T) {
		store, booking, id := seed(t)

		require.NoError(t, booking.CheckIn(context.Background(), "alice", id))
		assert.Equal(t, reservation.StatusCheckedIn, store.Reservations[id].Status())

		require.NoError(t, booking.CheckOut(context.Background(), "alice", id))
		assert.Equal(t, reservation.StatusCheckedOut, store.Reservations[id].Status())

		assert.Len(t, store.Audit, 2)
	})

	t.Run("cancel keeps the row", func(t *testing.T) {
		store, booking, id := seed(t)

		require.NoError(t, booking.Cancel(context.Background(), "alice", id))
		assert.Equal(t, reservation.StatusCancelled, store.Reservations[id].Status())
		assert.Len(t, store.Audit, 1)
	})

	t.Run("check-in waits for the previous guest to leave", func(t *testing.T) {
		store, booking, id := seed(t)
		lingering := builder.NewReservationBuilder().
			WithRoomID(store.Reservations[id].RoomID()).
			WithDates(builder.Date(2024, 5, 31), builder.Date(2024, 6, 2)).
			WithStatus(reservation.StatusCheckedIn).
			Build()
		store.Seed(lingering)

		err := booking.CheckIn(context.Background(), "alice", id)
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Equal(t, reservation.StatusConfirmed, store.Reservations[id].Status())
		assert.Empty(t, store.Audit)
	})

	t.Run("cancelled and checked-out history never holds the room", func(t *testing.T) {
		store, booking, id := seed(t)
		roomID := store.Reservations[id].RoomID()
		cancelled := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithDates(builder.Date(2024, 6, 1), builder.Date(2024, 6, 3)).
			WithStatus(reservation.StatusCancelled).
			Build()
		departed := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithDates(builder.Date(2024, 5, 31), builder.Date(2024, 6, 2)).
			WithStatus(reservation.StatusCheckedOut).
			Build()
		store.Seed(cancelled, departed)

		require.NoError(t, booking.CheckIn(context.Background(), "alice", id))
		assert.Equal(t, reservation.StatusCheckedIn, store.Reservations[id].Status())
	})

	t.Run("invalid transition leaves no audit entry", func(t *testing.T) {
		store, booking, id := seed(t)

		err := booking.CheckOut(context.Background(), "alice", id)
		assert.ErrorIs(t, err, reservation.ErrInvalidStatusTransition)
		assert.Empty(t, store.Audit)
	})
}
