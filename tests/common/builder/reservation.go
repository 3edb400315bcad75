package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

// Date builds a bare calendar date in UTC, the form handlers pass around.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Stay builds a normalized stay from calendar dates, panicking on invalid
// input so test setup stays terse.
func Stay(checkIn, checkOut time.Time) reservation.StayPeriod {
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		panic(err)
	}
	return stay
}

type ReservationBuilder struct {
	id          uuid.UUID
	roomID      uuid.UUID
	guestID     uuid.UUID
	checkIn     time.Time
	checkOut    time.Time
	status      reservation.Status
	adults      int
	children    int
	totalCents  int64
	paidCents   int64
	packageType string
	guestType   string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:         uuid.New(),
		roomID:     uuid.New(),
		guestID:    uuid.New(),
		checkIn:    Date(2026, 3, 10),
		checkOut:   Date(2026, 3, 12),
		status:     reservation.StatusConfirmed,
		adults:     2,
		totalCents: 20000,
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	b.roomID = id
	return b
}

func (b *ReservationBuilder) WithGuestID(id uuid.UUID) *ReservationBuilder {
	b.guestID = id
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) WithOccupants(adults, children int) *ReservationBuilder {
	b.adults = adults
	b.children = children
	return b
}

func (b *ReservationBuilder) WithAmounts(totalCents, paidCents int64) *ReservationBuilder {
	b.totalCents = totalCents
	b.paidCents = paidCents
	return b
}

// BuildDomain goes through NewReservation so validation runs; identity and
// status are then forced through reconstruction so builders can pin them.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}

	if _, err := reservation.NewReservation(
		b.roomID, b.guestID, stay,
		b.adults, b.children,
		b.totalCents, b.paidCents,
		b.packageType, b.guestType,
	); err != nil {
		return nil, err
	}

	now := time.Now()
	return reservation.ReconstructReservation(
		b.id, b.roomID, b.guestID, stay, b.status,
		b.adults, b.children, b.totalCents, b.paidCents,
		b.packageType, b.guestType, now, now,
	), nil
}

// Build panics on validation failure; for tests that only need a valid
// reservation in a known state.
func (b *ReservationBuilder) Build() *reservation.Reservation {
	res, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}
