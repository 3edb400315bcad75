package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRoom             = errors.New("reservation requires a room")
	ErrMissingGuest            = errors.New("reservation requires a guest")
	ErrInvalidOccupants        = errors.New("reservation requires at least one adult")
	ErrNegativeAmount          = errors.New("amount cannot be negative")
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")
)

type Reservation struct {
	id          uuid.UUID
	roomID      uuid.UUID
	guestID     uuid.UUID
	stay        StayPeriod
	status      Status
	adults      int
	children    int
	totalAmount int64 // cents
	paidAmount  int64 // cents
	packageType string
	guestType   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	roomID, guestID uuid.UUID,
	stay StayPeriod,
	adults, children int,
	totalAmountCents, paidAmountCents int64,
	packageType, guestType string,
) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if guestID == uuid.Nil {
		return nil, ErrMissingGuest
	}
	if adults < 1 || children < 0 {
		return nil, ErrInvalidOccupants
	}
	if totalAmountCents < 0 || paidAmountCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &Reservation{
		id:          uuid.New(),
		roomID:      roomID,
		guestID:     guestID,
		stay:        stay,
		status:      StatusConfirmed,
		adults:      adults,
		children:    children,
		totalAmount: totalAmountCents,
		paidAmount:  paidAmountCents,
		packageType: packageType,
		guestType:   guestType,
	}, nil
}

func ReconstructReservation(
	id, roomID, guestID uuid.UUID,
	stay StayPeriod,
	status Status,
	adults, children int,
	totalAmountCents, paidAmountCents int64,
	packageType, guestType string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		guestID:     guestID,
		stay:        stay,
		status:      status,
		adults:      adults,
		children:    children,
		totalAmount: totalAmountCents,
		paidAmount:  paidAmountCents,
		packageType: packageType,
		guestType:   guestType,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) CheckInGuest() error {
	return r.transition(StatusCheckedIn)
}

func (r *Reservation) CheckOutGuest() error {
	return r.transition(StatusCheckedOut)
}

// Cancel is the only delete the lifecycle defines; rows stay in place.
func (r *Reservation) Cancel() error {
	return r.transition(StatusCancelled)
}

func (r *Reservation) transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) Occupies() bool {
	return r.status.Occupies()
}

func (r *Reservation) OccupantCount() int {
	return r.adults + r.children
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) GuestID() uuid.UUID   { return r.guestID }
func (r *Reservation) Stay() StayPeriod     { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Adults() int          { return r.adults }
func (r *Reservation) Children() int        { return r.children }
func (r *Reservation) TotalAmount() int64   { return r.totalAmount }
func (r *Reservation) PaidAmount() int64    { return r.paidAmount }
func (r *Reservation) PackageType() string  { return r.packageType }
func (r *Reservation) GuestType() string    { return r.guestType }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// Snapshot is the exported-field projection used for audit serialization.
type Snapshot struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	GuestID          uuid.UUID `json:"guest_id"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Status           string    `json:"status"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	PaidAmountCents  int64     `json:"paid_amount_cents"`
	PackageType      string    `json:"package_type"`
	GuestType        string    `json:"guest_type"`
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:               r.id,
		RoomID:           r.roomID,
		GuestID:          r.guestID,
		CheckIn:          r.stay.CheckIn(),
		CheckOut:         r.stay.CheckOut(),
		Status:           r.status.String(),
		Adults:           r.adults,
		Children:         r.children,
		TotalAmountCents: r.totalAmount,
		PaidAmountCents:  r.paidAmount,
		PackageType:      r.packageType,
		GuestType:        r.guestType,
	}
}
