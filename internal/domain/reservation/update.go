package reservation

import (
	"time"

	"hotel-frontdesk/internal/pkg/patch"

	"github.com/google/uuid"
)

// Update is a sparse change set for the edit flow. Nil fields are left
// untouched; set fields are validated the same way creation is.
type Update struct {
	RoomID           *uuid.UUID
	CheckIn          *time.Time
	CheckOut         *time.Time
	Status           *Status
	Adults           *int
	Children         *int
	TotalAmountCents *int64
	PaidAmountCents  *int64
	PackageType      *string
	GuestType        *string
}

func (u Update) IsEmpty() bool {
	return u.RoomID == nil &&
		u.CheckIn == nil &&
		u.CheckOut == nil &&
		u.Status == nil &&
		u.Adults == nil &&
		u.Children == nil &&
		u.TotalAmountCents == nil &&
		u.PaidAmountCents == nil &&
		u.PackageType == nil &&
		u.GuestType == nil
}

// Apply mutates the reservation in place. Date changes are re-normalized to
// the standard hotel times; status changes go through the lifecycle check.
func (r *Reservation) Apply(u Update) error {
	if u.CheckIn != nil || u.CheckOut != nil {
		stay, err := NewStayPeriod(
			patch.Coalesce(u.CheckIn, r.stay.CheckIn()),
			patch.Coalesce(u.CheckOut, r.stay.CheckOut()),
		)
		if err != nil {
			return err
		}
		r.stay = stay
	}

	if u.RoomID != nil {
		if *u.RoomID == uuid.Nil {
			return ErrMissingRoom
		}
		r.roomID = *u.RoomID
	}

	if u.Adults != nil || u.Children != nil {
		adults := patch.Coalesce(u.Adults, r.adults)
		children := patch.Coalesce(u.Children, r.children)
		if adults < 1 || children < 0 {
			return ErrInvalidOccupants
		}
		r.adults = adults
		r.children = children
	}

	if u.TotalAmountCents != nil || u.PaidAmountCents != nil {
		total := patch.Coalesce(u.TotalAmountCents, r.totalAmount)
		paid := patch.Coalesce(u.PaidAmountCents, r.paidAmount)
		if total < 0 || paid < 0 {
			return ErrNegativeAmount
		}
		r.totalAmount = total
		r.paidAmount = paid
	}

	if u.PackageType != nil {
		r.packageType = *u.PackageType
	}
	if u.GuestType != nil {
		r.guestType = *u.GuestType
	}

	if u.Status != nil {
		if err := r.transition(*u.Status); err != nil {
			return err
		}
	}

	return nil
}
