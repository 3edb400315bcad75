package request

import (
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID      uuid.UUID `json:"room_id" binding:"required"`
	CheckIn     time.Time `json:"check_in" binding:"required"`
	CheckOut    time.Time `json:"check_out" binding:"required"`
	Adults      int       `json:"adults" binding:"required,min=1"`
	Children    int       `json:"children" binding:"min=0"`
	PaidCents   int64     `json:"paid_cents" binding:"min=0"`
	PackageType string    `json:"package_type"`
	GuestType   string    `json:"guest_type"`

	GuestFirstName   string `json:"guest_first_name" binding:"required"`
	GuestLastName    string `json:"guest_last_name"`
	GuestPhone       string `json:"guest_phone"`
	GuestNationality string `json:"guest_nationality"`
}

type UpdateReservationRequest struct {
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	CheckIn          *time.Time `json:"check_in,omitempty"`
	CheckOut         *time.Time `json:"check_out,omitempty"`
	Status           *string    `json:"status,omitempty"`
	Adults           *int       `json:"adults,omitempty"`
	Children         *int       `json:"children,omitempty"`
	TotalAmountCents *int64     `json:"total_amount_cents,omitempty"`
	PaidAmountCents  *int64     `json:"paid_amount_cents,omitempty"`
	PackageType      *string    `json:"package_type,omitempty"`
	GuestType        *string    `json:"guest_type,omitempty"`
}

func (r UpdateReservationRequest) ToUpdate() (reservation.Update, error) {
	upd := reservation.Update{
		RoomID:           r.RoomID,
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		Adults:           r.Adults,
		Children:         r.Children,
		TotalAmountCents: r.TotalAmountCents,
		PaidAmountCents:  r.PaidAmountCents,
		PackageType:      r.PackageType,
		GuestType:        r.GuestType,
	}

	if r.Status != nil {
		status := reservation.Status(strings.ToLower(strings.TrimSpace(*r.Status)))
		if !status.IsValid() {
			return reservation.Update{}, reservation.ErrInvalidStatus
		}
		upd.Status = &status
	}
	return upd, nil
}
