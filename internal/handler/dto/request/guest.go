package request

import (
	"hotel-frontdesk/internal/domain/guest"
)

type UpdateGuestRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

func (r UpdateGuestRequest) ToUpdate() guest.Update {
	return guest.Update{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Nationality: r.Nationality,
	}
}
