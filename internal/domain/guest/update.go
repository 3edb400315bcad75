package guest

import (
	"strings"

	"hotel-frontdesk/internal/pkg/patch"
)

// Update is a sparse change set for the guest edit flow. Nil fields are left
// untouched; set fields go through the same validation as creation.
type Update struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Nationality *string
}

func (u Update) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.Phone == nil &&
		u.Nationality == nil
}

func (g *Guest) Apply(u Update) error {
	if u.FirstName != nil || u.LastName != nil {
		firstName := strings.TrimSpace(patch.Coalesce(u.FirstName, g.firstName))
		lastName := strings.TrimSpace(patch.Coalesce(u.LastName, g.lastName))
		if firstName == "" {
			return ErrEmptyGuestName
		}
		if len(firstName) > MaxNameLength || len(lastName) > MaxNameLength {
			return ErrNameTooLong
		}
		g.firstName = firstName
		g.lastName = lastName
	}

	if u.Phone != nil {
		g.phone = strings.TrimSpace(*u.Phone)
	}
	if u.Nationality != nil {
		g.nationality = strings.TrimSpace(*u.Nationality)
	}
	return nil
}
