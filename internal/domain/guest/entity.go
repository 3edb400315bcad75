package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName = errors.New("guest first name cannot be empty")
	ErrNameTooLong    = errors.New("guest name is too long (max 100 characters)")
)

const (
	MaxNameLength = 100
)

// Guest is created alongside a reservation and edited afterwards; guests are
// never hard-deleted.
type Guest struct {
	id          uuid.UUID
	firstName   string
	lastName    string
	phone       string
	nationality string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewGuest(firstName, lastName, phone, nationality string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return nil, ErrEmptyGuestName
	}
	if len(firstName) > MaxNameLength || len(lastName) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Guest{
		id:          uuid.New(),
		firstName:   firstName,
		lastName:    lastName,
		phone:       strings.TrimSpace(phone),
		nationality: strings.TrimSpace(nationality),
	}, nil
}

func ReconstructGuest(
	id uuid.UUID,
	firstName, lastName, phone, nationality string,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		phone:       phone,
		nationality: nationality,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (g *Guest) FullName() string {
	if g.lastName == "" {
		return g.firstName
	}
	return g.firstName + " " + g.lastName
}

// Snapshot is the exported-field projection used for audit serialization.
type Snapshot struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	Nationality string    `json:"nationality"`
}

func (g *Guest) Snapshot() Snapshot {
	return Snapshot{
		ID:          g.id,
		FirstName:   g.firstName,
		LastName:    g.lastName,
		Phone:       g.phone,
		Nationality: g.nationality,
	}
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) FirstName() string    { return g.firstName }
func (g *Guest) LastName() string     { return g.lastName }
func (g *Guest) Phone() string        { return g.phone }
func (g *Guest) Nationality() string  { return g.nationality }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
