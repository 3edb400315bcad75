package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 16 characters)")
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
	ErrNegativePrice     = errors.New("nightly price cannot be negative")
)

const (
	MaxRoomNumberLength = 16
)

// Room is a physical hotel room. Rooms are seeded at setup time and are
// never hard-deleted; retiring a room flips the active flag.
type Room struct {
	id            uuid.UUID
	number        string
	capacity      int
	pricePerNight int64 // cents
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(number string, capacity int, pricePerNightCents int64) (*Room, error) {
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:            uuid.New(),
		number:        strings.TrimSpace(number),
		capacity:      capacity,
		pricePerNight: pricePerNightCents,
		active:        true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	capacity int,
	pricePerNightCents int64,
	active bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		number:        number,
		capacity:      capacity,
		pricePerNight: pricePerNightCents,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Room) Deactivate() {
	r.active = false
}

func (r *Room) Fits(occupants int) bool {
	return occupants <= r.capacity
}

func validateRoomNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) PricePerNight() int64 { return r.pricePerNight }
func (r *Room) IsActive() bool       { return r.active }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
