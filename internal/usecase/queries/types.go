package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Nights       int       `json:"nights"`
	Status       string    `json:"status"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	TotalCents   int64     `json:"total_cents"`
	PaidCents    int64     `json:"paid_cents"`
	BalanceCents int64     `json:"balance_cents"`
	PackageType  string    `json:"package_type,omitempty"`
	GuestType    string    `json:"guest_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"room_number"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomSuggestion struct {
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	Capacity     int       `json:"capacity"`
	NightlyCents int64     `json:"nightly_cents"`
	TotalCents   int64     `json:"total_cents"`
	BackToBack   bool      `json:"back_to_back"`
}

type AuditLogView struct {
	ID          uuid.UUID `json:"id"`
	Action      string    `json:"action"`
	TableName   string    `json:"table_name"`
	RecordID    uuid.UUID `json:"record_id"`
	OldValues   []byte    `json:"old_values,omitempty"`
	NewValues   []byte    `json:"new_values,omitempty"`
	ChangedBy   string    `json:"changed_by"`
	ChangedAt   time.Time `json:"changed_at"`
	Description string    `json:"description,omitempty"`
}

type OccupancyView struct {
	Date         time.Time `json:"date"`
	TotalRooms   int       `json:"total_rooms"`
	Occupied     int       `json:"occupied"`
	Arrivals     int       `json:"arrivals"`
	Departures   int       `json:"departures"`
	OccupancyPct float64   `json:"occupancy_pct"`
}

// LogFilter narrows audit log listings. Zero values mean "no constraint";
// ChangedBy matches as a substring.
type LogFilter struct {
	TableName string
	Action    string
	RecordID  uuid.UUID
	ChangedBy string
	Since     time.Time
	Until     time.Time
	Limit     int
}
