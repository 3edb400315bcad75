package response

import (
	"time"

	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	GuestID      uuid.UUID `json:"guestId"`
	GuestName    string    `json:"guestName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	Nights       int       `json:"nights"`
	Status       string    `json:"status"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	TotalCents   int64     `json:"totalCents"`
	PaidCents    int64     `json:"paidCents"`
	BalanceCents int64     `json:"balanceCents"`
	PackageType  string    `json:"packageType,omitempty"`
	GuestType    string    `json:"guestType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	GuestName  string    `json:"guestName"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ConflictResponse struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservationId"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Status        string    `json:"status"`
}

type CreateReservationResponse struct {
	ID        uuid.UUID          `json:"id"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

type RoomSuggestionResponse struct {
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	Capacity     int       `json:"capacity"`
	NightlyCents int64     `json:"nightlyCents"`
	TotalCents   int64     `json:"totalCents"`
	BackToBack   bool      `json:"backToBack"`
}

type RackCellResponse struct {
	Date          string     `json:"date"`
	Cell          string     `json:"cell"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	Status        string     `json:"status,omitempty"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationListItem(item *queries.ReservationListItem) (*ReservationListResponse, error) {
	var resp ReservationListResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationList(items []*queries.ReservationListItem) ([]*ReservationListResponse, error) {
	result := make([]*ReservationListResponse, len(items))
	for i, item := range items {
		resp, err := FromReservationListItem(item)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}

func FromConflicts(conflicts []usecase.ConflictInfo) []ConflictResponse {
	if len(conflicts) == 0 {
		return nil
	}
	result := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		result[i] = ConflictResponse{
			Type:          string(c.Type),
			ReservationID: c.ReservationID,
			CheckIn:       c.CheckIn,
			CheckOut:      c.CheckOut,
			Status:        c.Status,
		}
	}
	return result
}

func FromAvailabilityResult(result *usecase.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: result.Available,
		Conflicts: FromConflicts(result.Conflicts),
	}
}

func FromRoomSuggestions(suggestions []*queries.RoomSuggestion) ([]*RoomSuggestionResponse, error) {
	result := make([]*RoomSuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		var resp RoomSuggestionResponse
		if err := copier.Copy(&resp, s); err != nil {
			return nil, err
		}
		result[i] = &resp
	}
	return result, nil
}

func FromRackRow(row []*usecase.RackCell) []RackCellResponse {
	result := make([]RackCellResponse, len(row))
	for i, cell := range row {
		result[i] = RackCellResponse{
			Date:          cell.Date.Format("2006-01-02"),
			Cell:          cell.Cell.String(),
			ReservationID: cell.ReservationID,
			Status:        cell.Status,
		}
	}
	return result
}
