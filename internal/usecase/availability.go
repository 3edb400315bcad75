package usecase

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("check-in must be before check-out")
	ErrRoomNotFound     = errs.New("room not found")
)

// ConflictType distinguishes blocking overlaps from the same-day turnover
// case the front desk may accept.
type ConflictType string

const (
	// ConflictOverlap blocks the booking outright.
	ConflictOverlap ConflictType = "conflict"
	// ConflictBackToBack flags a departing guest whose 12:00 checkout frees
	// the room before the 14:00 arrival. Non-blocking.
	ConflictBackToBack ConflictType = "back_to_back_possible"
)

type ConflictInfo struct {
	Type          ConflictType `json:"type"`
	ReservationID uuid.UUID    `json:"reservation_id"`
	CheckIn       time.Time    `json:"check_in"`
	CheckOut      time.Time    `json:"check_out"`
	Status        string       `json:"status"`
}

// Blocking reports whether this conflict prevents the booking.
func (c ConflictInfo) Blocking() bool {
	return c.Type == ConflictOverlap
}

type AvailabilityResult struct {
	Available bool           `json:"available"`
	Conflicts []ConflictInfo `json:"conflicts,omitempty"`
}

// AvailabilityReads is the slice of reservation storage the engine needs.
type AvailabilityReads interface {
	FindConflictCandidates(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod, excludeID uuid.UUID) ([]*reservation.Reservation, error)
	FindCoveringDate(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, date time.Time) (*reservation.Reservation, error)
	HasCheckOutOn(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
	HasCheckInOn(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
}

type RoomReads interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error)
	FindActiveWithCapacity(ctx context.Context, dbtx db.DBTX, minCapacity int) ([]*room.Room, error)
}

type AvailabilityEngine struct {
	uow          shared.UnitOfWork
	reservations AvailabilityReads
	rooms        RoomReads
	pricing      reservation.PriceCalculator
}

func NewAvailabilityEngine(
	uow shared.UnitOfWork,
	reservations AvailabilityReads,
	rooms RoomReads,
	pricing reservation.PriceCalculator,
) *AvailabilityEngine {
	return &AvailabilityEngine{
		uow:          uow,
		reservations: reservations,
		rooms:        rooms,
		pricing:      pricing,
	}
}

// CheckAvailability evaluates a candidate stay against every occupying
// reservation of the room. The room is available when no blocking conflict
// exists; a back-to-back turnover neighbor is reported but does not block.
func (e *AvailabilityEngine) CheckAvailability(ctx context.Context, roomID uuid.UUID, stay reservation.StayPeriod) (*AvailabilityResult, error) {
	var result *AvailabilityResult
	err := e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		result, err = e.CheckAvailabilityIn(ctx, dbtx, roomID, stay, uuid.Nil)
		return err
	})
	return result, err
}

// CheckAvailabilityIn runs the same evaluation on a caller-supplied handle,
// so booking commands can revalidate inside their own transaction.
// excludeID removes the reservation being edited from its own conflict set.
func (e *AvailabilityEngine) CheckAvailabilityIn(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	stay reservation.StayPeriod,
	excludeID uuid.UUID,
) (*AvailabilityResult, error) {
	candidates, err := e.reservations.FindConflictCandidates(ctx, dbtx, roomID, stay, excludeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load conflict candidates")
	}

	result := &AvailabilityResult{Available: true}
	for _, cand := range candidates {
		info := classifyCandidate(cand, stay)
		if info == nil {
			continue
		}
		if info.Blocking() {
			result.Available = false
		}
		result.Conflicts = append(result.Conflicts, *info)
	}
	return result, nil
}

// classifyCandidate sorts one occupying neighbor into the conflict taxonomy.
// A true interval overlap always blocks. A neighbor that checks out the
// morning of the new arrival is a feasible turnover only when the guest is
// already in the room; a confirmed-but-absent neighbor might still shift its
// dates, so it blocks.
func classifyCandidate(cand *reservation.Reservation, stay reservation.StayPeriod) *ConflictInfo {
	info := &ConflictInfo{
		ReservationID: cand.ID(),
		CheckIn:       cand.Stay().CheckIn(),
		CheckOut:      cand.Stay().CheckOut(),
		Status:        cand.Status().String(),
	}

	switch {
	case cand.Stay().Overlaps(stay):
		info.Type = ConflictOverlap
	case cand.Stay().EndsAtStartOf(stay):
		if cand.Status() == reservation.StatusCheckedIn {
			info.Type = ConflictBackToBack
		} else {
			info.Type = ConflictOverlap
		}
	default:
		return nil
	}
	return info
}

func (e *AvailabilityEngine) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, stay reservation.StayPeriod) (bool, error) {
	result, err := e.CheckAvailability(ctx, roomID, stay)
	if err != nil {
		return false, err
	}
	return result.Available, nil
}

// SuggestRooms lists active rooms that fit the party and are free for the
// stay, priced for its full length. Rooms reachable only via a turnover are
// included and flagged.
func (e *AvailabilityEngine) SuggestRooms(ctx context.Context, stay reservation.StayPeriod, occupants int) ([]*queries.RoomSuggestion, error) {
	var suggestions []*queries.RoomSuggestion

	err := e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		rooms, err := e.rooms.FindActiveWithCapacity(ctx, dbtx, occupants)
		if err != nil {
			return errs.Wrap(err, "failed to load candidate rooms")
		}

		for _, rm := range rooms {
			result, err := e.CheckAvailabilityIn(ctx, dbtx, rm.ID(), stay, uuid.Nil)
			if err != nil {
				return err
			}
			if !result.Available {
				continue
			}

			suggestions = append(suggestions, &queries.RoomSuggestion{
				RoomID:       rm.ID(),
				RoomNumber:   rm.Number(),
				Capacity:     rm.Capacity(),
				NightlyCents: rm.PricePerNight(),
				TotalCents:   e.pricing.TotalCents(rm.PricePerNight(), stay),
				BackToBack:   len(result.Conflicts) > 0,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// RackCell is one day of one room on the rack grid.
type RackCell struct {
	Date          time.Time            `json:"date"`
	Cell          reservation.CellType `json:"cell"`
	ReservationID *uuid.UUID           `json:"reservation_id,omitempty"`
	Status        string               `json:"status,omitempty"`
}

// ClassifyDay resolves the cell shape for one room and day: which occupying
// reservation covers it, and whether a same-day turnover splits the cell.
func (e *AvailabilityEngine) ClassifyDay(ctx context.Context, roomID uuid.UUID, date time.Time) (*RackCell, error) {
	var cell *RackCell
	err := e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		cell, err = e.classifyDayIn(ctx, dbtx, roomID, date)
		return err
	})
	return cell, err
}

func (e *AvailabilityEngine) classifyDayIn(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, date time.Time) (*RackCell, error) {
	cell := &RackCell{Date: reservation.Midnight(date), Cell: reservation.CellEmpty}

	res, err := e.reservations.FindCoveringDate(ctx, dbtx, roomID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find covering reservation")
	}
	if res == nil {
		return cell, nil
	}

	hasPrevious, err := e.reservations.HasCheckOutOn(ctx, dbtx, roomID, date, res.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check same-day departure")
	}
	hasNext, err := e.reservations.HasCheckInOn(ctx, dbtx, roomID, date, res.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check same-day arrival")
	}

	id := res.ID()
	cell.Cell = reservation.ClassifyDay(res.Stay(), date, hasPrevious, hasNext)
	cell.ReservationID = &id
	cell.Status = res.Status().String()
	return cell, nil
}

// RackRow classifies a consecutive run of days for one room, the row a rack
// view renders.
func (e *AvailabilityEngine) RackRow(ctx context.Context, roomID uuid.UUID, from time.Time, days int) ([]*RackCell, error) {
	if days < 1 {
		return nil, ErrInvalidDateRange
	}

	row := make([]*RackCell, 0, days)
	err := e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, err := e.rooms.FindByID(ctx, dbtx, roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to load room")
		}

		for i := 0; i < days; i++ {
			cell, err := e.classifyDayIn(ctx, dbtx, roomID, from.AddDate(0, 0, i))
			if err != nil {
				return err
			}
			row = append(row, cell)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// RoomStatusOn reports what the front desk sees for a room on a given day:
// "vacant", or the status of the reservation occupying it.
func (e *AvailabilityEngine) RoomStatusOn(ctx context.Context, roomID uuid.UUID, date time.Time) (string, error) {
	status := "vacant"
	err := e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		res, err := e.reservations.FindCoveringDate(ctx, dbtx, roomID, date)
		if err != nil {
			return errs.Wrap(err, "failed to find covering reservation")
		}
		if res != nil {
			status = res.Status().String()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
