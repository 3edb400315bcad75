package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable      = errs.New("room is not available for the requested stay")
	ErrRoomInactive         = errs.New("room is not in service")
	ErrRoomCapacityExceeded = errs.New("party does not fit the room")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrGuestNotFound        = errs.New("guest not found")
	ErrEmptyUpdate          = errs.New("no fields to update")
)

type GuestInput struct {
	FirstName   string
	LastName    string
	Phone       string
	Nationality string
}

type CreateReservationInput struct {
	RoomID      uuid.UUID
	Guest       GuestInput
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	PaidCents   int64
	PackageType string
	GuestType   string
}

type BookingCommands struct {
	uow          shared.UnitOfWork
	engine       *usecase.AvailabilityEngine
	reservations ReservationWrites
	guests       GuestWrites
	rooms        usecase.RoomReads
	audit        AuditWrites
	pricing      reservation.PriceCalculator
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	engine *usecase.AvailabilityEngine,
	reservations ReservationWrites,
	guests GuestWrites,
	rooms usecase.RoomReads,
	audit AuditWrites,
	pricing reservation.PriceCalculator,
) *BookingCommands {
	return &BookingCommands{
		uow:          uow,
		engine:       engine,
		reservations: reservations,
		guests:       guests,
		rooms:        rooms,
		audit:        audit,
		pricing:      pricing,
	}
}

// CreateReservation books a stay. Guest, reservation, and audit rows are
// written in one transaction, and availability is re-evaluated inside it so
// a concurrent booking of the same room cannot slip between check and
// insert. Returned conflicts carry any non-blocking back-to-back warning;
// on ErrRoomUnavailable they carry the blocking conflicts instead.
func (c *BookingCommands) CreateReservation(ctx context.Context, actor string, in CreateReservationInput) (uuid.UUID, []usecase.ConflictInfo, error) {
	stay, err := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return uuid.Nil, nil, errs.Mark(err, usecase.ErrInvalidDateRange)
	}

	var (
		reservationID uuid.UUID
		conflicts     []usecase.ConflictInfo
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		rm, err := c.rooms.FindByID(ctx, tx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, usecase.ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to load room")
		}
		if !rm.IsActive() {
			return ErrRoomInactive
		}
		if !rm.Fits(in.Adults + in.Children) {
			return ErrRoomCapacityExceeded
		}

		result, err := c.engine.CheckAvailabilityIn(ctx, tx, in.RoomID, stay, uuid.Nil)
		if err != nil {
			return err
		}
		conflicts = result.Conflicts
		if !result.Available {
			return ErrRoomUnavailable
		}

		g, err := guest.NewGuest(in.Guest.FirstName, in.Guest.LastName, in.Guest.Phone, in.Guest.Nationality)
		if err != nil {
			return err
		}
		if err := c.guests.Create(ctx, tx, g); err != nil {
			return errs.Wrap(err, "failed to persist guest")
		}

		res, err := reservation.NewReservation(
			in.RoomID, g.ID(), stay,
			in.Adults, in.Children,
			c.pricing.TotalCents(rm.PricePerNight(), stay), in.PaidCents,
			in.PackageType, in.GuestType,
		)
		if err != nil {
			return err
		}
		if err := c.reservations.Create(ctx, tx, res); err != nil {
			return errs.Wrap(err, "failed to persist reservation")
		}
		reservationID = res.ID()

		return c.auditCreate(ctx, tx, res, actor)
	})
	if err != nil {
		return uuid.Nil, conflicts, err
	}
	return reservationID, conflicts, nil
}

// UpdateReservation applies a sparse edit. When the dates or room change,
// availability is re-checked in the same transaction with the reservation
// excluded from its own conflict set.
func (c *BookingCommands) UpdateReservation(ctx context.Context, actor string, id uuid.UUID, upd reservation.Update) ([]usecase.ConflictInfo, error) {
	if upd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	var conflicts []usecase.ConflictInfo
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := c.findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		before := res.Snapshot()

		if err := res.Apply(upd); err != nil {
			return err
		}

		if upd.RoomID != nil || upd.CheckIn != nil || upd.CheckOut != nil {
			rm, err := c.rooms.FindByID(ctx, tx, res.RoomID())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, usecase.ErrRoomNotFound)
				}
				return errs.Wrap(err, "failed to load room")
			}
			if !rm.IsActive() {
				return ErrRoomInactive
			}

			result, err := c.engine.CheckAvailabilityIn(ctx, tx, res.RoomID(), res.Stay(), res.ID())
			if err != nil {
				return err
			}
			conflicts = result.Conflicts
			if !result.Available {
				return ErrRoomUnavailable
			}
		}

		if err := c.reservations.Update(ctx, tx, res); err != nil {
			return errs.Wrap(err, "failed to persist reservation")
		}

		return c.auditUpdate(ctx, tx, shared.AuditTableReservations, res.ID(), before, res.Snapshot(), actor, "reservation updated")
	})
	if err != nil {
		return conflicts, err
	}
	return conflicts, nil
}

// UpdateGuest applies a sparse edit to the guest record, audited under the
// guests table.
func (c *BookingCommands) UpdateGuest(ctx context.Context, actor string, id uuid.UUID, upd guest.Update) error {
	if upd.IsEmpty() {
		return ErrEmptyUpdate
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		g, err := c.guests.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGuestNotFound)
			}
			return errs.Wrap(err, "failed to load guest")
		}
		before := g.Snapshot()

		if err := g.Apply(upd); err != nil {
			return err
		}
		if err := c.guests.Update(ctx, tx, g); err != nil {
			return errs.Wrap(err, "failed to persist guest")
		}

		return c.auditUpdate(ctx, tx, shared.AuditTableGuests, g.ID(), before, g.Snapshot(), actor, "guest updated")
	})
}

// CheckIn marks the guest as arrived. Arrival is refused while another
// guest is still checked in on overlapping dates.
func (c *BookingCommands) CheckIn(ctx context.Context, actor string, id uuid.UUID) error {
	return c.changeStatus(ctx, actor, id, (*reservation.Reservation).CheckInGuest, "guest checked in", c.ensureRoomVacated)
}

// CheckOut marks the guest as departed.
func (c *BookingCommands) CheckOut(ctx context.Context, actor string, id uuid.UUID) error {
	return c.changeStatus(ctx, actor, id, (*reservation.Reservation).CheckOutGuest, "guest checked out")
}

// Cancel voids the reservation; the row is kept for the audit trail.
func (c *BookingCommands) Cancel(ctx context.Context, actor string, id uuid.UUID) error {
	return c.changeStatus(ctx, actor, id, (*reservation.Reservation).Cancel, "reservation cancelled")
}

func (c *BookingCommands) changeStatus(
	ctx context.Context,
	actor string,
	id uuid.UUID,
	transition func(*reservation.Reservation) error,
	description string,
	guards ...func(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := c.findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, guard := range guards {
			if err := guard(ctx, tx, res); err != nil {
				return err
			}
		}
		before := res.Snapshot()

		if err := transition(res); err != nil {
			return err
		}
		if err := c.reservations.Update(ctx, tx, res); err != nil {
			return errs.Wrap(err, "failed to persist reservation")
		}

		return c.auditUpdate(ctx, tx, shared.AuditTableReservations, res.ID(), before, res.Snapshot(), actor, description)
	})
}

// ensureRoomVacated checks the room for a lingering occupant before an
// arrival. Only a checked_in stay holds the room; cancelled and checked-out
// rows are history and never count against it.
func (c *BookingCommands) ensureRoomVacated(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	occupying, err := c.reservations.FindOverlapping(
		ctx, tx, res.RoomID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		[]reservation.Status{reservation.StatusCheckedIn},
	)
	if err != nil {
		return errs.Wrap(err, "failed to check room occupancy")
	}
	if len(occupying) > 0 {
		return ErrRoomUnavailable
	}
	return nil
}

func (c *BookingCommands) findReservation(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := c.reservations.FindByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}
	return res, nil
}

func (c *BookingCommands) auditCreate(ctx context.Context, tx db.DBTX, res *reservation.Reservation, actor string) error {
	newValues, err := json.Marshal(res.Snapshot())
	if err != nil {
		return errs.Wrap(err, "failed to serialize reservation snapshot")
	}

	entry := shared.AuditEntry{
		Action:      shared.AuditActionCreate,
		TableName:   shared.AuditTableReservations,
		RecordID:    res.ID(),
		NewValues:   newValues,
		ChangedBy:   actor,
		Description: "reservation created",
	}
	if err := c.audit.Append(ctx, tx, entry); err != nil {
		return errs.Wrap(err, "failed to append audit entry")
	}
	return nil
}

func (c *BookingCommands) auditUpdate(ctx context.Context, tx db.DBTX, table string, recordID uuid.UUID, before, after any, actor, description string) error {
	oldValues, newValues, err := snapshotDiff(before, after)
	if err != nil {
		return errs.Wrap(err, "failed to diff snapshots")
	}
	if oldValues == nil && newValues == nil {
		return nil
	}

	entry := shared.AuditEntry{
		Action:      shared.AuditActionUpdate,
		TableName:   table,
		RecordID:    recordID,
		OldValues:   oldValues,
		NewValues:   newValues,
		ChangedBy:   actor,
		Description: description,
	}
	if err := c.audit.Append(ctx, tx, entry); err != nil {
		return errs.Wrap(err, "failed to append audit entry")
	}
	return nil
}

// snapshotDiff reduces two snapshots to the fields that actually changed,
// serialized as the old/new audit payloads. Both are nil when nothing
// changed.
func snapshotDiff(before, after any) (oldValues, newValues []byte, err error) {
	oldMap, err := snapshotMap(before)
	if err != nil {
		return nil, nil, err
	}
	newMap, err := snapshotMap(after)
	if err != nil {
		return nil, nil, err
	}

	oldDiff := make(map[string]any)
	newDiff := make(map[string]any)
	for key, oldVal := range oldMap {
		if newVal, ok := newMap[key]; ok && oldVal != newVal {
			oldDiff[key] = oldVal
			newDiff[key] = newVal
		}
	}
	if len(oldDiff) == 0 {
		return nil, nil, nil
	}

	if oldValues, err = json.Marshal(oldDiff); err != nil {
		return nil, nil, err
	}
	if newValues, err = json.Marshal(newDiff); err != nil {
		return nil, nil, err
	}
	return oldValues, newValues, nil
}

func snapshotMap(s any) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
