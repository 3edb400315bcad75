package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const reservationColumns = `id, room_id, guest_id, check_in, check_out, status,
	adults, children, total_amount_cents, paid_amount_cents, package_type, guest_type,
	created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO reservations (id, room_id, guest_id, check_in, check_out, status,
			adults, children, total_amount_cents, paid_amount_cents, package_type, guest_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		res.ID(), res.RoomID(), res.GuestID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(), res.Status().String(),
		res.Adults(), res.Children(), res.TotalAmount(), res.PaidAmount(),
		res.PackageType(), res.GuestType(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations
		SET room_id = $2, guest_id = $3, check_in = $4, check_out = $5, status = $6,
			adults = $7, children = $8, total_amount_cents = $9, paid_amount_cents = $10,
			package_type = $11, guest_type = $12, updated_at = now()
		WHERE id = $1`,
		res.ID(), res.RoomID(), res.GuestID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(), res.Status().String(),
		res.Adults(), res.Children(), res.TotalAmount(), res.PaidAmount(),
		res.PackageType(), res.GuestType(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// FindOverlapping applies the standard half-open overlap test:
// existing.check_in < checkOut AND existing.check_out > checkIn.
func (r *ReservationRepository) FindOverlapping(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	checkIn, checkOut time.Time,
	statuses []reservation.Status,
) ([]*reservation.Reservation, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1
		  AND status = ANY($2)
		  AND check_in < $3
		  AND check_out > $4
		ORDER BY check_in`,
		roomID, statusStrings(statuses), checkOut, checkIn,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}
	return collectReservations(rows)
}

// FindConflictCandidates widens the lower boundary of the overlap test to
// the 12:00 checkout instant of the check-in date, so a same-day turnover
// neighbor (checkout exactly when the new stay's day begins) is returned
// and can be classified instead of silently ignored.
func (r *ReservationRepository) FindConflictCandidates(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	stay reservation.StayPeriod,
	excludeID uuid.UUID,
) ([]*reservation.Reservation, error) {
	turnoverFloor := reservation.NormalizeCheckOut(stay.CheckIn())

	rows, err := dbtx.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1
		  AND id <> $2
		  AND status = ANY($3)
		  AND check_in < $4
		  AND check_out >= $5
		ORDER BY check_in`,
		roomID, excludeID, statusStrings(reservation.OccupyingStatuses()),
		stay.CheckOut(), turnoverFloor,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conflict candidates", err)
	}
	return collectReservations(rows)
}

// FindCoveringDate returns the occupying reservation whose stay covers the
// given calendar day, or nil when the room is free that day.
func (r *ReservationRepository) FindCoveringDate(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	date time.Time,
) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1
		  AND status = ANY($2)
		  AND check_in <= $3
		  AND check_out > $4
		ORDER BY check_in
		LIMIT 1`,
		roomID, statusStrings(reservation.OccupyingStatuses()),
		reservation.NormalizeCheckIn(date), reservation.NormalizeCheckOut(date),
	)

	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find reservation covering date", err)
	}
	return res, nil
}

// HasCheckOutOn reports whether some other occupying reservation vacates the
// room on the given calendar day.
func (r *ReservationRepository) HasCheckOutOn(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	date time.Time,
	excludeID uuid.UUID,
) (bool, error) {
	return r.existsOnBoundary(ctx, dbtx, `check_out = $4`, roomID, reservation.NormalizeCheckOut(date), excludeID)
}

// HasCheckInOn reports whether some other occupying reservation arrives in
// the room on the given calendar day.
func (r *ReservationRepository) HasCheckInOn(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	date time.Time,
	excludeID uuid.UUID,
) (bool, error) {
	return r.existsOnBoundary(ctx, dbtx, `check_in = $4`, roomID, reservation.NormalizeCheckIn(date), excludeID)
}

func (r *ReservationRepository) existsOnBoundary(
	ctx context.Context,
	dbtx db.DBTX,
	boundaryCond string,
	roomID uuid.UUID,
	boundary time.Time,
	excludeID uuid.UUID,
) (bool, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND id <> $2
			  AND status = ANY($3)
			  AND `+boundaryCond+`
		)`,
		roomID, excludeID, statusStrings(reservation.OccupyingStatuses()), boundary,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check boundary reservation", err)
	}
	return exists, nil
}

// LatestCreatedAt is the watermark the change watcher polls. Nil when the
// table is empty.
func (r *ReservationRepository) LatestCreatedAt(ctx context.Context, dbtx db.DBTX) (*time.Time, error) {
	row := dbtx.QueryRow(ctx, `SELECT max(created_at) FROM reservations`)

	var latest pgtype.Timestamptz
	if err := row.Scan(&latest); err != nil {
		return nil, infra.WrapRepoErr("failed to read latest reservation timestamp", err)
	}
	return pgconv.TimePtrFromPgtype(latest), nil
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func collectReservations(rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}) ([]*reservation.Reservation, error) {
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, roomID, guestID      uuid.UUID
		checkIn, checkOut        pgtype.Timestamptz
		status                   string
		adults, children         int
		totalAmount, paidAmount  int64
		packageType, guestType   string
		createdAt, updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &roomID, &guestID, &checkIn, &checkOut, &status,
		&adults, &children, &totalAmount, &paidAmount, &packageType, &guestType,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, roomID, guestID,
		reservation.ReconstructStayPeriod(checkIn.Time, checkOut.Time),
		reservation.Status(status),
		adults, children,
		totalAmount, paidAmount,
		packageType, guestType,
		createdAt.Time, updatedAt.Time,
	), nil
}
