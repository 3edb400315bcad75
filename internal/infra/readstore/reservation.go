package readstore

import (
	"context"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const defaultSearchLimit = 100

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewSelect = `
	SELECT r.id, r.room_id, rm.room_number, r.guest_id,
		trim(g.first_name || ' ' || g.last_name) AS guest_name,
		r.check_in, r.check_out, r.status,
		r.adults, r.children, r.total_amount_cents, r.paid_amount_cents,
		r.package_type, r.guest_type, r.created_at, r.updated_at
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id
	JOIN guests g ON g.id = r.guest_id`

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view by ID", err)
	}
	return view, nil
}

// Search matches guest names and room numbers, most recent first.
func (r *ReservationReadStore) Search(ctx context.Context, query string, limit int) ([]*queries.ReservationListItem, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	pattern := "%" + query + "%"

	rows, err := r.db.Query(ctx, `
		SELECT r.id, rm.room_number,
			trim(g.first_name || ' ' || g.last_name) AS guest_name,
			r.check_in, r.check_out, r.status, r.total_amount_cents, r.created_at
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN guests g ON g.id = r.guest_id
		WHERE g.first_name ILIKE $1 OR g.last_name ILIKE $1 OR rm.room_number ILIKE $1
		ORDER BY r.created_at DESC
		LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item              queries.ReservationListItem
			checkIn, checkOut pgtype.Timestamptz
			createdAt         pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.RoomNumber, &item.GuestName,
			&checkIn, &checkOut, &item.Status, &item.TotalCents, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list row", err)
		}
		item.CheckIn = checkIn.Time
		item.CheckOut = checkOut.Time
		item.CreatedAt = createdAt.Time
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation list rows", err)
	}
	return result, nil
}

func scanReservationView(row interface{ Scan(dest ...any) error }) (*queries.ReservationView, error) {
	var (
		view                 queries.ReservationView
		checkIn, checkOut    pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.GuestID, &view.GuestName,
		&checkIn, &checkOut, &view.Status,
		&view.Adults, &view.Children, &view.TotalCents, &view.PaidCents,
		&view.PackageType, &view.GuestType, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	stay := reservation.ReconstructStayPeriod(checkIn.Time, checkOut.Time)
	view.CheckIn = stay.CheckIn()
	view.CheckOut = stay.CheckOut()
	view.Nights = stay.Nights()
	view.BalanceCents = view.TotalCents - view.PaidCents
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
