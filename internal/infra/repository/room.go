package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const roomColumns = `id, room_number, capacity, price_per_night_cents, is_active, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, rm *room.Room) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO rooms (id, room_number, capacity, price_per_night_cents, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		rm.ID(), rm.Number(), rm.Capacity(), rm.PricePerNight(), rm.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, rm *room.Room) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE rooms
		SET room_number = $2, capacity = $3, price_per_night_cents = $4, is_active = $5, updated_at = now()
		WHERE id = $1`,
		rm.ID(), rm.Number(), rm.Capacity(), rm.PricePerNight(), rm.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

// FindActiveWithCapacity returns active rooms that hold at least minCapacity
// occupants, in room-number order.
func (r *RoomRepository) FindActiveWithCapacity(ctx context.Context, dbtx db.DBTX, minCapacity int) ([]*room.Room, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE is_active AND capacity >= $1
		ORDER BY room_number`,
		minCapacity,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active rooms", err)
	}
	defer rows.Close()

	var result []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id                   uuid.UUID
		number               string
		capacity             int
		pricePerNight        int64
		active               bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &number, &capacity, &pricePerNight, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return room.ReconstructRoom(id, number, capacity, pricePerNight, active, createdAt.Time, updatedAt.Time), nil
}
