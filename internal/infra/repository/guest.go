package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO guests (id, first_name, last_name, phone, nationality)
		VALUES ($1, $2, $3, $4, $5)`,
		g.ID(), g.FirstName(), g.LastName(), g.Phone(), g.Nationality(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) Update(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE guests
		SET first_name = $2, last_name = $3, phone = $4, nationality = $5, updated_at = now()
		WHERE id = $1`,
		g.ID(), g.FirstName(), g.LastName(), g.Phone(), g.Nationality(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*guest.Guest, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, first_name, last_name, phone, nationality, created_at, updated_at
		FROM guests
		WHERE id = $1`, id)

	var (
		gid                  uuid.UUID
		firstName, lastName  string
		phone, nationality   string
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&gid, &firstName, &lastName, &phone, &nationality, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}

	return guest.ReconstructGuest(gid, firstName, lastName, phone, nationality, createdAt.Time, updatedAt.Time), nil
}
