package commands

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Storage ports the command side writes through. Implemented by the
// repository package; commands never see pgx directly.

type ReservationWrites interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindOverlapping(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time, statuses []reservation.Status) ([]*reservation.Reservation, error)
}

type GuestWrites interface {
	Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error
	Update(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*guest.Guest, error)
}

type AuditWrites interface {
	Append(ctx context.Context, dbtx db.DBTX, entry shared.AuditEntry) error
	PurgeOlderThan(ctx context.Context, dbtx db.DBTX, cutoff time.Time) (int64, error)
}
