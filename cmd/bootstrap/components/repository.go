package components

import (
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/infra/readstore"
	"hotel-frontdesk/internal/infra/repository"
	"hotel-frontdesk/internal/infra/uow"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationWrites)),
			fx.As(new(usecase.AvailabilityReads)),
			fx.As(new(usecase.WatermarkReads)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomReads)),
		),
		fx.Annotate(
			repository.NewGuestRepository,
			fx.As(new(commands.GuestWrites)),
		),
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(commands.AuditWrites)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewAuditLogReadStore,
			fx.As(new(queries.AuditLogViewRepo)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
