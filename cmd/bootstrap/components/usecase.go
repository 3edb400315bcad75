package components

import (
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	usecase.NewAvailabilityEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		NewLogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewLogQueries,
		queries.NewReportQueries,
	),
)

func NewLogCommands(uowImpl shared.UnitOfWork, audit commands.AuditWrites, clk clock.Clock, cfg config.Config) *commands.LogCommands {
	retention := time.Duration(cfg.Hotel.LogRetentionDays) * 24 * time.Hour
	return commands.NewLogCommands(uowImpl, audit, clk, retention)
}
