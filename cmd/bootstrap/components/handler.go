package components

import (
	"hotel-frontdesk/internal/handler"
	"hotel-frontdesk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewReportHandler,
		api.NewLogsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
