package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	reportHandler *api.ReportHandler,
	logsHandler *api.LogsHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, roomHandler, reportHandler, logsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.ActorMiddleware())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	reportHandler *api.ReportHandler,
	logsHandler *api.LogsHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.SearchReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPatch, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: reservationHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: reservationHandler.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
			})
		}

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: reservationHandler.UpdateGuest},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/suggestions", Handler: roomHandler.SuggestRooms},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: roomHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/rack", Handler: roomHandler.RackRow},
				{Method: http.MethodGet, Path: "/:id/status", Handler: roomHandler.RoomStatus},
			})
		}

		reports := apiGroup.Group("/reports")
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/occupancy", Handler: reportHandler.Occupancy},
			})
		}

		logs := apiGroup.Group("/logs")
		{
			addRoutes(logs, []route{
				{Method: http.MethodGet, Path: "", Handler: logsHandler.List},
				{Method: http.MethodDelete, Path: "", Handler: logsHandler.Purge},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := append(r.Mw, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
