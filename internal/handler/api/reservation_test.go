//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/fake"
	"hotel-frontdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// fakeReservationQueries serves canned views keyed by ID.
type fakeReservationQueries struct {
	views map[uuid.UUID]*queries.ReservationView
	items []*queries.ReservationListItem
}

func (f *fakeReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (f *fakeReservationQueries) Search(_ context.Context, _ string, _ int) ([]*queries.ReservationListItem, error) {
	return f.items, nil
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *fake.Store
	queries *fakeReservationQueries
	room    *room.Room
	seq     int
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	rm, err := room.NewRoom("101", 2, 10000)
	s.Require().NoError(err)
	s.room = rm
	s.store = fake.NewStore(rm)
	s.queries = &fakeReservationQueries{views: make(map[uuid.UUID]*queries.ReservationView)}

	uow := &fake.UoW{}
	pricing := reservation.NewNightlyPriceCalculator()
	engine := usecase.NewAvailabilityEngine(uow, s.store, s.store.RoomReads(), pricing)
	booking := commands.NewBookingCommands(uow, engine, s.store, s.store.GuestWrites(), s.store.RoomReads(), s.store.AuditWrites(), pricing)
	handler := api.NewReservationHandler(booking, s.queries)

	s.router = gin.New()
	s.router.Use(middleware.ActorMiddleware())
	s.router.POST("/reservations", handler.CreateReservation)
	s.router.GET("/reservations", handler.SearchReservations)
	s.router.GET("/reservations/:id", handler.GetReservation)
	s.router.PATCH("/reservations/:id", handler.UpdateReservation)
	s.router.POST("/reservations/:id/check-in", handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", handler.CheckOut)
	s.router.POST("/reservations/:id/cancel", handler.Cancel)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"room_id":          s.room.ID(),
		"check_in":         builder.Date(2024, 6, 1),
		"check_out":        builder.Date(2024, 6, 3),
		"adults":           2,
		"guest_first_name": "Maria",
		"guest_last_name":  "Novak",
	}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	s.Run("success: returns 201 with the new reservation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "alice")
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.CreateReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.NotEqual(uuid.Nil, resp.ID)
		s.Empty(resp.Conflicts)

		s.Require().Len(s.store.Audit, 1)
		s.Equal("alice", s.store.Audit[0].ChangedBy)
	})

	s.Run("missing actor header falls back to system", func() {
		body := s.createBody()
		body["check_in"] = builder.Date(2024, 7, 1)
		body["check_out"] = builder.Date(2024, 7, 3)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)

		last := s.store.Audit[len(s.store.Audit)-1]
		s.Equal("system", last.ChangedBy)
	})

	s.Run("validation: missing required fields return 400", func() {
		for _, field := range []string{"room_id", "check_in", "check_out", "adults", "guest_first_name"} {
			body := s.createBody()
			delete(body, field)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "alice")
			s.Equal(http.StatusBadRequest, rec.Code, "missing %s", field)
		}
	})

	s.Run("conflict: occupied room returns 409 with the blocking stay", func() {
		blocking := builder.NewReservationBuilder().
			WithRoomID(s.room.ID()).
			WithDates(builder.Date(2024, 8, 2), builder.Date(2024, 8, 4)).
			Build()
		s.store.Seed(blocking)

		body := s.createBody()
		body["check_in"] = builder.Date(2024, 8, 1)
		body["check_out"] = builder.Date(2024, 8, 3)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "alice")
		s.Equal(http.StatusConflict, rec.Code)

		var resp resdto.AvailabilityResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.False(resp.Available)
		s.Require().Len(resp.Conflicts, 1)
		s.Equal(blocking.ID(), resp.Conflicts[0].ReservationID)
	})

	s.Run("unknown room returns 404", func() {
		body := s.createBody()
		body["room_id"] = uuid.New()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "alice")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns the stored view", func() {
		id := uuid.New()
		s.queries.views[id] = &queries.ReservationView{ID: id, RoomNumber: "101", GuestName: "Maria Novak", Status: "confirmed"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(id, resp.ID)
		s.Equal("101", resp.RoomNumber)
	})

	s.Run("unknown id returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpdateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	s.Run("empty body returns 400", func() {
		id := s.mustCreate()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+id.String(), map[string]any{}, "bob")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid status string returns 400", func() {
		id := s.mustCreate()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+id.String(),
			map[string]any{"status": "teleported"}, "bob")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown reservation returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+uuid.NewString(),
			map[string]any{"adults": 1}, "bob")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("success: returns the refreshed view", func() {
		id := s.mustCreate()
		s.queries.views[id] = &queries.ReservationView{ID: id, RoomNumber: "101", Adults: 1}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+id.String(),
			map[string]any{"adults": 1}, "bob")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(id, resp.ID)
		s.Equal(1, s.store.Reservations[id].Adults())
	})
}

// ================================================================================
// TestStatusTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestStatusTransitions() {
	s.Run("check-in then check-out succeed with 204", func() {
		id := s.mustCreate()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil, "alice")
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "alice")
		s.Equal(http.StatusNoContent, rec.Code)

		s.Equal(reservation.StatusCheckedOut, s.store.Reservations[id].Status())
	})

	s.Run("check-out before check-in returns 409", func() {
		id := s.mustCreate()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "alice")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("cancel on an unknown reservation returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+uuid.NewString()+"/cancel", nil, "alice")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestSearchReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSearchReservations() {
	s.Run("returns the list items", func() {
		s.queries.items = []*queries.ReservationListItem{
			{ID: uuid.New(), RoomNumber: "101", GuestName: "Maria Novak", Status: "confirmed"},
			{ID: uuid.New(), RoomNumber: "102", GuestName: "Jan Svoboda", Status: "checked_in"},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?q=nov", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp []*resdto.ReservationListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp, 2)
		s.Equal("101", resp[0].RoomNumber)
	})
}

// mustCreate books a fresh stay on its own dates and returns its id.
func (s *ReservationHandlerTestSuite) mustCreate() uuid.UUID {
	s.seq++
	body := s.createBody()
	body["check_in"] = builder.Date(2025, 1, 10+3*s.seq)
	body["check_out"] = builder.Date(2025, 1, 12+3*s.seq)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, "alice")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp resdto.CreateReservationResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
	return resp.ID
}
