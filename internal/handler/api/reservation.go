package api

import (
	"context"
	"net/http"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	booking            *commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(booking *commands.BookingCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		booking:            booking,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a stay; guest and reservation are created together
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.AvailabilityResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in := commands.CreateReservationInput{
		RoomID:      req.RoomID,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Adults:      req.Adults,
		Children:    req.Children,
		PaidCents:   req.PaidCents,
		PackageType: req.PackageType,
		GuestType:   req.GuestType,
		Guest: commands.GuestInput{
			FirstName:   req.GuestFirstName,
			LastName:    req.GuestLastName,
			Phone:       req.GuestPhone,
			Nationality: req.GuestNationality,
		},
	}

	id, conflicts, err := h.booking.CreateReservation(c.Request.Context(), middleware.GetActor(c), in)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, resdto.AvailabilityResponse{
				Available: false,
				Conflicts: resdto.FromConflicts(conflicts),
			})
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in must be before check-out"})
		case errors.Is(err, commands.ErrRoomInactive):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not in service"})
		case errors.Is(err, commands.ErrRoomCapacityExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Party does not fit the room"})
		case errors.Is(err, reservation.ErrInvalidOccupants):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reservation requires at least one adult"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		ID:        id,
		Conflicts: resdto.FromConflicts(conflicts),
	})
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondNotFoundOr500(c, err, "Reservation not found")
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search reservations
// @Description Match guest names and room numbers, most recent first
// @Tags reservations
// @Produce json
// @Param q query string false "Guest name or room number fragment"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) SearchReservations(c *gin.Context) {
	limit := intQuery(c, "limit", 0)

	items, err := h.reservationQueries.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	resp, err := resdto.FromReservationList(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update reservation
// @Description Sparse edit; date or room changes re-check availability
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.AvailabilityResponse
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	upd, err := req.ToUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation status"})
		return
	}

	conflicts, err := h.booking.UpdateReservation(c.Request.Context(), middleware.GetActor(c), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, resdto.AvailabilityResponse{
				Available: false,
				Conflicts: resdto.FromConflicts(conflicts),
			})
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, commands.ErrRoomInactive):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not in service"})
		case errors.Is(err, commands.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, reservation.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in must be before check-out"})
		case errors.Is(err, reservation.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		case errors.Is(err, reservation.ErrInvalidOccupants),
			errors.Is(err, reservation.ErrNegativeAmount),
			errors.Is(err, reservation.ErrMissingRoom):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation fields"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondNotFoundOr500(c, err, "Reservation not found")
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update guest
// @Description Sparse edit of the guest record; audited
// @Tags guests
// @Accept json
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [patch]
func (h *ReservationHandler) UpdateGuest(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.booking.UpdateGuest(c.Request.Context(), middleware.GetActor(c), id, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		case errors.Is(err, commands.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, guest.ErrEmptyGuestName), errors.Is(err, guest.ErrNameTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest name"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check in guest
// @Tags reservations
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.booking.CheckIn)
}

// @Summary Check out guest
// @Tags reservations
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.booking.CheckOut)
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param X-Actor header string false "Staff member recorded in the audit trail"
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.booking.Cancel)
}

func (h *ReservationHandler) transition(c *gin.Context, fn func(ctx context.Context, actor string, id uuid.UUID) error) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	err := fn(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, reservation.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
