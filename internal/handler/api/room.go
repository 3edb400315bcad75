package api

import (
	"net/http"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	engine *usecase.AvailabilityEngine
}

func NewRoomHandler(engine *usecase.AvailabilityEngine) *RoomHandler {
	return &RoomHandler{engine: engine}
}

// @Summary Check room availability
// @Description Evaluate a stay against the room's occupying reservations
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	stay, ok := stayFromQuery(c)
	if !ok {
		return
	}

	result, err := h.engine.CheckAvailability(c.Request.Context(), id, stay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Suggest rooms
// @Description Active rooms free for the stay, priced for its full length
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param occupants query int false "Party size"
// @Success 200 {array} resdto.RoomSuggestionResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/suggestions [get]
func (h *RoomHandler) SuggestRooms(c *gin.Context) {
	stay, ok := stayFromQuery(c)
	if !ok {
		return
	}
	occupants := intQuery(c, "occupants", 1)

	suggestions, err := h.engine.SuggestRooms(c.Request.Context(), stay, occupants)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	resp, err := resdto.FromRoomSuggestions(suggestions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Room rack row
// @Description Per-day cell classification for the rack grid
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param from query string false "First date (YYYY-MM-DD), default today"
// @Param days query int false "Number of days, default 14"
// @Success 200 {array} resdto.RackCellResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/rack [get]
func (h *RoomHandler) RackRow(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	days := intQuery(c, "days", 14)

	row, err := h.engine.RackRow(c.Request.Context(), id, from, days)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRackRow(row))
}

// @Summary Room status on a day
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string false "Date (YYYY-MM-DD), default today"
// @Success 200 {object} map[string]string
// @Router /rooms/{id}/status [get]
func (h *RoomHandler) RoomStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	status, err := h.engine.RoomStatusOn(c.Request.Context(), id, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func stayFromQuery(c *gin.Context) (reservation.StayPeriod, bool) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_in, expected YYYY-MM-DD"})
		return reservation.StayPeriod{}, false
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_out, expected YYYY-MM-DD"})
		return reservation.StayPeriod{}, false
	}

	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in must be before check-out"})
		return reservation.StayPeriod{}, false
	}
	return stay, true
}
