package api

import (
	"net/http"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Occupancy report
// @Description Per-day room counts, arrivals, and departures
// @Tags reports
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD), default today"
// @Param days query int false "Number of days, default 1"
// @Success 200 {array} resdto.OccupancyResponse
// @Failure 400 {object} map[string]string
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	days := intQuery(c, "days", 1)

	views, err := h.reportQueries.OccupancyRange(c.Request.Context(), from, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyViews(views))
}
