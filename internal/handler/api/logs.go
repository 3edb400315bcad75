package api

import (
	"net/http"
	"time"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LogsHandler struct {
	logQueries  queries.LogQueries
	logCommands *commands.LogCommands
}

func NewLogsHandler(logQueries queries.LogQueries, logCommands *commands.LogCommands) *LogsHandler {
	return &LogsHandler{
		logQueries:  logQueries,
		logCommands: logCommands,
	}
}

// @Summary List audit log
// @Description Change history, most recent first
// @Tags logs
// @Produce json
// @Param table query string false "Table name"
// @Param action query string false "create, update, or delete"
// @Param record_id query string false "Record ID"
// @Param actor query string false "Actor substring"
// @Param since query string false "Lower bound (YYYY-MM-DD)"
// @Param until query string false "Upper bound (YYYY-MM-DD)"
// @Param limit query int false "Max entries"
// @Success 200 {array} resdto.AuditLogResponse
// @Failure 400 {object} map[string]string
// @Router /logs [get]
func (h *LogsHandler) List(c *gin.Context) {
	filter := queries.LogFilter{
		TableName: c.Query("table"),
		Action:    c.Query("action"),
		ChangedBy: c.Query("actor"),
		Limit:     intQuery(c, "limit", 0),
	}

	if raw := c.Query("record_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
			return
		}
		filter.RecordID = id
	}
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since, expected YYYY-MM-DD"})
			return
		}
		filter.Since = t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid until, expected YYYY-MM-DD"})
			return
		}
		filter.Until = t
	}

	views, err := h.logQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditLogViews(views))
}

// @Summary Purge audit log
// @Description Delete entries older than the retention window, or a given cutoff
// @Tags logs
// @Produce json
// @Param older_than_days query int false "Delete entries older than this many days"
// @Param before query string false "Cutoff date (YYYY-MM-DD); default uses retention"
// @Success 200 {object} resdto.PurgeLogsResponse
// @Failure 400 {object} map[string]string
// @Router /logs [delete]
func (h *LogsHandler) Purge(c *gin.Context) {
	var (
		deleted int64
		err     error
	)
	switch {
	case c.Query("older_than_days") != "":
		days := intQuery(c, "older_than_days", 0)
		if days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "older_than_days must be positive"})
			return
		}
		deleted, err = h.logCommands.PurgeOlderThanDays(c.Request.Context(), days)
	case c.Query("before") != "":
		cutoff, parseErr := time.Parse("2006-01-02", c.Query("before"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before, expected YYYY-MM-DD"})
			return
		}
		deleted, err = h.logCommands.PurgeBefore(c.Request.Context(), cutoff)
	default:
		deleted, err = h.logCommands.PurgeExpired(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.PurgeLogsResponse{Deleted: deleted})
}
