package response

import (
	"encoding/json"
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID          uuid.UUID       `json:"id"`
	Action      string          `json:"action"`
	TableName   string          `json:"tableName"`
	RecordID    uuid.UUID       `json:"recordId"`
	OldValues   json.RawMessage `json:"oldValues,omitempty"`
	NewValues   json.RawMessage `json:"newValues,omitempty"`
	ChangedBy   string          `json:"changedBy"`
	ChangedAt   time.Time       `json:"changedAt"`
	Description string          `json:"description,omitempty"`
}

type PurgeLogsResponse struct {
	Deleted int64 `json:"deleted"`
}

func FromAuditLogViews(views []*queries.AuditLogView) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(views))
	for i, v := range views {
		result[i] = &AuditLogResponse{
			ID:          v.ID,
			Action:      v.Action,
			TableName:   v.TableName,
			RecordID:    v.RecordID,
			OldValues:   v.OldValues,
			NewValues:   v.NewValues,
			ChangedBy:   v.ChangedBy,
			ChangedAt:   v.ChangedAt,
			Description: v.Description,
		}
	}
	return result
}
