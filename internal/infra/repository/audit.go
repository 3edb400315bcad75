package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Append(ctx context.Context, dbtx db.DBTX, entry shared.AuditEntry) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO audit_log (id, action, table_name, record_id, old_values, new_values, changed_by, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), entry.Action, entry.TableName, entry.RecordID,
		nullableJSON(entry.OldValues), nullableJSON(entry.NewValues),
		entry.ChangedBy, entry.Description,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}

func (r *AuditRepository) PurgeOlderThan(ctx context.Context, dbtx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM audit_log WHERE changed_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge audit entries", err)
	}
	return tag.RowsAffected(), nil
}

// nullableJSON keeps empty payloads as SQL NULL instead of invalid jsonb.
func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
