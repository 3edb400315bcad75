package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const defaultLogLimit = 200

type AuditLogReadStore struct {
	db db.DBTX
}

func NewAuditLogReadStore(db db.DBTX) *AuditLogReadStore {
	return &AuditLogReadStore{db: db}
}

func (r *AuditLogReadStore) List(ctx context.Context, filter queries.LogFilter) ([]*queries.AuditLogView, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.TableName != "" {
		addCond("table_name = $%d", filter.TableName)
	}
	if filter.Action != "" {
		addCond("action = $%d", filter.Action)
	}
	if filter.RecordID != uuid.Nil {
		addCond("record_id = $%d", filter.RecordID)
	}
	if filter.ChangedBy != "" {
		addCond("changed_by ILIKE $%d", "%"+filter.ChangedBy+"%")
	}
	if !filter.Since.IsZero() {
		addCond("changed_at >= $%d", filter.Since)
	}
	if !filter.Until.IsZero() {
		addCond("changed_at < $%d", filter.Until)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	args = append(args, limit)

	sql := fmt.Sprintf(`
		SELECT id, action, table_name, record_id, old_values, new_values, changed_by, changed_at, description
		FROM audit_log
		%s
		ORDER BY changed_at DESC
		LIMIT $%d`, where, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit log", err)
	}
	defer rows.Close()

	var result []*queries.AuditLogView
	for rows.Next() {
		var (
			view      queries.AuditLogView
			changedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.Action, &view.TableName, &view.RecordID,
			&view.OldValues, &view.NewValues, &view.ChangedBy, &changedAt, &view.Description,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit log row", err)
		}
		view.ChangedAt = changedAt.Time
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit log rows", err)
	}
	return result, nil
}
