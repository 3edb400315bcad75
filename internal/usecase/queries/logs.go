package queries

import (
	"context"
)

type LogQueries interface {
	List(ctx context.Context, filter LogFilter) ([]*AuditLogView, error)
}

type AuditLogViewRepo interface {
	List(ctx context.Context, filter LogFilter) ([]*AuditLogView, error)
}

type logQueriesImpl struct {
	repo AuditLogViewRepo
}

func NewLogQueries(repo AuditLogViewRepo) LogQueries {
	return &logQueriesImpl{repo: repo}
}

func (q *logQueriesImpl) List(ctx context.Context, filter LogFilter) ([]*AuditLogView, error) {
	return q.repo.List(ctx, filter)
}
