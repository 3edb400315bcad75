package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Search(ctx context.Context, query string, limit int) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Search(ctx context.Context, query string, limit int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindViewByID(ctx, id)
}

func (q *reservationQueriesImpl) Search(ctx context.Context, query string, limit int) ([]*ReservationListItem, error) {
	const maxLimit = 500
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	return q.repo.Search(ctx, query, limit)
}
