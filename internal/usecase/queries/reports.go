package queries

import (
	"context"
	"time"
)

type ReportQueries interface {
	Occupancy(ctx context.Context, date time.Time) (*OccupancyView, error)
	OccupancyRange(ctx context.Context, from time.Time, days int) ([]*OccupancyView, error)
}

type OccupancyViewRepo interface {
	DailyOccupancy(ctx context.Context, date time.Time) (*OccupancyView, error)
}

type reportQueriesImpl struct {
	repo OccupancyViewRepo
}

func NewReportQueries(repo OccupancyViewRepo) ReportQueries {
	return &reportQueriesImpl{repo: repo}
}

func (q *reportQueriesImpl) Occupancy(ctx context.Context, date time.Time) (*OccupancyView, error) {
	return q.repo.DailyOccupancy(ctx, date)
}

func (q *reportQueriesImpl) OccupancyRange(ctx context.Context, from time.Time, days int) ([]*OccupancyView, error) {
	const maxDays = 62
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}

	result := make([]*OccupancyView, 0, days)
	for i := 0; i < days; i++ {
		view, err := q.repo.DailyOccupancy(ctx, from.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}
