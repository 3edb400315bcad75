package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/queries"
)

type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(db db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: db}
}

// DailyOccupancy summarizes one calendar day: how many active rooms exist,
// how many are taken by an occupying stay, and the day's arrival and
// departure counts.
func (r *OccupancyReadStore) DailyOccupancy(ctx context.Context, date time.Time) (*queries.OccupancyView, error) {
	dayStart := reservation.NormalizeCheckIn(date)
	dayEnd := reservation.NormalizeCheckOut(date)

	row := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM rooms WHERE is_active) AS total_rooms,
			(SELECT count(DISTINCT room_id) FROM reservations
				WHERE status IN ('confirmed', 'checked_in')
				  AND check_in <= $1 AND check_out > $2) AS occupied,
			(SELECT count(*) FROM reservations
				WHERE status = 'confirmed' AND check_in = $1) AS arrivals,
			(SELECT count(*) FROM reservations
				WHERE status = 'checked_in' AND check_out = $2) AS departures`,
		dayStart, dayEnd,
	)

	view := queries.OccupancyView{Date: reservation.Midnight(date)}
	if err := row.Scan(&view.TotalRooms, &view.Occupied, &view.Arrivals, &view.Departures); err != nil {
		return nil, infra.WrapRepoErr("failed to compute daily occupancy", err)
	}
	if view.TotalRooms > 0 {
		view.OccupancyPct = float64(view.Occupied) / float64(view.TotalRooms) * 100
	}
	return &view, nil
}
