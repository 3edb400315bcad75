package response

import (
	"hotel-frontdesk/internal/usecase/queries"
)

type OccupancyResponse struct {
	Date         string  `json:"date"`
	TotalRooms   int     `json:"totalRooms"`
	Occupied     int     `json:"occupied"`
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	OccupancyPct float64 `json:"occupancyPct"`
}

func FromOccupancyView(view *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{
		Date:         view.Date.Format("2006-01-02"),
		TotalRooms:   view.TotalRooms,
		Occupied:     view.Occupied,
		Arrivals:     view.Arrivals,
		Departures:   view.Departures,
		OccupancyPct: view.OccupancyPct,
	}
}

func FromOccupancyViews(views []*queries.OccupancyView) []*OccupancyResponse {
	result := make([]*OccupancyResponse, len(views))
	for i, v := range views {
		result[i] = FromOccupancyView(v)
	}
	return result
}
