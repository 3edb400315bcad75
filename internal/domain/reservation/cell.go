package reservation

import "time"

// CellType classifies how a reservation's span intersects a single calendar
// day on the rack grid. Start/End mark a shared turnover day (the half-cell
// split the renderer draws); Full means the reservation owns the whole day.
type CellType string

const (
	CellEmpty  CellType = "empty"
	CellStart  CellType = "start"
	CellMiddle CellType = "middle"
	CellEnd    CellType = "end"
	CellFull   CellType = "full"
)

func (c CellType) String() string {
	return string(c)
}

// ClassifyDay derives the cell shape for one day of a stay.
// hasPrevious: another reservation on the same room checks out on this day.
// hasNext: another reservation on the same room checks in on this day.
func ClassifyDay(stay StayPeriod, date time.Time, hasPrevious, hasNext bool) CellType {
	if !stay.Covers(date) {
		return CellEmpty
	}

	switch {
	case stay.DayPosition(date) == 0:
		if hasPrevious {
			return CellStart
		}
		return CellFull
	case stay.IsLastDay(date):
		if hasNext {
			return CellEnd
		}
		return CellFull
	default:
		return CellMiddle
	}
}
