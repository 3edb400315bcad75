package reservation

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// Occupies reports whether a reservation in this status blocks the room.
// Checked-out and cancelled stays never participate in overlap checks.
func (s Status) Occupies() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// CanTransitionTo enforces the reservation lifecycle:
// confirmed -> checked_in -> checked_out, with cancelled reachable from
// confirmed or checked_in. Terminal states allow no further transitions.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut || next == StatusCancelled
	default:
		return false
	}
}

// OccupyingStatuses is the status filter used by every availability query.
func OccupyingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCheckedIn}
}
