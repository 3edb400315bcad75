package reservation

import (
	"errors"
	"fmt"
	"time"
)

// Standardized hotel turnover times. Every stay occupies the half-open
// interval [check-in date 14:00, check-out date 12:00), so a departing guest
// vacates two hours before the next arrival on the same calendar day.
const (
	CheckInHour  = 14
	CheckOutHour = 12
)

var ErrInvalidStayPeriod = errors.New("check-in must be before check-out")

// StayPeriod is a normalized stay interval. Construction normalizes any raw
// timestamp (or bare date) to the standard clock times, so two inputs naming
// the same calendar dates always compare equal.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := NormalizeCheckIn(checkIn)
	out := NormalizeCheckOut(checkOut)

	if !in.Before(out) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ReconstructStayPeriod trusts persisted instants (already normalized at
// write time) and skips re-validation.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

// NormalizeCheckIn resolves t to 14:00 of its calendar date.
func NormalizeCheckIn(t time.Time) time.Time {
	return atHour(t, CheckInHour)
}

// NormalizeCheckOut resolves t to 12:00 of its calendar date.
func NormalizeCheckOut(t time.Time) time.Time {
	return atHour(t, CheckOutHour)
}

func atHour(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, t.Location())
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// CheckInDate is the check-in calendar date at midnight.
func (s StayPeriod) CheckInDate() time.Time {
	return truncateToDate(s.checkIn)
}

// CheckOutDate is the check-out calendar date at midnight.
func (s StayPeriod) CheckOutDate() time.Time {
	return truncateToDate(s.checkOut)
}

func (s StayPeriod) Nights() int {
	return int(s.CheckOutDate().Sub(s.CheckInDate()).Hours() / 24)
}

// Overlaps reports whether two stays collide under the standard half-open
// test: a.checkIn < b.checkOut && a.checkOut > b.checkIn.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

// EndsAtStartOf reports whether this stay checks out on the other stay's
// check-in calendar day (12:00 vs 14:00 on the same date), the back-to-back
// turnover boundary.
func (s StayPeriod) EndsAtStartOf(other StayPeriod) bool {
	return s.CheckOutDate().Equal(other.CheckInDate())
}

// Covers reports whether the given calendar day belongs to the stay:
// check_in_date <= date < check_out_date.
func (s StayPeriod) Covers(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(s.CheckInDate()) && d.Before(s.CheckOutDate())
}

// DayPosition is the zero-based index of date inside the stay.
func (s StayPeriod) DayPosition(date time.Time) int {
	return int(truncateToDate(date).Sub(s.CheckInDate()).Hours() / 24)
}

// IsLastDay reports whether date is the final occupied day
// (check_out_date - 1 day).
func (s StayPeriod) IsLastDay(date time.Time) bool {
	return truncateToDate(date).Equal(s.CheckOutDate().AddDate(0, 0, -1))
}

func (s StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.RFC3339), s.checkOut.Format(time.RFC3339))
}

// Midnight truncates t to 00:00 of its calendar date.
func Midnight(t time.Time) time.Time {
	return truncateToDate(t)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
