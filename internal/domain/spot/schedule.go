package spot

import "time"

// Schedule is the weekly opening window of a spot, evaluated on the spot's local clock.
type Schedule struct {
	open     ClockTime
	close    ClockTime
	days     Days
	location *time.Location
}

func NewSchedule(open, close ClockTime, days Days, loc *time.Location) (Schedule, error) {
	if !open.Before(close) {
		return Schedule{}, ErrInvalidSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	return Schedule{open: open, close: close, days: days, location: loc}, nil
}

func (s Schedule) Open() ClockTime            { return s.open }
func (s Schedule) Close() ClockTime           { return s.close }
func (s Schedule) Days() Days                 { return s.days }
func (s Schedule) Location() *time.Location   { return s.location }
func (s Schedule) Local(t time.Time) time.Time { return t.In(s.location) }

// Allows reports whether t falls on an open day within [open, close].
// Both boundary minutes are inside the window; seconds past the close minute are not.
func (s Schedule) Allows(t time.Time) bool {
	local := s.Local(t)
	return s.days.Contains(local.Weekday()) && s.withinHours(local)
}

// Check is Allows with a reason.
func (s Schedule) Check(t time.Time) error {
	local := s.Local(t)
	if !s.days.Contains(local.Weekday()) {
		return ErrClosedOnDay
	}
	if !s.withinHours(local) {
		return ErrOutsideOpeningHours
	}
	return nil
}

func (s Schedule) withinHours(local time.Time) bool {
	ct := ClockTimeOf(local)
	if ct.Before(s.open) || ct.After(s.close) {
		return false
	}
	return ct != s.close || (local.Second() == 0 && local.Nanosecond() == 0)
}

// SameLocalDay reports whether a and b fall on the same calendar day in the spot's zone.
func (s Schedule) SameLocalDay(a, b time.Time) bool {
	la, lb := s.Local(a), s.Local(b)
	return la.Year() == lb.Year() && la.YearDay() == lb.YearDay()
}
