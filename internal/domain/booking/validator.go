package booking

import (
	"fmt"
	"time"

	"parkspot/internal/domain/spot"
)

// Request is a candidate booking window checked against a spot.
type Request struct {
	Start time.Time
	End   time.Time
	Slots int
}

// ValidateRequest is shared by quoting, booking creation and availability filtering.
// The slot count is checked first so callers can short-circuit before touching storage.
func ValidateRequest(schedule spot.Schedule, availableSlots int, req Request, now time.Time) error {
	if req.Slots <= 0 {
		return ErrInvalidSlots
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return ErrMissingTime
	}
	if !req.End.After(req.Start) {
		return ErrEndBeforeStart
	}
	if req.Start.Before(now) {
		return ErrStartInPast
	}
	if !schedule.SameLocalDay(req.Start, req.End) {
		return ErrSpansMultipleDays
	}
	if err := schedule.Check(req.Start); err != nil {
		return fmt.Errorf("start time: %w: %w", ErrOutsideSchedule, err)
	}
	if err := schedule.Check(req.End); err != nil {
		return fmt.Errorf("end time: %w: %w", ErrOutsideSchedule, err)
	}
	if req.Slots > availableSlots {
		return ErrSlotsUnavailable
	}
	return nil
}
