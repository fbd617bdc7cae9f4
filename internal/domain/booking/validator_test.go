//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"

	"github.com/stretchr/testify/require"
)

func mustSchedule(t *testing.T, open, close string, days []string, tz string) spot.Schedule {
	t.Helper()
	s, err := spot.BuildSchedule(open, close, days, tz)
	require.NoError(t, err)
	return s
}

func TestValidateRequest(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	schedule := mustSchedule(t, "09:00 AM", "06:00 PM", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, "Asia/Tokyo")
	// 2030-04-01 is a Monday
	now := time.Date(2030, 3, 31, 12, 0, 0, 0, tokyo)
	at := func(day, hour, minute int) time.Time {
		return time.Date(2030, 4, day, hour, minute, 0, 0, tokyo)
	}

	cases := []struct {
		name      string
		req       booking.Request
		available int
		errIs     error
	}{
		{name: "open boundary minute OK", req: booking.Request{Start: at(1, 9, 0), End: at(1, 10, 0), Slots: 1}, available: 5},
		{name: "close boundary minute OK", req: booking.Request{Start: at(1, 17, 0), End: at(1, 18, 0), Slots: 1}, available: 5},
		{name: "one minute before open NG", req: booking.Request{Start: at(1, 8, 59), End: at(1, 10, 0), Slots: 1}, available: 5, errIs: booking.ErrOutsideSchedule},
		{name: "one minute after close NG", req: booking.Request{Start: at(1, 17, 0), End: at(1, 18, 1), Slots: 1}, available: 5, errIs: booking.ErrOutsideSchedule},
		{name: "closed weekday NG", req: booking.Request{Start: at(6, 10, 0), End: at(6, 11, 0), Slots: 1}, available: 5, errIs: booking.ErrOutsideSchedule},
		{name: "zero slots NG", req: booking.Request{Start: at(1, 10, 0), End: at(1, 11, 0), Slots: 0}, available: 5, errIs: booking.ErrInvalidSlots},
		{name: "more slots than available NG", req: booking.Request{Start: at(1, 10, 0), End: at(1, 11, 0), Slots: 6}, available: 5, errIs: booking.ErrSlotsUnavailable},
		{name: "exactly the available slots OK", req: booking.Request{Start: at(1, 10, 0), End: at(1, 11, 0), Slots: 5}, available: 5},
		{name: "start in the past NG", req: booking.Request{Start: now.Add(-time.Hour), End: now.Add(time.Hour), Slots: 1}, available: 5, errIs: booking.ErrStartInPast},
		{name: "spans midnight NG", req: booking.Request{Start: at(1, 17, 0), End: at(2, 9, 0), Slots: 1}, available: 5, errIs: booking.ErrSpansMultipleDays},
		{name: "end seconds past close NG", req: booking.Request{Start: at(1, 17, 0), End: at(1, 18, 0).Add(59 * time.Second), Slots: 1}, available: 5, errIs: booking.ErrOutsideSchedule},
		{name: "end before start NG", req: booking.Request{Start: at(1, 12, 0), End: at(1, 11, 0), Slots: 1}, available: 5, errIs: booking.ErrEndBeforeStart},
		{name: "missing times NG", req: booking.Request{Slots: 1}, available: 5, errIs: booking.ErrMissingTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidateRequest(schedule, tc.available, tc.req, now)
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestValidateRequest_EvaluatesOnSpotClock(t *testing.T) {
	schedule := mustSchedule(t, "9:00 AM", "6:00 PM", []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, "Asia/Tokyo")
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	// 00:00 UTC is 09:00 in Tokyo
	start := time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, booking.ValidateRequest(schedule, 1, booking.Request{Start: start, End: start.Add(time.Hour), Slots: 1}, now))

	early := start.Add(-time.Minute)
	err := booking.ValidateRequest(schedule, 1, booking.Request{Start: early, End: start.Add(time.Hour), Slots: 1}, now)
	require.ErrorIs(t, err, booking.ErrOutsideSchedule)
	require.ErrorIs(t, err, spot.ErrOutsideOpeningHours)
}
