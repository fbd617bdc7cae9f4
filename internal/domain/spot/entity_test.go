//go:build unit

package spot_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/spot"
	"parkspot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SpotBuilder)
	errIs  error
}

func TestBuildDetails(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := builder.NewSpotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Shibuya Station Parking", s.Title().String())
		assert.True(t, decimal.NewFromInt(300).Equal(s.HourlyRate().Decimal()))
		assert.Equal(t, 10, s.AvailableSlots())
	})

	runCases(t, []testCase{
		{name: "blank title", mutate: func(b *builder.SpotBuilder) { b.Title = " " }, errIs: spot.ErrInvalidTitle},
		{name: "blank address", mutate: func(b *builder.SpotBuilder) { b.Address = "" }, errIs: spot.ErrInvalidAddress},
		{name: "latitude out of range", mutate: func(b *builder.SpotBuilder) { b.Lat = 91 }, errIs: spot.ErrInvalidCoordinates},
		{name: "zero rate", mutate: func(b *builder.SpotBuilder) { b.WithHourlyRate(decimal.Zero) }, errIs: spot.ErrInvalidHourlyRate},
		{name: "open after close", mutate: func(b *builder.SpotBuilder) { b.WithHours("6:00 PM", "9:00 AM") }, errIs: spot.ErrInvalidSchedule},
		{name: "open equals close", mutate: func(b *builder.SpotBuilder) { b.WithHours("9:00 AM", "09:00") }, errIs: spot.ErrInvalidSchedule},
		{name: "garbage clock time", mutate: func(b *builder.SpotBuilder) { b.WithHours("25:00", "26:00") }, errIs: spot.ErrInvalidClockTime},
		{name: "no days", mutate: func(b *builder.SpotBuilder) { b.WithDays() }, errIs: spot.ErrNoAvailableDays},
		{name: "unknown day", mutate: func(b *builder.SpotBuilder) { b.WithDays("Mon", "Someday") }, errIs: spot.ErrInvalidWeekday},
		{name: "unknown zone", mutate: func(b *builder.SpotBuilder) { b.WithTimeZone("Mars/Olympus") }, errIs: spot.ErrInvalidTimeZone},
		{name: "long day names accepted", mutate: func(b *builder.SpotBuilder) { b.WithDays("monday", "FRIDAY") }},
	})
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		str     string
	}{
		{"9:00 AM", 9 * 60, "9:00 AM"},
		{"09:30 am", 9*60 + 30, "9:30 AM"},
		{"6:00PM", 18 * 60, "6:00 PM"},
		{"12:00 AM", 0, "12:00 AM"},
		{"12:15 PM", 12*60 + 15, "12:15 PM"},
		{"23:59", 23*60 + 59, "11:59 PM"},
		{"00:00", 0, "12:00 AM"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			ct, err := spot.ParseClockTime(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.minutes, ct.Minutes())
			assert.Equal(t, c.str, ct.String())
		})
	}

	for _, bad := range []string{"", "13:00 PM", "0:30 AM", "9", "9:5", "9:60", "ab:cd", "+9:00 AM", "-0:00", "9:-5", "1+:00"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := spot.ParseClockTime(bad)
			require.ErrorIs(t, err, spot.ErrInvalidClockTime)
		})
	}
}

func TestSchedule(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	schedule, err := spot.BuildSchedule("9:00 AM", "6:00 PM", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, "Asia/Tokyo")
	require.NoError(t, err)

	// 2025-03-03 is a Monday
	monday := func(h, m int) time.Time { return time.Date(2025, 3, 3, h, m, 0, 0, tokyo) }

	t.Run("success: window boundaries are inclusive", func(t *testing.T) {
		assert.True(t, schedule.Allows(monday(9, 0)))
		assert.True(t, schedule.Allows(monday(18, 0)))
		assert.NoError(t, schedule.Check(monday(12, 0)))
	})

	t.Run("error: outside hours", func(t *testing.T) {
		assert.False(t, schedule.Allows(monday(8, 59)))
		assert.ErrorIs(t, schedule.Check(monday(18, 1)), spot.ErrOutsideOpeningHours)
	})

	t.Run("error: seconds past the close minute", func(t *testing.T) {
		assert.True(t, schedule.Allows(monday(9, 0).Add(30*time.Second)))
		assert.False(t, schedule.Allows(monday(18, 0).Add(59*time.Second)))
		assert.ErrorIs(t, schedule.Check(monday(18, 0).Add(time.Millisecond)), spot.ErrOutsideOpeningHours)
	})

	t.Run("error: closed day", func(t *testing.T) {
		sunday := time.Date(2025, 3, 2, 12, 0, 0, 0, tokyo)
		assert.ErrorIs(t, schedule.Check(sunday), spot.ErrClosedOnDay)
	})

	t.Run("evaluated on the spot's local clock", func(t *testing.T) {
		// 01:00 UTC Monday is 10:00 in Tokyo
		assert.True(t, schedule.Allows(time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)))
		// 23:00 UTC Sunday is 08:00 Monday in Tokyo
		assert.ErrorIs(t, schedule.Check(time.Date(2025, 3, 2, 23, 0, 0, 0, time.UTC)), spot.ErrOutsideOpeningHours)
	})

	t.Run("same local day", func(t *testing.T) {
		assert.True(t, schedule.SameLocalDay(monday(9, 0), monday(18, 0)))
		assert.False(t, schedule.SameLocalDay(monday(9, 0), monday(9, 0).Add(24*time.Hour)))
	})

	t.Run("days are listed Monday first", func(t *testing.T) {
		assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, schedule.Days().Names())
	})
}

func TestSlots(t *testing.T) {
	now := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	newSpot := func(t *testing.T) *spot.Spot {
		t.Helper()
		s, err := builder.NewSpotBuilder().WithSlots(3, 3).BuildDomain()
		require.NoError(t, err)
		return s
	}

	t.Run("reserve and release", func(t *testing.T) {
		s := newSpot(t)
		require.NoError(t, s.Reserve(2, now))
		assert.Equal(t, 1, s.AvailableSlots())
		assert.Equal(t, now, s.UpdatedAt())

		require.ErrorIs(t, s.Reserve(2, now), spot.ErrInsufficientSlots)
		require.NoError(t, s.Release(2, now))
		assert.Equal(t, 3, s.AvailableSlots())
		require.ErrorIs(t, s.Release(1, now), spot.ErrSlotsOverReleased)
	})

	t.Run("non positive counts", func(t *testing.T) {
		s := newSpot(t)
		require.ErrorIs(t, s.Reserve(0, now), spot.ErrInvalidSlotCount)
		require.ErrorIs(t, s.Release(-1, now), spot.ErrInvalidSlotCount)
	})

	t.Run("capacity follows slots in use", func(t *testing.T) {
		s := newSpot(t)
		require.NoError(t, s.Reserve(2, now))

		require.NoError(t, s.ChangeCapacity(5, now))
		assert.Equal(t, 5, s.TotalSlots())
		assert.Equal(t, 3, s.AvailableSlots())

		require.ErrorIs(t, s.ChangeCapacity(1, now), spot.ErrCapacityInUse)
		require.NoError(t, s.ChangeCapacity(2, now))
		assert.Equal(t, 0, s.AvailableSlots())
		require.ErrorIs(t, s.ChangeCapacity(0, now), spot.ErrInvalidTotalSlots)
	})

	t.Run("new spot starts fully available", func(t *testing.T) {
		details, err := spot.BuildDetails(spot.RawDetails{
			Title: "Lot", Address: "1 Main", Lat: 1, Lng: 1,
			HourlyRate: decimal.NewFromInt(100), OpenTime: "00:00", CloseTime: "23:59",
			AvailableDays: []string{"Sun"}, TimeZone: "UTC",
		})
		require.NoError(t, err)
		ownerID := uuid.New()
		s, err := spot.NewSpot(ownerID, details, 4, now)
		require.NoError(t, err)
		assert.True(t, s.IsOwnedBy(ownerID))
		assert.Equal(t, 4, s.AvailableSlots())

		_, err = spot.NewSpot(ownerID, details, 0, now)
		require.ErrorIs(t, err, spot.ErrInvalidTotalSlots)
	})

	t.Run("raw details round trip", func(t *testing.T) {
		s := newSpot(t)
		raw := s.RawDetails()
		assert.Equal(t, "12:00 AM", raw.OpenTime)
		assert.Equal(t, "11:59 PM", raw.CloseTime)
		assert.Equal(t, "UTC", raw.TimeZone)

		details, err := spot.BuildDetails(raw)
		require.NoError(t, err)
		assert.Equal(t, s.Schedule().Open(), details.Schedule.Open())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSpotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
