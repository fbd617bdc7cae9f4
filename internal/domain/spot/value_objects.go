package spot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength   = 255
	MaxAddressLength = 500
)

// ClockTime is a wall clock time of day expressed in minutes after midnight.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts "9:00 AM", "09:00 am", "6:00PM" and 24-hour "18:00".
func ParseClockTime(s string) (ClockTime, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return ClockTime{}, ErrInvalidClockTime
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(raw, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(raw, "PM"):
		meridiem = "PM"
	}
	clock := strings.TrimSpace(strings.TrimSuffix(raw, meridiem))

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 || !allDigits(hh) || !allDigits(mm) {
		return ClockTime{}, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return ClockTime{}, ErrInvalidClockTime
		}
	default:
		if hour < 1 || hour > 12 {
			return ClockTime{}, ErrInvalidClockTime
		}
		// 12 AM is midnight, 12 PM is noon
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return ClockTime{minutes: hour*60 + minute}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func MustParseClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(fmt.Sprintf("spot: invalid clock time %q", s))
	}
	return ct
}

// ClockTimeOf returns the wall clock time of t in its own location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

func (c ClockTime) Minutes() int { return c.minutes }
func (c ClockTime) Hour() int    { return c.minutes / 60 }
func (c ClockTime) Minute() int  { return c.minutes % 60 }

func (c ClockTime) Before(o ClockTime) bool { return c.minutes < o.minutes }
func (c ClockTime) After(o ClockTime) bool  { return c.minutes > o.minutes }

// String renders the 12-hour form stored in the spots table, e.g. "9:00 AM".
func (c ClockTime) String() string {
	h := c.Hour()
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), meridiem)
}

var weekdayNames = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// Days is the set of weekdays a spot accepts bookings on.
type Days struct {
	set map[time.Weekday]struct{}
}

func NewDays(names []string) (Days, error) {
	if len(names) == 0 {
		return Days{}, ErrNoAvailableDays
	}
	set := make(map[time.Weekday]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if len(n) >= 3 {
			n = strings.ToUpper(n[:1]) + strings.ToLower(n[1:3])
		}
		wd, ok := weekdayNames[n]
		if !ok {
			return Days{}, fmt.Errorf("%w: %q", ErrInvalidWeekday, n)
		}
		set[wd] = struct{}{}
	}
	return Days{set: set}, nil
}

func EveryDay() Days {
	set := make(map[time.Weekday]struct{}, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		set[d] = struct{}{}
	}
	return Days{set: set}
}

func (d Days) Contains(wd time.Weekday) bool {
	_, ok := d.set[wd]
	return ok
}

// Names returns abbreviations ordered Mon..Sun.
func (d Days) Names() []string {
	out := make([]string, 0, len(d.set))
	for name, wd := range weekdayNames {
		if d.Contains(wd) {
			out = append(out, name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return mondayFirst(weekdayNames[out[i]]) < mondayFirst(weekdayNames[out[j]])
	})
	return out
}

func mondayFirst(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

type Coordinates struct {
	lat float64
	lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

func (c Coordinates) Lat() float64 { return c.lat }
func (c Coordinates) Lng() float64 { return c.lng }

type HourlyRate struct {
	amount decimal.Decimal
}

func NewHourlyRate(amount decimal.Decimal) (HourlyRate, error) {
	if !amount.IsPositive() {
		return HourlyRate{}, ErrInvalidHourlyRate
	}
	return HourlyRate{amount: amount}, nil
}

func (r HourlyRate) Decimal() decimal.Decimal { return r.amount }

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > MaxTitleLength {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	a := strings.TrimSpace(s)
	if a == "" || len(a) > MaxAddressLength {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: a}, nil
}

func (a Address) String() string { return a.value }
