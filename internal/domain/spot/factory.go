package spot

import (
	"fmt"
	"time"

	"parkspot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidTimeZone = errs.New("invalid time zone")

// RawDetails is the unvalidated form shared by create/update commands and row reconstruction.
type RawDetails struct {
	Title         string
	Address       string
	Lat           float64
	Lng           float64
	HourlyRate    decimal.Decimal
	OpenTime      string
	CloseTime     string
	AvailableDays []string
	TimeZone      string
}

func BuildDetails(raw RawDetails) (Details, error) {
	title, err := NewTitle(raw.Title)
	if err != nil {
		return Details{}, err
	}
	address, err := NewAddress(raw.Address)
	if err != nil {
		return Details{}, err
	}
	coords, err := NewCoordinates(raw.Lat, raw.Lng)
	if err != nil {
		return Details{}, err
	}
	rate, err := NewHourlyRate(raw.HourlyRate)
	if err != nil {
		return Details{}, err
	}
	schedule, err := BuildSchedule(raw.OpenTime, raw.CloseTime, raw.AvailableDays, raw.TimeZone)
	if err != nil {
		return Details{}, err
	}
	return Details{
		Title:       title,
		Address:     address,
		Coordinates: coords,
		HourlyRate:  rate,
		Schedule:    schedule,
	}, nil
}

func BuildSchedule(openTime, closeTime string, days []string, tz string) (Schedule, error) {
	open, err := ParseClockTime(openTime)
	if err != nil {
		return Schedule{}, errs.Wrapf(err, "open_time %q", openTime)
	}
	closeAt, err := ParseClockTime(closeTime)
	if err != nil {
		return Schedule{}, errs.Wrapf(err, "close_time %q", closeTime)
	}
	d, err := NewDays(days)
	if err != nil {
		return Schedule{}, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w %q: %w", ErrInvalidTimeZone, tz, err)
	}
	return NewSchedule(open, closeAt, d, loc)
}

// RawDetails returns the current details in unvalidated form, used as the base for partial updates.
func (s *Spot) RawDetails() RawDetails {
	return RawDetails{
		Title:         s.title.String(),
		Address:       s.address.String(),
		Lat:           s.coordinates.Lat(),
		Lng:           s.coordinates.Lng(),
		HourlyRate:    s.hourlyRate.Decimal(),
		OpenTime:      s.schedule.Open().String(),
		CloseTime:     s.schedule.Close().String(),
		AvailableDays: s.schedule.Days().Names(),
		TimeZone:      s.schedule.Location().String(),
	}
}
