package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillableHours rounds the booked duration up to whole hours.
func BillableHours(start, end time.Time) (int64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrMissingTime
	}
	if !end.After(start) {
		return 0, ErrEndBeforeStart
	}
	d := end.Sub(start)
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours, nil
}

// CalculateAmount returns ceil(hours) * rate * slots. Partial hours are never rounded down.
func CalculateAmount(start, end time.Time, slots int, rate decimal.Decimal) (decimal.Decimal, error) {
	if slots <= 0 {
		return decimal.Zero, ErrInvalidSlots
	}
	hours, err := BillableHours(start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(decimal.NewFromInt(hours)).Mul(decimal.NewFromInt(int64(slots))), nil
}
