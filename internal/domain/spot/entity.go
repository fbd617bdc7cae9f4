package spot

import (
	"time"

	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidClockTime    = errs.New("invalid clock time")
	ErrInvalidSchedule     = errs.New("open time must be before close time")
	ErrNoAvailableDays     = errs.New("at least one available day is required")
	ErrInvalidWeekday      = errs.New("invalid weekday")
	ErrInvalidCoordinates  = errs.New("coordinates out of range")
	ErrInvalidHourlyRate   = errs.New("hourly rate must be positive")
	ErrInvalidTitle        = errs.New("title must be 1-255 characters")
	ErrInvalidAddress      = errs.New("address must be 1-500 characters")
	ErrInvalidTotalSlots   = errs.New("total slots must be at least 1")
	ErrInvalidSlotCount    = errs.New("slot count must be positive")
	ErrInsufficientSlots   = errs.New("not enough available slots")
	ErrSlotsOverReleased   = errs.New("released slots exceed capacity")
	ErrCapacityInUse       = errs.New("capacity cannot shrink below slots in use")
	ErrClosedOnDay         = errs.New("spot is closed on this day")
	ErrOutsideOpeningHours = errs.New("time is outside opening hours")
)

type Spot struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	title          Title
	address        Address
	coordinates    Coordinates
	hourlyRate     HourlyRate
	schedule       Schedule
	totalSlots     int
	availableSlots int
	createdAt      time.Time
	updatedAt      time.Time
}

type Details struct {
	Title       Title
	Address     Address
	Coordinates Coordinates
	HourlyRate  HourlyRate
	Schedule    Schedule
}

func NewSpot(ownerID uuid.UUID, d Details, totalSlots int, now time.Time) (*Spot, error) {
	if totalSlots < 1 {
		return nil, ErrInvalidTotalSlots
	}
	return &Spot{
		id:             uuid.New(),
		ownerID:        ownerID,
		title:          d.Title,
		address:        d.Address,
		coordinates:    d.Coordinates,
		hourlyRate:     d.HourlyRate,
		schedule:       d.Schedule,
		totalSlots:     totalSlots,
		availableSlots: totalSlots,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSpot(
	id, ownerID uuid.UUID,
	d Details,
	totalSlots, availableSlots int,
	createdAt, updatedAt time.Time,
) *Spot {
	return &Spot{
		id:             id,
		ownerID:        ownerID,
		title:          d.Title,
		address:        d.Address,
		coordinates:    d.Coordinates,
		hourlyRate:     d.HourlyRate,
		schedule:       d.Schedule,
		totalSlots:     totalSlots,
		availableSlots: availableSlots,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *Spot) Reserve(n int, now time.Time) error {
	if n <= 0 {
		return ErrInvalidSlotCount
	}
	if n > s.availableSlots {
		return ErrInsufficientSlots
	}
	s.availableSlots -= n
	s.updatedAt = now
	return nil
}

func (s *Spot) Release(n int, now time.Time) error {
	if n <= 0 {
		return ErrInvalidSlotCount
	}
	if s.availableSlots+n > s.totalSlots {
		return ErrSlotsOverReleased
	}
	s.availableSlots += n
	s.updatedAt = now
	return nil
}

func (s *Spot) UpdateDetails(d Details, now time.Time) {
	s.title = d.Title
	s.address = d.Address
	s.coordinates = d.Coordinates
	s.hourlyRate = d.HourlyRate
	s.schedule = d.Schedule
	s.updatedAt = now
}

// ChangeCapacity moves available slots by the same delta as total slots.
func (s *Spot) ChangeCapacity(total int, now time.Time) error {
	if total < 1 {
		return ErrInvalidTotalSlots
	}
	inUse := s.totalSlots - s.availableSlots
	if total < inUse {
		return ErrCapacityInUse
	}
	s.availableSlots = total - inUse
	s.totalSlots = total
	s.updatedAt = now
	return nil
}

func (s *Spot) IsOwnedBy(userID uuid.UUID) bool { return s.ownerID == userID }

func (s *Spot) ID() uuid.UUID            { return s.id }
func (s *Spot) OwnerID() uuid.UUID       { return s.ownerID }
func (s *Spot) Title() Title             { return s.title }
func (s *Spot) Address() Address         { return s.address }
func (s *Spot) Coordinates() Coordinates { return s.coordinates }
func (s *Spot) HourlyRate() HourlyRate   { return s.hourlyRate }
func (s *Spot) Schedule() Schedule       { return s.schedule }
func (s *Spot) TotalSlots() int          { return s.totalSlots }
func (s *Spot) AvailableSlots() int      { return s.availableSlots }
func (s *Spot) CreatedAt() time.Time     { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time     { return s.updatedAt }
