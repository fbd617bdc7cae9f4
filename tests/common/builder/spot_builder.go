//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/spot"
	reqdto "parkspot/internal/handler/dto/request"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SpotBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Address        string
	Lat            float64
	Lng            float64
	HourlyRate     decimal.Decimal
	OpenTime       string
	CloseTime      string
	AvailableDays  []string
	TimeZone       string
	TotalSlots     int
	AvailableSlots int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSpotBuilder() *SpotBuilder {
	now := time.Now()
	return &SpotBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Shibuya Station Parking",
		Address:        "1-1 Dogenzaka, Shibuya, Tokyo",
		Lat:            35.6580,
		Lng:            139.7016,
		HourlyRate:     decimal.NewFromInt(300),
		OpenTime:       "00:00",
		CloseTime:      "23:59",
		AvailableDays:  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		TimeZone:       "UTC",
		TotalSlots:     10,
		AvailableSlots: 10,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(s)
	return s
}

func (s *SpotBuilder) raw() spot.RawDetails {
	return spot.RawDetails{
		Title:         s.Title,
		Address:       s.Address,
		Lat:           s.Lat,
		Lng:           s.Lng,
		HourlyRate:    s.HourlyRate,
		OpenTime:      s.OpenTime,
		CloseTime:     s.CloseTime,
		AvailableDays: s.AvailableDays,
		TimeZone:      s.TimeZone,
	}
}

// Build methods
func (s *SpotBuilder) BuildDomain() (*spot.Spot, error) {
	details, err := spot.BuildDetails(s.raw())
	if err != nil {
		return nil, err
	}
	return spot.ReconstructSpot(s.ID, s.OwnerID, details, s.TotalSlots, s.AvailableSlots, s.CreatedAt, s.UpdatedAt), nil
}

func (s *SpotBuilder) BuildInfra() sqlc.Spots {
	return sqlc.Spots{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Title:          s.Title,
		Address:        s.Address,
		Lat:            s.Lat,
		Lng:            s.Lng,
		HourlyRate:     s.HourlyRate,
		OpenTime:       s.OpenTime,
		CloseTime:      s.CloseTime,
		AvailableDays:  s.AvailableDays,
		TimeZone:       s.TimeZone,
		TotalSlots:     int32(s.TotalSlots),
		AvailableSlots: int32(s.AvailableSlots),
		CreatedAt:      pgtype.Timestamptz{Time: s.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: s.UpdatedAt, Valid: true},
	}
}

func (s *SpotBuilder) BuildView() *queries.SpotView {
	return &queries.SpotView{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Title:          s.Title,
		Address:        s.Address,
		Lat:            s.Lat,
		Lng:            s.Lng,
		HourlyRate:     s.HourlyRate,
		OpenTime:       s.OpenTime,
		CloseTime:      s.CloseTime,
		AvailableDays:  s.AvailableDays,
		TimeZone:       s.TimeZone,
		TotalSlots:     int32(s.TotalSlots),
		AvailableSlots: int32(s.AvailableSlots),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (s *SpotBuilder) BuildSearchResult(distanceKm float64) *queries.SpotSearchResult {
	return &queries.SpotSearchResult{SpotView: *s.BuildView(), DistanceKm: distanceKm}
}

func (s *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	lat, lng := s.Lat, s.Lng
	return reqdto.CreateSpotRequest{
		Title:         s.Title,
		Address:       s.Address,
		Lat:           &lat,
		Lng:           &lng,
		HourlyRate:    s.HourlyRate,
		OpenTime:      s.OpenTime,
		CloseTime:     s.CloseTime,
		AvailableDays: s.AvailableDays,
		TimeZone:      s.TimeZone,
		TotalSlots:    s.TotalSlots,
	}
}

// Fluent builder methods
func (s *SpotBuilder) WithID(id uuid.UUID) *SpotBuilder {
	s.ID = id
	return s
}

func (s *SpotBuilder) WithOwnerID(ownerID uuid.UUID) *SpotBuilder {
	s.OwnerID = ownerID
	return s
}

func (s *SpotBuilder) WithHourlyRate(rate decimal.Decimal) *SpotBuilder {
	s.HourlyRate = rate
	return s
}

func (s *SpotBuilder) WithHours(open, close string) *SpotBuilder {
	s.OpenTime = open
	s.CloseTime = close
	return s
}

func (s *SpotBuilder) WithDays(days ...string) *SpotBuilder {
	s.AvailableDays = days
	return s
}

func (s *SpotBuilder) WithTimeZone(tz string) *SpotBuilder {
	s.TimeZone = tz
	return s
}

func (s *SpotBuilder) WithSlots(total, available int) *SpotBuilder {
	s.TotalSlots = total
	s.AvailableSlots = available
	return s
}

func (s *SpotBuilder) AsFull() *SpotBuilder {
	s.AvailableSlots = 0
	return s
}
