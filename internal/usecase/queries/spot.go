package queries

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"

	"github.com/google/uuid"
)

const MaxSearchRadiusKm = 50.0

type SearchCriteria struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
	// Start and End are optional; when both are set only spots that could take
	// the booking are returned.
	Start *time.Time
	End   *time.Time
	Slots int
	Limit int
}

type SpotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error)
	SearchNear(ctx context.Context, lat, lng, radiusKm float64, limit int32) ([]*SpotSearchResult, error)
}

type SpotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*SpotSearchResult, error)
}

type spotQueriesImpl struct {
	repo  SpotReadStore
	clock clock.Clock
}

func NewSpotQueries(repo SpotReadStore, clock clock.Clock) SpotQueries {
	return &spotQueriesImpl{repo: repo, clock: clock}
}

func (q *spotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *spotQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error) {
	return q.repo.ListByOwner(ctx, ownerID)
}

func (q *spotQueriesImpl) Search(ctx context.Context, c SearchCriteria) ([]*SpotSearchResult, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	limit := ValidateLimit(c.Limit)
	fetch := limit
	if c.Start != nil {
		// availability is filtered after the distance query
		fetch = MaxListLimit
	}

	results, err := q.repo.SearchNear(ctx, c.Lat, c.Lng, c.RadiusKm, int32(fetch))
	if err != nil {
		return nil, err
	}
	if c.Start == nil {
		return results, nil
	}

	req := booking.Request{Start: *c.Start, End: *c.End, Slots: c.Slots}
	if req.Slots <= 0 {
		req.Slots = 1
	}
	now := q.clock.Now()

	filtered := make([]*SpotSearchResult, 0, len(results))
	for _, r := range results {
		schedule, err := spot.BuildSchedule(r.OpenTime, r.CloseTime, r.AvailableDays, r.TimeZone)
		if err != nil {
			slog.Warn("スポットのスケジュールが不正なため検索結果から除外します", "spot_id", r.ID, "error", err.Error())
			continue
		}
		if booking.ValidateRequest(schedule, int(r.AvailableSlots), req, now) != nil {
			continue
		}
		filtered = append(filtered, r)
		if len(filtered) == limit {
			break
		}
	}
	return filtered, nil
}

func (c SearchCriteria) validate() error {
	if _, err := spot.NewCoordinates(c.Lat, c.Lng); err != nil {
		return ErrInvalidSearch
	}
	if c.RadiusKm <= 0 || c.RadiusKm > MaxSearchRadiusKm {
		return ErrInvalidSearch
	}
	if (c.Start == nil) != (c.End == nil) {
		return ErrInvalidSearch
	}
	if c.Start != nil && !c.End.After(*c.Start) {
		return ErrInvalidSearch
	}
	if c.Slots < 0 {
		return ErrInvalidSearch
	}
	return nil
}
