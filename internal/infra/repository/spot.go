package repository

import (
	"context"
	"time"

	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/infra/repository/converter"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotWriteQueries interface {
	CreateSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSpotParams) (sqlc.Spots, error)
	GetSpotByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spots, error)
	UpdateSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpotParams) (int64, error)
	DeleteSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ReserveSpotSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSpotSlotsParams) (int64, error)
	ReleaseSpotSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSpotSlotsParams) (int64, error)
	CountActiveBookingsBySpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (int64, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotWriteQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error {
	if _, err := r.queries.CreateSpot(ctx, tx, converter.SpotToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create spot", err)
	}
	return nil
}

func (r *SpotRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.GetSpotByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock spot", err)
	}
	s, err := converter.SpotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct spot", err)
	}
	return s, nil
}

func (r *SpotRepository) Update(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error {
	n, err := r.queries.UpdateSpot(ctx, tx, converter.SpotToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSpot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) ReserveSlots(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, slots int, now time.Time) error {
	n, err := r.queries.ReserveSpotSlots(ctx, tx, sqlc.ReserveSpotSlotsParams{
		Slots:     pgconv.IntToInt32(slots),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reserve spot slots", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("not enough available slots", nil, infra.KindConflict)
	}
	return nil
}

func (r *SpotRepository) ReleaseSlots(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, slots int, now time.Time) error {
	n, err := r.queries.ReleaseSpotSlots(ctx, tx, sqlc.ReleaseSpotSlotsParams{
		Slots:     pgconv.IntToInt32(slots),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release spot slots", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("released slots exceed capacity", nil, infra.KindConflict)
	}
	return nil
}

func (r *SpotRepository) CountActiveBookings(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveBookingsBySpot(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return count, nil
}
