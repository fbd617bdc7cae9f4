package repository

import (
	"context"

	"parkspot/internal/infra"
	sqlc "parkspot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcSpotRatingStats(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsQueries
	db sqlc.DBTX
}

func NewRatingStatsRepository(q RatingStatsQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

func (r *RatingStatsRepository) RecalcSpotRatingStats(ctx context.Context, tx sqlc.DBTX, spotID uuid.UUID) error {
	if err := r.q.RecalcSpotRatingStats(ctx, tx, spotID); err != nil {
		return infra.WrapRepoErr("failed to recalc spot rating stats", err)
	}
	return nil
}
