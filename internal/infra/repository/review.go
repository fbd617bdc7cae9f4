package repository

import (
	"context"

	"parkspot/internal/domain/review"
	"parkspot/internal/infra"
	"parkspot/internal/infra/repository/converter"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error)
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
	ReplyToReview(ctx context.Context, db sqlc.DBTX, arg sqlc.ReplyToReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	id, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct review", err)
	}
	return rev, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Reply(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	params := sqlc.ReplyToReviewParams{
		ID:        rev.ID(),
		UpdatedAt: pgconv.TimeToPgtype(rev.UpdatedAt()),
	}
	if reply := rev.OwnerReply(); reply != nil {
		params.OwnerReply = pgconv.StringToPgtype(reply.String())
	}
	n, err := r.queries.ReplyToReview(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to reply to review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
