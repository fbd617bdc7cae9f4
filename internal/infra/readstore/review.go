package readstore

import (
	"context"
	"time"

	"parkspot/internal/infra"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadQueries interface {
	GetReviewViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewByIDRow, error)
	GetReviewsBySpotFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsBySpotFirstPageParams) ([]sqlc.GetReviewsBySpotFirstPageRow, error)
	GetReviewsBySpotKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsBySpotKeysetParams) ([]sqlc.GetReviewsBySpotKeysetRow, error)
	GetSpotRatingStats(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (sqlc.SpotRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:          row.ID,
		UserID:      row.UserID,
		UserName:    row.UserName,
		SpotID:      row.SpotID,
		SpotTitle:   row.SpotTitle,
		SpotOwnerID: row.SpotOwnerID,
		BookingID:   row.BookingID,
		Rating:      row.RatingScore,
		Description: row.Description,
		Images:      nonNilImages(row.Images),
		OwnerReply:  pgconv.StringPtrFromPgtype(row.OwnerReply),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindBySpotFirstPage(ctx context.Context, spotID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	params := sqlc.GetReviewsBySpotFirstPageParams{
		SpotID:     spotID,
		MinRating:  toPgInt4(minRating),
		MaxRating:  toPgInt4(maxRating),
		MaxResults: limit,
	}

	rows, err := r.queries.GetReviewsBySpotFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by spot", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = toReviewListItem(row)
	}
	return result, nil
}

func (r *ReviewReadStore) FindBySpotKeyset(ctx context.Context, spotID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	params := sqlc.GetReviewsBySpotKeysetParams{
		SpotID:     spotID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		MinRating:  toPgInt4(minRating),
		MaxRating:  toPgInt4(maxRating),
		MaxResults: limit,
	}
	rows, err := r.queries.GetReviewsBySpotKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by spot", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = toReviewListItem(sqlc.GetReviewsBySpotFirstPageRow(row))
	}
	return result, nil
}

func (r *ReviewReadStore) GetSpotRatingStats(ctx context.Context, spotID uuid.UUID) (*queries.SpotRatingStats, error) {
	row, err := r.queries.GetSpotRatingStats(ctx, r.db, spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// return zero stats if not initialized yet
			return &queries.SpotRatingStats{SpotID: spotID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get spot rating stats", err)
	}
	avgPtr, _ := pgconv.Float64PtrFromNumeric(row.AverageRating)
	avg := 0.0
	if avgPtr != nil {
		avg = *avgPtr
	}
	return &queries.SpotRatingStats{
		SpotID:        row.SpotID,
		TotalReviews:  row.TotalReviews,
		AverageRating: avg,
		Rating1Count:  row.Rating1Count,
		Rating2Count:  row.Rating2Count,
		Rating3Count:  row.Rating3Count,
		Rating4Count:  row.Rating4Count,
		Rating5Count:  row.Rating5Count,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgconv.Int32ToPgtype(pgconv.IntToInt32(*v))
}

func toReviewListItem(row sqlc.GetReviewsBySpotFirstPageRow) *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:          row.ID,
		UserName:    row.UserName,
		Rating:      row.RatingScore,
		Description: row.Description,
		Images:      nonNilImages(row.Images),
		OwnerReply:  pgconv.StringPtrFromPgtype(row.OwnerReply),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func nonNilImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
