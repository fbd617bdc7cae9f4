package converter

import (
	"parkspot/internal/domain/review"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:          r.ID(),
		UserID:      r.UserID(),
		SpotID:      r.SpotID(),
		BookingID:   r.BookingID(),
		RatingScore: pgconv.IntToInt32(r.Rating().Value()),
		Description: r.Description().String(),
		Images:      r.Images().URLs(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:          r.ID(),
		RatingScore: pgconv.IntToInt32(r.Rating().Value()),
		Description: r.Description().String(),
		Images:      r.Images().URLs(),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	content, err := review.BuildContent(int(row.RatingScore), row.Description, row.Images)
	if err != nil {
		return nil, errs.Wrapf(err, "stored review %s", row.ID)
	}

	var reply *review.OwnerReply
	if row.OwnerReply.Valid {
		r, err := review.NewOwnerReply(row.OwnerReply.String)
		if err != nil {
			return nil, errs.Wrapf(err, "stored review %s reply", row.ID)
		}
		reply = &r
	}

	return review.ReconstructReview(
		row.ID, row.UserID, row.SpotID, row.BookingID,
		content,
		reply,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
