package queries

import (
	"context"
	"time"

	"parkspot/internal/infra"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	SpotID      uuid.UUID `json:"spot_id"`
	SpotTitle   string    `json:"spot_title"`
	SpotOwnerID uuid.UUID `json:"spot_owner_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Rating      int32     `json:"rating"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	OwnerReply  *string   `json:"owner_reply,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	Rating      int32     `json:"rating"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	OwnerReply  *string   `json:"owner_reply,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SpotRatingStats struct {
	SpotID        uuid.UUID `json:"spot_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindBySpotFirstPage(ctx context.Context, spotID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindBySpotKeyset(ctx context.Context, spotID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	GetSpotRatingStats(ctx context.Context, spotID uuid.UUID) (*SpotRatingStats, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetSpotRatingStats(ctx context.Context, spotID uuid.UUID) (*SpotRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListBySpot(ctx context.Context, spotID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindBySpotFirstPage(ctx, spotID, int32(limit+1), filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindBySpotKeyset(ctx, spotID, lastCreatedAt, lastID, int32(limit+1), filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextCursor(rows, limit, func(r *ReviewListItem) Cursor {
		return Cursor{After: EncodeAfterCursor(r.CreatedAt, r.ID)}
	})
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetSpotRatingStats(ctx context.Context, spotID uuid.UUID) (*SpotRatingStats, error) {
	return q.repo.GetSpotRatingStats(ctx, spotID)
}
