//go:build unit || e2e

package builder

import (
	"time"

	domreview "parkspot/internal/domain/review"
	reqdto "parkspot/internal/handler/dto/request"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UserName    string
	SpotID      uuid.UUID
	SpotTitle   string
	SpotOwnerID uuid.UUID
	BookingID   uuid.UUID
	Rating      int
	Description string
	Images      []string
	OwnerReply  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		UserName:    "Hanako Suzuki",
		SpotID:      uuid.New(),
		SpotTitle:   "Shibuya Station Parking",
		SpotOwnerID: uuid.New(),
		BookingID:   uuid.New(),
		Rating:      5,
		Description: "Easy to find and close to the station.",
		Images:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	content, err := domreview.BuildContent(r.Rating, r.Description, r.Images)
	if err != nil {
		return nil, err
	}
	var reply *domreview.OwnerReply
	if r.OwnerReply != nil {
		rep, err := domreview.NewOwnerReply(*r.OwnerReply)
		if err != nil {
			return nil, err
		}
		reply = &rep
	}
	return domreview.ReconstructReview(r.ID, r.UserID, r.SpotID, r.BookingID, content, reply, r.CreatedAt, r.UpdatedAt), nil
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	var reply pgtype.Text
	if r.OwnerReply != nil {
		reply = pgtype.Text{String: *r.OwnerReply, Valid: true}
	}
	return sqlc.Reviews{
		ID:          r.ID,
		UserID:      r.UserID,
		SpotID:      r.SpotID,
		BookingID:   r.BookingID,
		RatingScore: int32(r.Rating),
		Description: r.Description,
		Images:      r.Images,
		OwnerReply:  reply,
		CreatedAt:   pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		SpotID:      r.SpotID,
		BookingID:   r.BookingID,
		Rating:      r.Rating,
		Description: r.Description,
		Images:      r.Images,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	description := r.Description
	return reqdto.UpdateReviewRequest{
		Rating:      &rating,
		Description: &description,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		SpotID:      r.SpotID,
		SpotTitle:   r.SpotTitle,
		SpotOwnerID: r.SpotOwnerID,
		BookingID:   r.BookingID,
		Rating:      int32(r.Rating),
		Description: r.Description,
		Images:      r.Images,
		OwnerReply:  r.OwnerReply,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:          r.ID,
		UserName:    r.UserName,
		Rating:      int32(r.Rating),
		Description: r.Description,
		Images:      r.Images,
		OwnerReply:  r.OwnerReply,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildSpotRatingStats() *queries.SpotRatingStats {
	return &queries.SpotRatingStats{
		SpotID:        r.SpotID,
		TotalReviews:  10,
		AverageRating: 4.2,
		Rating1Count:  1,
		Rating2Count:  1,
		Rating3Count:  2,
		Rating4Count:  3,
		Rating5Count:  3,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithSpotID(spotID uuid.UUID) *ReviewBuilder {
	r.SpotID = spotID
	return r
}

func (r *ReviewBuilder) WithSpotOwnerID(ownerID uuid.UUID) *ReviewBuilder {
	r.SpotOwnerID = ownerID
	return r
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithDescription(description string) *ReviewBuilder {
	r.Description = description
	return r
}

func (r *ReviewBuilder) WithImages(urls ...string) *ReviewBuilder {
	r.Images = urls
	return r
}

func (r *ReviewBuilder) WithOwnerReply(reply string) *ReviewBuilder {
	r.OwnerReply = &reply
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Description = "Gate was locked when I arrived"
	return r
}
