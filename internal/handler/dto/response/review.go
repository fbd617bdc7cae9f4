package response

import (
	"parkspot/internal/usecase/queries"
)

type ReviewResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	SpotID      string   `json:"spot_id"`
	SpotTitle   string   `json:"spot_title"`
	BookingID   string   `json:"booking_id"`
	Rating      int32    `json:"rating"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	OwnerReply  *string  `json:"owner_reply,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:          v.ID.String(),
		UserID:      v.UserID.String(),
		UserName:    v.UserName,
		SpotID:      v.SpotID.String(),
		SpotTitle:   v.SpotTitle,
		BookingID:   v.BookingID.String(),
		Rating:      v.Rating,
		Description: v.Description,
		Images:      nonNilStrings(v.Images),
		OwnerReply:  v.OwnerReply,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID          string   `json:"id"`
	UserName    string   `json:"user_name"`
	Rating      int32    `json:"rating"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	OwnerReply  *string  `json:"owner_reply,omitempty"`
	CreatedAt   int64    `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:          it.ID.String(),
			UserName:    it.UserName,
			Rating:      it.Rating,
			Description: it.Description,
			Images:      nonNilStrings(it.Images),
			OwnerReply:  it.OwnerReply,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}

type SpotRatingStatsResponse struct {
	SpotID        string  `json:"spot_id"`
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromSpotRatingStats(s *queries.SpotRatingStats) *SpotRatingStatsResponse {
	return &SpotRatingStatsResponse{
		SpotID:        s.SpotID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
		UpdatedAt:     s.UpdatedAt.Unix(),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
