package request

import (
	"parkspot/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	SpotID      uuid.UUID `json:"spot_id" binding:"required"`
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	Rating      int       `json:"rating" binding:"required,min=1,max=5"`
	Description string    `json:"description" binding:"required,max=1000"`
	Images      []string  `json:"images" binding:"omitempty,max=5,dive,url"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		SpotID:      r.SpotID,
		BookingID:   r.BookingID,
		Rating:      r.Rating,
		Description: r.Description,
		Images:      r.Images,
	}
}

type UpdateReviewRequest struct {
	Rating      *int     `json:"rating" binding:"omitempty,min=1,max=5"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Images      []string `json:"images" binding:"omitempty,max=5,dive,url"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Rating:      r.Rating,
		Description: r.Description,
		Images:      r.Images,
	}
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" binding:"required,max=1000"`
}
