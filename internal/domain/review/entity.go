package review

import (
	"time"

	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating      = errs.New("rating must be between 1 and 5")
	ErrEmptyDescription   = errs.New("description cannot be empty")
	ErrDescriptionTooLong = errs.New("description exceeds maximum length")
	ErrTooManyImages      = errs.New("a review can have at most 5 images")
	ErrInvalidImageURL    = errs.New("image must be an absolute http(s) URL")
	ErrEmptyReply         = errs.New("owner reply cannot be empty")
	ErrReplyTooLong       = errs.New("owner reply exceeds maximum length")

	ErrBookingNotEligible = errs.New("booking is not eligible for review")
	ErrReviewExists       = errs.New("review already exists for this booking")
)

type Review struct {
	id          uuid.UUID
	userID      uuid.UUID
	spotID      uuid.UUID
	bookingID   uuid.UUID
	rating      Rating
	description Description
	images      Images
	ownerReply  *OwnerReply
	createdAt   time.Time
	updatedAt   time.Time
}

type Content struct {
	Rating      Rating
	Description Description
	Images      Images
}

func NewReview(services *Services, userID, spotID, bookingID uuid.UUID, content Content) (*Review, error) {
	now := services.Clock.Now()
	if services.EligibilityChecker != nil {
		if err := services.EligibilityChecker.CanPostReview(EligibilityInput{
			BookingID: bookingID,
			UserID:    userID,
			SpotID:    spotID,
			Now:       now,
		}); err != nil {
			return nil, err
		}
	}

	return &Review{
		id:          uuid.New(),
		userID:      userID,
		spotID:      spotID,
		bookingID:   bookingID,
		rating:      content.Rating,
		description: content.Description,
		images:      content.Images,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReview(
	id, userID, spotID, bookingID uuid.UUID,
	content Content,
	ownerReply *OwnerReply,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:          id,
		userID:      userID,
		spotID:      spotID,
		bookingID:   bookingID,
		rating:      content.Rating,
		description: content.Description,
		images:      content.Images,
		ownerReply:  ownerReply,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Review) Edit(content Content, now time.Time) {
	r.rating = content.Rating
	r.description = content.Description
	r.images = content.Images
	r.updatedAt = now
}

func (r *Review) Reply(reply OwnerReply, now time.Time) {
	r.ownerReply = &reply
	r.updatedAt = now
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) SpotID() uuid.UUID        { return r.spotID }
func (r *Review) BookingID() uuid.UUID     { return r.bookingID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Description() Description { return r.description }
func (r *Review) Images() Images           { return r.images }
func (r *Review) OwnerReply() *OwnerReply  { return r.ownerReply }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }

func BuildContent(rating int, description string, images []string) (Content, error) {
	rt, err := NewRating(rating)
	if err != nil {
		return Content{}, err
	}
	d, err := NewDescription(description)
	if err != nil {
		return Content{}, err
	}
	imgs, err := NewImages(images)
	if err != nil {
		return Content{}, err
	}
	return Content{Rating: rt, Description: d, Images: imgs}, nil
}
