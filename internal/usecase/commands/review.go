package commands

import (
	"context"

	"parkspot/internal/domain/booking"
	domreview "parkspot/internal/domain/review"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/patch"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrReviewNotFoundWrite = errs.New("review not found")
	ErrReplyNotAllowed     = errs.New("only the spot owner can reply")
)

type CreateReviewInput struct {
	SpotID      uuid.UUID
	BookingID   uuid.UUID
	Rating      int
	Description string
	Images      []string
}

type UpdateReviewInput struct {
	Rating      *int
	Description *string
	Images      []string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (uuid.UUID, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, in UpdateReviewInput) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
	ReplyToReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, reply string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (uuid.UUID, error) {
	content, err := domreview.BuildContent(in.Rating, in.Description, in.Images)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		services := &domreview.Services{
			Clock:              uc.clock,
			EligibilityChecker: domreview.EligibilityCheckerFunc(func(input domreview.EligibilityInput) error {
				return checkReviewEligibility(ctx, tx.Reads(), input)
			}),
		}
		rev, derr := domreview.NewReview(services, userID, in.SpotID, in.BookingID, content)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return derr
		}
		createdID = id
		return tx.RatingStats().RecalcSpotRatingStats(ctx, tx.DB(), in.SpotID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, domreview.ErrReviewExists
		}
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, in UpdateReviewInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reviews().FindByID(ctx, tx.DB(), reviewID)
		if derr != nil {
			return derr
		}
		if rev.UserID() != actorID {
			return ErrReviewNotOwned
		}

		content, derr := domreview.BuildContent(
			patch.Coalesce(in.Rating, rev.Rating().Value()),
			patch.Coalesce(in.Description, rev.Description().String()),
			patch.CoalesceSlice(in.Images, rev.Images().URLs()),
		)
		if derr != nil {
			return derr
		}
		rev.Edit(content, uc.clock.Now())

		if derr = tx.Reviews().Update(ctx, tx.DB(), rev); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcSpotRatingStats(ctx, tx.DB(), rev.SpotID())
	})
	return mapReviewErr(err)
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reviews().FindByID(ctx, tx.DB(), reviewID)
		if derr != nil {
			return derr
		}
		if !isAdminRole(actorRole) && rev.UserID() != actorID {
			return ErrReviewNotOwned
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcSpotRatingStats(ctx, tx.DB(), rev.SpotID())
	})
	return mapReviewErr(err)
}

func (uc *reviewUseCaseImpl) ReplyToReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, reply string) error {
	text, err := domreview.NewOwnerReply(reply)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reviews().FindByID(ctx, tx.DB(), reviewID)
		if derr != nil {
			return derr
		}
		s, derr := tx.Reads().SpotByID(ctx, rev.SpotID())
		if derr != nil {
			return derr
		}
		if !s.IsOwnedBy(actorID) {
			return ErrReplyNotAllowed
		}
		rev.Reply(text, uc.clock.Now())
		return tx.Reviews().Reply(ctx, tx.DB(), rev)
	})
	return mapReviewErr(err)
}

// checkReviewEligibility allows a review only for the reviewer's own completed booking at that spot.
func checkReviewEligibility(ctx context.Context, reads shared.CommandReads, input domreview.EligibilityInput) error {
	snap, err := reads.BookingByID(ctx, input.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return domreview.ErrBookingNotEligible
		}
		return err
	}
	if snap.UserID != input.UserID || snap.SpotID != input.SpotID {
		return domreview.ErrBookingNotEligible
	}
	if snap.Status != booking.StatusCompleted.String() {
		return domreview.ErrBookingNotEligible
	}
	return nil
}

func mapReviewErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReviewNotFoundWrite
	}
	return err
}
