package api

import (
	"log/slog"
	"net/http"

	"parkspot/internal/domain/auth"
	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/review"
	"parkspot/internal/domain/spot"
	"parkspot/internal/domain/user"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/infra/cache"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// errorMapping with an empty message exposes the sentinel's own text.
type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	// 400
	{reqdto.ErrInvalidSearchQuery, http.StatusBadRequest, "Invalid search query"},
	{queries.ErrInvalidSearch, http.StatusBadRequest, "Invalid search parameters"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{booking.ErrInvalidSlots, http.StatusBadRequest, ""},
	{booking.ErrMissingTime, http.StatusBadRequest, ""},
	{booking.ErrEndBeforeStart, http.StatusBadRequest, ""},
	{booking.ErrStartInPast, http.StatusBadRequest, ""},
	{booking.ErrSpansMultipleDays, http.StatusBadRequest, ""},
	{booking.ErrOutsideSchedule, http.StatusBadRequest, ""},
	{spot.ErrInvalidTimeZone, http.StatusBadRequest, ""},
	{spot.ErrInvalidClockTime, http.StatusBadRequest, ""},
	{spot.ErrInvalidSchedule, http.StatusBadRequest, ""},
	{spot.ErrNoAvailableDays, http.StatusBadRequest, ""},
	{spot.ErrInvalidWeekday, http.StatusBadRequest, ""},
	{spot.ErrInvalidCoordinates, http.StatusBadRequest, ""},
	{spot.ErrInvalidHourlyRate, http.StatusBadRequest, ""},
	{spot.ErrInvalidTitle, http.StatusBadRequest, ""},
	{spot.ErrInvalidAddress, http.StatusBadRequest, ""},
	{spot.ErrInvalidTotalSlots, http.StatusBadRequest, ""},
	{spot.ErrInvalidSlotCount, http.StatusBadRequest, ""},
	{review.ErrInvalidRating, http.StatusBadRequest, ""},
	{review.ErrEmptyDescription, http.StatusBadRequest, ""},
	{review.ErrDescriptionTooLong, http.StatusBadRequest, ""},
	{review.ErrTooManyImages, http.StatusBadRequest, ""},
	{review.ErrInvalidImageURL, http.StatusBadRequest, ""},
	{review.ErrEmptyReply, http.StatusBadRequest, ""},
	{review.ErrReplyTooLong, http.StatusBadRequest, ""},
	{user.ErrInvalidEmail, http.StatusBadRequest, ""},
	{user.ErrInvalidRole, http.StatusBadRequest, ""},
	{user.ErrPasswordTooWeak, http.StatusBadRequest, ""},
	{user.ErrInvalidName, http.StatusBadRequest, ""},
	{user.ErrInvalidPhone, http.StatusBadRequest, ""},
	{commands.ErrPaymentOrderMismatch, http.StatusBadRequest, "Payment order does not match booking"},

	// 401
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired refresh token"},

	// 402
	{commands.ErrPaymentRefunding, http.StatusPaymentRequired, "Payment could not be verified. A refund has been initiated"},

	// 403
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{auth.ErrInactiveUser, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{commands.ErrSpotNotOwned, http.StatusForbidden, "You do not manage this spot"},
	{commands.ErrBookingNotOwned, http.StatusForbidden, "You do not own this booking"},
	{commands.ErrReviewNotOwned, http.StatusForbidden, "You do not own this review"},
	{commands.ErrReplyNotAllowed, http.StatusForbidden, "Only the spot owner can reply"},
	{queries.ErrSpotAccess, http.StatusForbidden, "Access denied"},
	{queries.ErrBookingAccess, http.StatusForbidden, "Access denied"},

	// 404
	{commands.ErrSpotNotFound, http.StatusNotFound, "Spot not found"},
	{queries.ErrSpotNotFound, http.StatusNotFound, "Spot not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrReviewNotFoundWrite, http.StatusNotFound, "Review not found"},
	{queries.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},

	// 409
	{booking.ErrSlotsUnavailable, http.StatusConflict, ""},
	{spot.ErrInsufficientSlots, http.StatusConflict, "Requested slots are not available"},
	{booking.ErrInvalidTransition, http.StatusConflict, ""},
	{booking.ErrPaymentNotSettled, http.StatusConflict, ""},
	{booking.ErrPaymentAlreadyFinal, http.StatusConflict, ""},
	{spot.ErrCapacityInUse, http.StatusConflict, ""},
	{commands.ErrSpotHasActiveBookings, http.StatusConflict, "Spot has active bookings"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Request with this Idempotency-Key is still being processed"},
	{commands.ErrReceiptUnavailable, http.StatusConflict, ""},
	{review.ErrReviewExists, http.StatusConflict, ""},
	{auth.ErrEmailTaken, http.StatusConflict, ""},

	// 422
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency-Key was used with a different request"},
	{review.ErrBookingNotEligible, http.StatusUnprocessableEntity, ""},

	// 503
	{cache.ErrRecentSearchUnavailable, http.StatusServiceUnavailable, "Search history is temporarily unavailable"},
}

// abortWithMappedError writes the status registered for err, or 500 with fallback.
func abortWithMappedError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = m.target.Error()
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}

	slog.Error(fallback, "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
