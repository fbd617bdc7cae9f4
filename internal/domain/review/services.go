package review

import (
	"time"

	"parkspot/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	SpotID    uuid.UUID
	Now       time.Time
}

// EligibilityChecker decides whether a booking allows a review, typically by
// requiring it to be Completed and owned by the reviewer.
type EligibilityChecker interface {
	CanPostReview(input EligibilityInput) error
}

type EligibilityCheckerFunc func(input EligibilityInput) error

func (f EligibilityCheckerFunc) CanPostReview(input EligibilityInput) error { return f(input) }
