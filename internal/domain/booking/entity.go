package booking

import (
	"time"

	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSlots         = errs.New("slot count must be greater than zero")
	ErrMissingTime          = errs.New("start and end time are required")
	ErrEndBeforeStart       = errs.New("end time must be after start time")
	ErrStartInPast          = errs.New("start time cannot be in the past")
	ErrSpansMultipleDays    = errs.New("booking must start and end on the same day")
	ErrOutsideSchedule      = errs.New("booking time is outside the spot schedule")
	ErrSlotsUnavailable     = errs.New("requested slots are not available")
	ErrInvalidStatus        = errs.New("invalid booking status")
	ErrInvalidPaymentStatus = errs.New("invalid payment status")
	ErrInvalidTransition    = errs.New("booking status transition not allowed")
	ErrPaymentNotSettled    = errs.New("booking payment is not settled")
	ErrPaymentAlreadyFinal  = errs.New("booking payment is already finalized")
)

type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	spotID         uuid.UUID
	totalSlots     int
	start          time.Time
	end            time.Time
	totalAmount    decimal.Decimal
	status         Status
	paymentStatus  PaymentStatus
	paymentOrderID string
	paymentID      *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(userID, spotID uuid.UUID, req Request, amount decimal.Decimal, now time.Time) (*Booking, error) {
	if req.Slots <= 0 {
		return nil, ErrInvalidSlots
	}
	if !req.End.After(req.Start) {
		return nil, ErrEndBeforeStart
	}
	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		spotID:        spotID,
		totalSlots:    req.Slots,
		start:         req.Start,
		end:           req.End,
		totalAmount:   amount,
		status:        StatusPending,
		paymentStatus: PaymentCreated,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, userID, spotID uuid.UUID,
	totalSlots int,
	start, end time.Time,
	totalAmount decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	paymentOrderID string,
	paymentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		userID:         userID,
		spotID:         spotID,
		totalSlots:     totalSlots,
		start:          start,
		end:            end,
		totalAmount:    totalAmount,
		status:         status,
		paymentStatus:  paymentStatus,
		paymentOrderID: paymentOrderID,
		paymentID:      paymentID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) AttachPaymentOrder(orderID string, now time.Time) {
	b.paymentOrderID = orderID
	b.updatedAt = now
}

func (b *Booking) MarkPaid(paymentID string, now time.Time) error {
	if b.paymentStatus != PaymentCreated {
		return ErrPaymentAlreadyFinal
	}
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.paymentStatus = PaymentPaid
	b.paymentID = &paymentID
	b.updatedAt = now
	return nil
}

// MarkPaymentFailed cancels a Pending booking and flags the payment for refund.
func (b *Booking) MarkPaymentFailed(paymentID string, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if b.paymentStatus != PaymentCreated {
		return ErrPaymentAlreadyFinal
	}
	b.paymentStatus = PaymentRefundPending
	if paymentID != "" {
		b.paymentID = &paymentID
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) CheckIn(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if b.paymentStatus != PaymentPaid {
		return ErrPaymentNotSettled
	}
	b.status = StatusCheckedIn
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	if b.paymentStatus == PaymentPaid {
		b.paymentStatus = PaymentRefundPending
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusCheckedIn {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool { return b.userID == userID }

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) SpotID() uuid.UUID            { return b.spotID }
func (b *Booking) TotalSlots() int              { return b.totalSlots }
func (b *Booking) Start() time.Time             { return b.start }
func (b *Booking) End() time.Time               { return b.end }
func (b *Booking) TotalAmount() decimal.Decimal { return b.totalAmount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentOrderID() string       { return b.paymentOrderID }
func (b *Booking) PaymentID() *string           { return b.paymentID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
