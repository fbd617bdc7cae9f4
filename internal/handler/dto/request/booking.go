package request

import (
	"time"

	"parkspot/internal/usecase/commands"

	"github.com/google/uuid"
)

// TotalSlots is checked by the booking use case.
type QuoteRequest struct {
	SpotID     uuid.UUID `json:"spot_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	TotalSlots int       `json:"total_slots"`
}

func (r *QuoteRequest) ToInput() commands.QuoteInput {
	return commands.QuoteInput{
		SpotID: r.SpotID,
		Start:  r.StartTime,
		End:    r.EndTime,
		Slots:  r.TotalSlots,
	}
}

type CreateBookingRequest struct {
	SpotID     uuid.UUID `json:"spot_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	TotalSlots int       `json:"total_slots"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		SpotID: r.SpotID,
		Start:  r.StartTime.UTC(),
		End:    r.EndTime.UTC(),
		Slots:  r.TotalSlots,
	}
}

type ConfirmPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

func (r *ConfirmPaymentRequest) ToInput() commands.ConfirmPaymentInput {
	return commands.ConfirmPaymentInput{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
	}
}
