//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/booking"
	reqdto "parkspot/internal/handler/dto/request"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SpotID         uuid.UUID
	OwnerID        uuid.UUID
	TotalSlots     int
	Start          time.Time
	End            time.Time
	TotalAmount    decimal.Decimal
	Status         booking.Status
	PaymentStatus  booking.PaymentStatus
	PaymentOrderID string
	PaymentID      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	start := now.Truncate(time.Hour).Add(24 * time.Hour)
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		SpotID:         uuid.New(),
		OwnerID:        uuid.New(),
		TotalSlots:     1,
		Start:          start,
		End:            start.Add(2 * time.Hour),
		TotalAmount:    decimal.NewFromInt(600),
		Status:         booking.StatusPending,
		PaymentStatus:  booking.PaymentCreated,
		PaymentOrderID: "order_test_0001",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.SpotID,
		b.TotalSlots,
		b.Start, b.End,
		b.TotalAmount,
		b.Status,
		b.PaymentStatus,
		b.PaymentOrderID,
		b.PaymentID,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	var paymentID pgtype.Text
	if b.PaymentID != nil {
		paymentID = pgtype.Text{String: *b.PaymentID, Valid: true}
	}
	return sqlc.Bookings{
		ID:             b.ID,
		UserID:         b.UserID,
		SpotID:         b.SpotID,
		TotalSlots:     int32(b.TotalSlots),
		StartTime:      pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:        pgtype.Timestamptz{Time: b.End, Valid: true},
		TotalAmount:    b.TotalAmount,
		Status:         b.Status.String(),
		PaymentStatus:  b.PaymentStatus.String(),
		PaymentOrderID: b.PaymentOrderID,
		PaymentID:      paymentID,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       "Taro Yamada",
		UserEmail:      "taro@example.com",
		SpotID:         b.SpotID,
		SpotTitle:      "Shibuya Station Parking",
		SpotAddress:    "1-1 Dogenzaka, Shibuya, Tokyo",
		SpotOwnerID:    b.OwnerID,
		SpotTimeZone:   "UTC",
		TotalSlots:     int32(b.TotalSlots),
		StartTime:      b.Start,
		EndTime:        b.End,
		TotalAmount:    b.TotalAmount,
		Status:         b.Status.String(),
		PaymentStatus:  b.PaymentStatus.String(),
		PaymentOrderID: b.PaymentOrderID,
		PaymentID:      b.PaymentID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		SpotID:        b.SpotID,
		SpotTitle:     "Shibuya Station Parking",
		TotalSlots:    int32(b.TotalSlots),
		StartTime:     b.Start,
		EndTime:       b.End,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpotID:     b.SpotID,
		StartTime:  b.Start,
		EndTime:    b.End,
		TotalSlots: b.TotalSlots,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithSpotID(spotID uuid.UUID) *BookingBuilder {
	b.SpotID = spotID
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithSlots(n int) *BookingBuilder {
	b.TotalSlots = n
	return b
}

func (b *BookingBuilder) AsPaid(paymentID string) *BookingBuilder {
	b.PaymentStatus = booking.PaymentPaid
	b.PaymentID = &paymentID
	return b
}

func (b *BookingBuilder) AsCheckedIn() *BookingBuilder {
	b.AsPaid("pay_test_0001")
	b.Status = booking.StatusCheckedIn
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.AsPaid("pay_test_0001")
	b.Status = booking.StatusCompleted
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
