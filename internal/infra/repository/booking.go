package repository

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra"
	"parkspot/internal/infra/repository/converter"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByPaymentOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, paymentOrderID string) (sqlc.Bookings, error)
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) FindByPaymentOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, orderID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentOrderIDForUpdate(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for payment order", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking by payment order", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) UpdateState(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingState(ctx, tx, converter.BookingToStateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func toBooking(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct booking", err)
	}
	return b, nil
}
