package converter

import (
	"parkspot/internal/domain/booking"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:             b.ID(),
		UserID:         b.UserID(),
		SpotID:         b.SpotID(),
		TotalSlots:     pgconv.IntToInt32(b.TotalSlots()),
		StartTime:      pgconv.TimeToPgtype(b.Start()),
		EndTime:        pgconv.TimeToPgtype(b.End()),
		TotalAmount:    b.TotalAmount(),
		Status:         b.Status().String(),
		PaymentStatus:  b.PaymentStatus().String(),
		PaymentOrderID: b.PaymentOrderID(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToStateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		PaymentID:     pgconv.StringPtrToPgtype(b.PaymentID()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := booking.NewPaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID, row.UserID, row.SpotID,
		int(row.TotalSlots),
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		row.TotalAmount,
		status,
		paymentStatus,
		row.PaymentOrderID,
		pgconv.StringPtrFromPgtype(row.PaymentID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
