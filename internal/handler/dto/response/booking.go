package response

import (
	"parkspot/internal/infra/payment"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	SpotID         string  `json:"spot_id"`
	SpotTitle      string  `json:"spot_title"`
	SpotAddress    string  `json:"spot_address"`
	SpotTimeZone   string  `json:"spot_time_zone"`
	TotalSlots     int32   `json:"total_slots"`
	StartTime      int64   `json:"start_time"`
	EndTime        int64   `json:"end_time"`
	TotalAmount    string  `json:"total_amount"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentOrderID string  `json:"payment_order_id"`
	PaymentID      *string `json:"payment_id,omitempty"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type BookingListItemResponse struct {
	ID            string `json:"id"`
	SpotID        string `json:"spot_id"`
	SpotTitle     string `json:"spot_title"`
	TotalSlots    int32  `json:"total_slots"`
	StartTime     int64  `json:"start_time"`
	EndTime       int64  `json:"end_time"`
	TotalAmount   string `json:"total_amount"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     int64  `json:"created_at"`
}

func FromBookingList(items []*queries.BookingListItem) ([]*BookingListItemResponse, error) {
	res := make([]*BookingListItemResponse, 0, len(items))
	if err := copyInto(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type PaymentOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

func FromPaymentOrder(o payment.Order) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:  o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
		KeyID:    o.KeyID,
	}
}

type CreateBookingResponse struct {
	Booking *BookingResponse     `json:"booking"`
	Payment PaymentOrderResponse `json:"payment"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) (*CreateBookingResponse, error) {
	b, err := FromBookingView(r.Booking)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResponse{Booking: b, Payment: FromPaymentOrder(r.Order)}, nil
}

type QuoteResponse struct {
	SpotID        string `json:"spot_id"`
	StartTime     int64  `json:"start_time"`
	EndTime       int64  `json:"end_time"`
	TotalSlots    int    `json:"total_slots"`
	BillableHours int64  `json:"billable_hours"`
	HourlyRate    string `json:"hourly_rate"`
	TotalAmount   string `json:"total_amount"`
}

func FromQuote(q *commands.Quote) *QuoteResponse {
	return &QuoteResponse{
		SpotID:        q.SpotID.String(),
		StartTime:     q.Start.Unix(),
		EndTime:       q.End.Unix(),
		TotalSlots:    q.Slots,
		BillableHours: q.BillableHours,
		HourlyRate:    q.HourlyRate.StringFixed(2),
		TotalAmount:   q.TotalAmount.StringFixed(2),
	}
}
