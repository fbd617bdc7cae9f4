package booking

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCheckedIn Status = "Checked In"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsSlots reports whether a booking in this status still occupies capacity.
func (s Status) HoldsSlots() bool {
	return s == StatusPending || s == StatusCheckedIn
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentCreated       PaymentStatus = "created"
	PaymentPaid          PaymentStatus = "paid"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefundPending PaymentStatus = "refund_pending"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentCreated, PaymentPaid, PaymentFailed, PaymentRefundPending:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return ps, nil
}
