package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/infra/metrics"
	"parkspot/internal/infra/payment"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound        = errs.New("booking not found")
	ErrBookingNotOwned        = errs.New("booking not owned by user")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrPaymentOrderMismatch   = errs.New("payment order does not belong to booking")
	ErrPaymentRefunding       = errs.New("payment verification failed, refund initiated")
	ErrReceiptUnavailable     = errs.New("receipt is only available for paid bookings")
)

const createBookingEndpoint = "POST /api/bookings"

// Outbox job kinds and routing key prefixes
const (
	JobBookingCreated    = "booking_created"
	JobPaymentConfirmed  = "payment_confirmed"
	JobPaymentRefund     = "payment_refund"
	JobBookingCancelled  = "booking_cancelled"
	JobBookingCheckedIn  = "booking_checked_in"
	JobBookingCompleted  = "booking_completed"
	JobReceiptEmail      = "receipt_email"
	bookingTopicPrefix   = "booking."
	paymentTopicPrefix   = "payment."
	receiptTopic         = "receipt.email"
)

const (
	paymentResultOK      = "verified"
	paymentResultFailure = "rejected"
)

type QuoteInput struct {
	SpotID uuid.UUID
	Start  time.Time
	End    time.Time
	Slots  int
}

type Quote struct {
	SpotID        uuid.UUID
	Start         time.Time
	End           time.Time
	Slots         int
	BillableHours int64
	HourlyRate    decimal.Decimal
	TotalAmount   decimal.Decimal
}

type CreateBookingInput struct {
	SpotID uuid.UUID `json:"spot_id"`
	Start  time.Time `json:"start_time"`
	End    time.Time `json:"end_time"`
	Slots  int       `json:"total_slots"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	Order      payment.Order
	IsReplayed bool
}

type ConfirmPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type BookingCommands interface {
	Quote(ctx context.Context, in QuoteInput) (*Quote, error)
	Create(ctx context.Context, userID, idempotencyKey uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	ConfirmPayment(ctx context.Context, actorID, bookingID uuid.UUID, in ConfirmPaymentInput) (*queries.BookingView, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error)
	CheckIn(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error)
	Complete(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error)
	SendReceipt(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	gateway        PaymentGateway
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	gateway PaymentGateway,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) BookingCommands {
	if idempotencyTTL <= 0 {
		idempotencyTTL = 24 * time.Hour
	}
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		gateway:        gateway,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

// Quote validates the window and prices it without writing anything.
func (uc *bookingUseCaseImpl) Quote(ctx context.Context, in QuoteInput) (*Quote, error) {
	if in.Slots <= 0 {
		slog.Warn("スロット数が不正なため見積もりを中断します", "spot_id", in.SpotID, "slots", in.Slots)
		return nil, booking.ErrInvalidSlots
	}

	s, err := uc.uow.CommandReads().SpotByID(ctx, in.SpotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	req := booking.Request{Start: in.Start, End: in.End, Slots: in.Slots}
	if err := booking.ValidateRequest(s.Schedule(), s.AvailableSlots(), req, uc.clock.Now()); err != nil {
		return nil, err
	}

	hours, err := booking.BillableHours(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	amount, err := booking.CalculateAmount(in.Start, in.End, in.Slots, s.HourlyRate().Decimal())
	if err != nil {
		return nil, err
	}

	return &Quote{
		SpotID:        s.ID(),
		Start:         in.Start,
		End:           in.End,
		Slots:         in.Slots,
		BillableHours: hours,
		HourlyRate:    s.HourlyRate().Decimal(),
		TotalAmount:   amount,
	}, nil
}

// Create reserves slots, inserts the booking, opens a payment order and enqueues the
// notification in one transaction guarded by the idempotency key.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, userID, idempotencyKey uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	if in.Slots <= 0 {
		slog.Warn("スロット数が不正なため予約を中断します", "spot_id", in.SpotID, "slots", in.Slots)
		return nil, booking.ErrInvalidSlots
	}

	requestHash := calculateRequestHash(in)
	var (
		bookingID uuid.UUID
		order     payment.Order
		replayed  bool
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		replayed = false

		existing, err := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, userID, requestHash, now)
		if err != nil {
			return err
		}
		if existing != nil {
			bookingID = *existing
			replayed = true
			return nil
		}

		s, err := tx.Spots().FindByIDForUpdate(ctx, tx.DB(), in.SpotID)
		if err != nil {
			return err
		}

		req := booking.Request{Start: in.Start, End: in.End, Slots: in.Slots}
		if err := booking.ValidateRequest(s.Schedule(), s.AvailableSlots(), req, now); err != nil {
			return err
		}
		amount, err := booking.CalculateAmount(req.Start, req.End, req.Slots, s.HourlyRate().Decimal())
		if err != nil {
			return err
		}
		b, err := booking.NewBooking(userID, s.ID(), req, amount, now)
		if err != nil {
			return err
		}

		order, err = uc.gateway.CreateOrder(b.ID(), amount)
		if err != nil {
			return err
		}
		b.AttachPaymentOrder(order.ID, now)

		if err := tx.Spots().ReserveSlots(ctx, tx.DB(), s.ID(), req.Slots, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrSlotsUnavailable
			}
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := enqueueBookingJob(ctx, tx, JobBookingCreated, bookingTopicPrefix+"created", b, now); err != nil {
			return err
		}
		if err := tx.Idempotency().Complete(ctx, tx.DB(), idempotencyKey, userID, calculateIDHash(b.ID()), b.ID()); err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}

		bookingID = b.ID()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	// Read-after-write for the joined view
	view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if replayed {
		order = uc.gateway.OrderOf(view.PaymentOrderID, view.TotalAmount)
		slog.Info("冪等キーにより既存の予約を返します", "booking_id", bookingID, "user_id", userID)
	} else {
		metrics.IncBookingCreated()
		slog.Info("予約を作成しました", "booking_id", bookingID, "user_id", userID, "spot_id", in.SpotID)
	}

	return &CreateBookingResult{Booking: view, Order: order, IsReplayed: replayed}, nil
}

// claimIdempotencyKey returns the booking of a completed earlier request, or nil when
// this request now owns the key.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.Expired(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

// ConfirmPayment settles the payment when the gateway signature verifies. A bad
// signature cancels the booking, releases its slots and flags the payment for refund;
// those writes are committed before ErrPaymentRefunding is returned.
func (uc *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, actorID, bookingID uuid.UUID, in ConfirmPaymentInput) (*queries.BookingView, error) {
	refunded := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		refunded = false

		b, err := tx.Bookings().FindByPaymentOrderIDForUpdate(ctx, tx.DB(), in.OrderID)
		if err != nil {
			return err
		}
		if b.ID() != bookingID {
			return ErrPaymentOrderMismatch
		}
		if !b.IsOwnedBy(actorID) {
			return ErrBookingNotOwned
		}

		if uc.gateway.Verify(in.OrderID, in.PaymentID, in.Signature) {
			if err := b.MarkPaid(in.PaymentID, now); err != nil {
				return err
			}
			if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
				return err
			}
			return enqueueBookingJob(ctx, tx, JobPaymentConfirmed, paymentTopicPrefix+"confirmed", b, now)
		}

		slog.Warn("決済署名の検証に失敗したため返金処理を開始します",
			"booking_id", b.ID(),
			"order_id", in.OrderID,
			"payment_id", in.PaymentID)
		if err := b.MarkPaymentFailed(in.PaymentID, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Spots().ReleaseSlots(ctx, tx.DB(), b.SpotID(), b.TotalSlots(), now); err != nil {
			return err
		}
		if err := enqueueBookingJob(ctx, tx, JobPaymentRefund, paymentTopicPrefix+"refund", b, now); err != nil {
			return err
		}
		refunded = true
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	if refunded {
		metrics.IncPaymentConfirmation(paymentResultFailure)
		metrics.IncBookingStatus(booking.StatusCancelled.String())
		return nil, ErrPaymentRefunding
	}
	metrics.IncPaymentConfirmation(paymentResultOK)
	return uc.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !b.IsOwnedBy(actorID) && !isAdminRole(actorRole) {
			return ErrBookingNotOwned
		}
		if err := b.Cancel(now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Spots().ReleaseSlots(ctx, tx.DB(), b.SpotID(), b.TotalSlots(), now); err != nil {
			return err
		}
		return enqueueBookingJob(ctx, tx, JobBookingCancelled, bookingTopicPrefix+"cancelled", b, now)
	})
}

func (uc *bookingUseCaseImpl) CheckIn(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if err := requireSpotManager(ctx, tx, b.SpotID(), actorID, actorRole); err != nil {
			return err
		}
		if err := b.CheckIn(now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		return enqueueBookingJob(ctx, tx, JobBookingCheckedIn, bookingTopicPrefix+"checked_in", b, now)
	})
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if err := requireSpotManager(ctx, tx, b.SpotID(), actorID, actorRole); err != nil {
			return err
		}
		if err := b.Complete(now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Spots().ReleaseSlots(ctx, tx.DB(), b.SpotID(), b.TotalSlots(), now); err != nil {
			return err
		}
		return enqueueBookingJob(ctx, tx, JobBookingCompleted, bookingTopicPrefix+"completed", b, now)
	})
}

// SendReceipt only enqueues the job; rendering and mailing happen downstream.
func (uc *bookingUseCaseImpl) SendReceipt(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if !b.IsOwnedBy(actorID) && !isAdminRole(actorRole) {
			return ErrBookingNotOwned
		}
		if b.PaymentStatus() != booking.PaymentPaid {
			return ErrReceiptUnavailable
		}
		return enqueueBookingJob(ctx, tx, JobReceiptEmail, receiptTopic, b, uc.clock.Now())
	})
	return mapBookingErr(err)
}

type transitionFunc func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error

func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID uuid.UUID, fn transitionFunc) (*queries.BookingView, error) {
	var status booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx, b, uc.clock.Now()); err != nil {
			return err
		}
		status = b.Status()
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	metrics.IncBookingStatus(status.String())
	slog.Info("予約ステータスを更新しました", "booking_id", bookingID, "status", status.String())
	return uc.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func requireSpotManager(ctx context.Context, tx shared.Tx, spotID, actorID uuid.UUID, actorRole string) error {
	if isAdminRole(actorRole) {
		return nil
	}
	s, err := tx.Reads().SpotByID(ctx, spotID)
	if err != nil {
		return err
	}
	if !s.IsOwnedBy(actorID) {
		return ErrSpotNotOwned
	}
	return nil
}

type bookingJobPayload struct {
	BookingID      uuid.UUID       `json:"booking_id"`
	UserID         uuid.UUID       `json:"user_id"`
	SpotID         uuid.UUID       `json:"spot_id"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"payment_status"`
	PaymentOrderID string          `json:"payment_order_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

func enqueueBookingJob(ctx context.Context, tx shared.Tx, kind, topic string, b *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(bookingJobPayload{
		BookingID:      b.ID(),
		UserID:         b.UserID(),
		SpotID:         b.SpotID(),
		Status:         b.Status().String(),
		PaymentStatus:  b.PaymentStatus().String(),
		PaymentOrderID: b.PaymentOrderID(),
		TotalAmount:    b.TotalAmount(),
		StartTime:      b.Start(),
		EndTime:        b.End(),
		OccurredAt:     now,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, now)
}

func mapBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBookingNotFound
	}
	return err
}

func isAdminRole(role string) bool {
	return user.Role(role) == user.RoleAdmin
}

func calculateRequestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
