//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/infra/payment"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"
	commandsmock "parkspot/tests/mock/commands"
	queriesmock "parkspot/tests/mock/queries"
	sharedmock "parkspot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 2025-03-03 is a Monday
var testNow = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	spots    *sharedmock.MockSpotRepository
	bookings *sharedmock.MockBookingRepository
	idem     *sharedmock.MockIdempotencyRepository
	notifs   *sharedmock.MockNotificationRepository
	queries  *queriesmock.MockBookingQueries
	gateway  *commandsmock.MockPaymentGateway
	uc       commands.BookingCommands

	userID uuid.UUID
	key    uuid.UUID
	spot   *spot.Spot
	input  commands.CreateBookingInput
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.spots = sharedmock.NewMockSpotRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.idem = sharedmock.NewMockIdempotencyRepository(s.ctrl)
	s.notifs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.queries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	s.uc = commands.NewBookingUseCase(s.uow, s.queries, s.gateway, clock.NewFixedClock(testNow), time.Hour)

	s.userID = uuid.New()
	s.key = uuid.New()
	var err error
	s.spot, err = builder.NewSpotBuilder().WithSlots(3, 3).BuildDomain()
	s.Require().NoError(err)

	start := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	s.input = commands.CreateBookingInput{SpotID: s.spot.ID(), Start: start, End: start.Add(2 * time.Hour), Slots: 2}

	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Spots().Return(s.spots).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Idempotency().Return(s.idem).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifs).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BookingCommandsTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// ================================================================================
// Quote
// ================================================================================

func (s *BookingCommandsTestSuite) TestQuote() {
	s.Run("success: two slots for two hours", func() {
		s.reads.EXPECT().SpotByID(gomock.Any(), s.spot.ID()).Return(s.spot, nil)

		q, err := s.uc.Quote(context.Background(), commands.QuoteInput{
			SpotID: s.spot.ID(), Start: s.input.Start, End: s.input.End, Slots: 2,
		})
		s.Require().NoError(err)
		s.Equal(int64(2), q.BillableHours)
		s.True(decimal.NewFromInt(1200).Equal(q.TotalAmount), q.TotalAmount.String())
	})

	s.Run("success: partial hour rounds up", func() {
		s.reads.EXPECT().SpotByID(gomock.Any(), s.spot.ID()).Return(s.spot, nil)

		q, err := s.uc.Quote(context.Background(), commands.QuoteInput{
			SpotID: s.spot.ID(), Start: s.input.Start, End: s.input.Start.Add(61 * time.Minute), Slots: 1,
		})
		s.Require().NoError(err)
		s.Equal(int64(2), q.BillableHours)
		s.True(decimal.NewFromInt(600).Equal(q.TotalAmount))
	})

	s.Run("error: zero slots never reaches storage", func() {
		_, err := s.uc.Quote(context.Background(), commands.QuoteInput{SpotID: s.spot.ID(), Start: s.input.Start, End: s.input.End})
		s.ErrorIs(err, booking.ErrInvalidSlots)
	})

	s.Run("error: unknown spot", func() {
		s.reads.EXPECT().SpotByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := s.uc.Quote(context.Background(), commands.QuoteInput{SpotID: uuid.New(), Start: s.input.Start, End: s.input.End, Slots: 1})
		s.ErrorIs(err, commands.ErrSpotNotFound)
	})

	s.Run("error: more slots than available", func() {
		s.reads.EXPECT().SpotByID(gomock.Any(), s.spot.ID()).Return(s.spot, nil)

		_, err := s.uc.Quote(context.Background(), commands.QuoteInput{SpotID: s.spot.ID(), Start: s.input.Start, End: s.input.End, Slots: 4})
		s.ErrorIs(err, booking.ErrSlotsUnavailable)
	})

	s.Run("error: window in the past", func() {
		s.reads.EXPECT().SpotByID(gomock.Any(), s.spot.ID()).Return(s.spot, nil)

		past := testNow.Add(-3 * time.Hour)
		_, err := s.uc.Quote(context.Background(), commands.QuoteInput{SpotID: s.spot.ID(), Start: past, End: past.Add(time.Hour), Slots: 1})
		s.ErrorIs(err, booking.ErrStartInPast)
	})
}

// ================================================================================
// Create
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("success: reserves, persists and enqueues in one transaction", func() {
		s.expectTx()
		order := payment.Order{ID: "order_abc", Amount: 120000, Currency: "JPY"}
		var created *booking.Booking

		gomock.InOrder(
			s.idem.EXPECT().TryInsert(gomock.Any(), nil, s.key, s.userID, "POST /api/bookings", gomock.Any(), testNow.Add(time.Hour)).Return(true, nil),
			s.spots.EXPECT().FindByIDForUpdate(gomock.Any(), nil, s.spot.ID()).Return(s.spot, nil),
			s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ uuid.UUID, amount decimal.Decimal) (payment.Order, error) {
					s.True(decimal.NewFromInt(1200).Equal(amount))
					return order, nil
				}),
			s.spots.EXPECT().ReserveSlots(gomock.Any(), nil, s.spot.ID(), 2, testNow).Return(nil),
			s.bookings.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
					created = b
					return nil
				}),
			s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobBookingCreated, "booking.created", gomock.Any(), testNow).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, payload []byte, _ time.Time) error {
					var body map[string]any
					s.Require().NoError(json.Unmarshal(payload, &body))
					s.Equal("Pending", body["status"])
					s.Equal("order_abc", body["payment_order_id"])
					return nil
				}),
			s.idem.EXPECT().Complete(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any()).Return(nil),
		)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				s.Equal(created.ID(), id)
				return builder.NewBookingBuilder().BuildView(), nil
			})

		res, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.Equal(order, res.Order)
		s.Equal("order_abc", created.PaymentOrderID())
		s.Equal(booking.StatusPending, created.Status())
		s.Equal(booking.PaymentCreated, created.PaymentStatus())
	})

	s.Run("success: completed key replays the earlier booking", func() {
		s.expectTx()
		existingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		view.ID = existingID

		s.idem.EXPECT().TryInsert(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
			Key:             s.key,
			UserID:          s.userID,
			Status:          shared.IdempotencyStatusCompleted,
			RequestHash:     requestHash(s.T(), s.input),
			ResultBookingID: &existingID,
			ExpiresAt:       testNow.Add(time.Minute),
		}, nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), existingID).Return(view, nil)
		s.gateway.EXPECT().OrderOf(view.PaymentOrderID, view.TotalAmount).Return(payment.Order{ID: view.PaymentOrderID})

		res, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.Require().NoError(err)
		s.True(res.IsReplayed)
		s.Equal(existingID, res.Booking.ID)
		s.Equal(view.PaymentOrderID, res.Order.ID)
	})

	s.Run("error: same key with a different body", func() {
		s.expectTx()
		s.idem.EXPECT().TryInsert(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "something-else",
			ExpiresAt:   testNow.Add(time.Minute),
		}, nil)

		_, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
	})

	s.Run("error: first request still processing", func() {
		s.expectTx()
		s.idem.EXPECT().TryInsert(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: requestHash(s.T(), s.input),
			ExpiresAt:   testNow.Add(time.Minute),
		}, nil)

		_, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("error: expired key already reclaimed by another request", func() {
		s.expectTx()
		s.idem.EXPECT().TryInsert(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
			Status:    shared.IdempotencyStatusProcessing,
			ExpiresAt: testNow.Add(-time.Minute),
		}, nil)
		s.idem.EXPECT().ClaimExpired(gomock.Any(), nil, s.key, s.userID, gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("error: slots taken between read and reserve", func() {
		s.expectTx()
		s.idem.EXPECT().TryInsert(gomock.Any(), nil, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.spots.EXPECT().FindByIDForUpdate(gomock.Any(), nil, s.spot.ID()).Return(s.spot, nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(payment.Order{ID: "order_x"}, nil)
		s.spots.EXPECT().ReserveSlots(gomock.Any(), nil, s.spot.ID(), 2, testNow).
			Return(infra.WrapRepoErr("reserve", nil, infra.KindConflict))

		_, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.ErrorIs(err, booking.ErrSlotsUnavailable)
	})

	s.Run("error: spot missing", func() {
		s.expectTx()
		s.idem.EXPECT().TryInsert(gomock.Any(), nil, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.spots.EXPECT().FindByIDForUpdate(gomock.Any(), nil, s.spot.ID()).Return(nil, notFound())

		_, err := s.uc.Create(context.Background(), s.userID, s.key, s.input)
		s.ErrorIs(err, commands.ErrSpotNotFound)
	})

	s.Run("error: zero slots", func() {
		in := s.input
		in.Slots = 0
		_, err := s.uc.Create(context.Background(), s.userID, s.key, in)
		s.ErrorIs(err, booking.ErrInvalidSlots)
	})
}

func requestHash(t *testing.T, in commands.CreateBookingInput) string {
	t.Helper()
	return commands.RequestHash(in)
}

// ================================================================================
// ConfirmPayment
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirmPayment() {
	in := commands.ConfirmPaymentInput{OrderID: "order_test_0001", PaymentID: "pay_1", Signature: "sig"}

	s.Run("success: verified signature marks the booking paid", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain()

		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)
		s.gateway.EXPECT().Verify(in.OrderID, in.PaymentID, in.Signature).Return(true)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobPaymentConfirmed, "payment.confirmed", gomock.Any(), testNow).Return(nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(builder.NewBookingBuilder().AsPaid("pay_1").BuildView(), nil)

		view, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.Require().NoError(err)
		s.Equal("paid", view.PaymentStatus)
		s.Equal(booking.PaymentPaid, b.PaymentStatus())
		s.Equal("pay_1", *b.PaymentID())
	})

	s.Run("error: bad signature cancels and refunds before reporting", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).WithSlots(2).BuildDomain()

		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)
		s.gateway.EXPECT().Verify(in.OrderID, in.PaymentID, in.Signature).Return(false)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.spots.EXPECT().ReleaseSlots(gomock.Any(), nil, b.SpotID(), 2, testNow).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobPaymentRefund, "payment.refund", gomock.Any(), testNow).Return(nil)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.ErrorIs(err, commands.ErrPaymentRefunding)
		s.Equal(booking.StatusCancelled, b.Status())
		s.Equal(booking.PaymentRefundPending, b.PaymentStatus())
	})

	s.Run("error: bad signature on a cancelled booking leaves slots alone", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).WithSlots(2).AsCancelled().BuildDomain()

		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)
		s.gateway.EXPECT().Verify(in.OrderID, in.PaymentID, in.Signature).Return(false)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.ErrorIs(err, booking.ErrInvalidTransition)
		s.Equal(booking.StatusCancelled, b.Status())
		s.Equal(booking.PaymentCreated, b.PaymentStatus())
	})

	s.Run("error: bad signature on a checked-in booking is rejected", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).WithSlots(2).AsCheckedIn().BuildDomain()

		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)
		s.gateway.EXPECT().Verify(in.OrderID, in.PaymentID, in.Signature).Return(false)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.ErrorIs(err, booking.ErrInvalidTransition)
		s.Equal(booking.StatusCheckedIn, b.Status())
		s.Equal(booking.PaymentPaid, b.PaymentStatus())
	})

	s.Run("error: order belongs to another booking", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain()
		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, uuid.New(), in)
		s.ErrorIs(err, commands.ErrPaymentOrderMismatch)
	})

	s.Run("error: someone else's booking", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.ErrorIs(err, commands.ErrBookingNotOwned)
	})

	s.Run("error: payment already final", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).AsPaid("pay_0").BuildDomain()
		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(b, nil)
		s.gateway.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, b.ID(), in)
		s.ErrorIs(err, booking.ErrPaymentAlreadyFinal)
	})

	s.Run("error: unknown order", func() {
		s.expectTx()
		s.bookings.EXPECT().FindByPaymentOrderIDForUpdate(gomock.Any(), nil, in.OrderID).Return(nil, notFound())

		_, err := s.uc.ConfirmPayment(context.Background(), s.userID, uuid.New(), in)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}

// ================================================================================
// Transitions
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("success: paid booking moves to refund pending and frees slots", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).WithSlots(2).AsPaid("pay_1").BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.spots.EXPECT().ReleaseSlots(gomock.Any(), nil, b.SpotID(), 2, testNow).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobBookingCancelled, "booking.cancelled", gomock.Any(), testNow).Return(nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(builder.NewBookingBuilder().AsCancelled().BuildView(), nil)

		_, err := s.uc.Cancel(context.Background(), s.userID, "user", b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, b.Status())
		s.Equal(booking.PaymentRefundPending, b.PaymentStatus())
	})

	s.Run("success: admin may cancel any booking", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.spots.EXPECT().ReleaseSlots(gomock.Any(), nil, b.SpotID(), 1, testNow).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobBookingCancelled, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(builder.NewBookingBuilder().BuildView(), nil)

		_, err := s.uc.Cancel(context.Background(), uuid.New(), "admin", b.ID())
		s.Require().NoError(err)
	})

	s.Run("error: already cancelled", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).AsCancelled().BuildDomain()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)

		_, err := s.uc.Cancel(context.Background(), s.userID, "user", b.ID())
		s.ErrorIs(err, booking.ErrInvalidTransition)
	})

	s.Run("error: stranger", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)

		_, err := s.uc.Cancel(context.Background(), s.userID, "owner", b.ID())
		s.ErrorIs(err, commands.ErrBookingNotOwned)
	})
}

func (s *BookingCommandsTestSuite) TestCheckInAndComplete() {
	ownerID := uuid.New()
	ownedSpot, err := builder.NewSpotBuilder().WithOwnerID(ownerID).BuildDomain()
	s.Require().NoError(err)

	s.Run("success: owner checks in a paid booking", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithSpotID(ownedSpot.ID()).AsPaid("pay_1").BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.reads.EXPECT().SpotByID(gomock.Any(), ownedSpot.ID()).Return(ownedSpot, nil)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobBookingCheckedIn, "booking.checked_in", gomock.Any(), testNow).Return(nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(builder.NewBookingBuilder().AsCheckedIn().BuildView(), nil)

		_, err := s.uc.CheckIn(context.Background(), ownerID, "owner", b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCheckedIn, b.Status())
	})

	s.Run("error: unpaid booking cannot check in", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithSpotID(ownedSpot.ID()).BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.reads.EXPECT().SpotByID(gomock.Any(), ownedSpot.ID()).Return(ownedSpot, nil)

		_, err := s.uc.CheckIn(context.Background(), ownerID, "owner", b.ID())
		s.ErrorIs(err, booking.ErrPaymentNotSettled)
	})

	s.Run("error: another owner", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithSpotID(ownedSpot.ID()).AsPaid("pay_1").BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.reads.EXPECT().SpotByID(gomock.Any(), ownedSpot.ID()).Return(ownedSpot, nil)

		_, err := s.uc.CheckIn(context.Background(), uuid.New(), "owner", b.ID())
		s.ErrorIs(err, commands.ErrSpotNotOwned)
	})

	s.Run("success: complete releases slots", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithSpotID(ownedSpot.ID()).WithSlots(3).AsCheckedIn().BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.reads.EXPECT().SpotByID(gomock.Any(), ownedSpot.ID()).Return(ownedSpot, nil)
		s.bookings.EXPECT().UpdateState(gomock.Any(), nil, b).Return(nil)
		s.spots.EXPECT().ReleaseSlots(gomock.Any(), nil, ownedSpot.ID(), 3, testNow).Return(nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobBookingCompleted, "booking.completed", gomock.Any(), testNow).Return(nil)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(builder.NewBookingBuilder().AsCompleted().BuildView(), nil)

		_, err := s.uc.Complete(context.Background(), ownerID, "owner", b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, b.Status())
	})

	s.Run("error: complete before check-in", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithSpotID(ownedSpot.ID()).AsPaid("pay_1").BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)

		_, err := s.uc.Complete(context.Background(), uuid.New(), "admin", b.ID())
		s.ErrorIs(err, booking.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestSendReceipt() {
	s.Run("success: paid booking enqueues the email job", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).AsPaid("pay_1").BuildDomain()

		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)
		s.notifs.EXPECT().CreateJob(gomock.Any(), nil, commands.JobReceiptEmail, "receipt.email", gomock.Any(), testNow).Return(nil)

		s.NoError(s.uc.SendReceipt(context.Background(), s.userID, "user", b.ID()))
	})

	s.Run("error: unpaid", func() {
		s.expectTx()
		b := builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, b.ID()).Return(b, nil)

		s.ErrorIs(s.uc.SendReceipt(context.Background(), s.userID, "user", b.ID()), commands.ErrReceiptUnavailable)
	})

	s.Run("error: missing booking", func() {
		s.expectTx()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound())

		s.ErrorIs(s.uc.SendReceipt(context.Background(), s.userID, "user", uuid.New()), commands.ErrBookingNotFound)
	})
}
