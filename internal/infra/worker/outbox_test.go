//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkspot/internal/infra/worker"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/shared"
	sharedmock "parkspot/tests/mock/shared"
	workermock "parkspot/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

type relayFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	notifications *sharedmock.MockNotificationRepository
	publisher     *workermock.MockEventPublisher
	relay         *worker.OutboxRelay
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		publisher:     workermock.NewMockEventPublisher(ctrl),
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	cfg := config.OutboxConfig{PollInterval: 10 * time.Millisecond, BatchSize: 10, MaxAttempts: 3}
	f.relay = worker.NewOutboxRelay(f.uow, f.publisher, clock.NewFixedClock(testNow), cfg, nil)
	return f
}

func TestOutboxRelay_RelayOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("success: all jobs published and marked sent", func(t *testing.T) {
		f := newRelayFixture(t)
		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Kind: "booking_confirmed", Topic: "booking.confirmed", Payload: []byte(`{"a":1}`)},
			{ID: uuid.New(), Kind: "receipt", Topic: "booking.receipt", Payload: []byte(`{"b":2}`)},
		}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), nil, testNow, int32(10)).Return(jobs, nil)
		for _, j := range jobs {
			f.publisher.EXPECT().Publish(gomock.Any(), j.Topic, j.ID.String(), j.Payload).Return(nil)
			f.notifications.EXPECT().MarkSent(gomock.Any(), nil, j.ID, testNow).Return(nil)
		}

		sent, err := f.relay.RelayOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("success: publish failure schedules retry with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Kind: "receipt", Topic: "booking.receipt", Attempts: 2}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), nil, testNow, int32(10)).Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.ID.String(), job.Payload).Return(errors.New("channel closed"))
		f.notifications.EXPECT().
			MarkFailed(gomock.Any(), nil, job.ID, "channel closed", int32(3), testNow.Add(8*time.Second), testNow).
			Return(nil)

		sent, err := f.relay.RelayOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("error: claim failure", func(t *testing.T) {
		f := newRelayFixture(t)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), nil, testNow, int32(10)).Return(nil, errors.New("db down"))

		sent, err := f.relay.RelayOnce(ctx)

		require.Error(t, err)
		assert.Zero(t, sent)
	})

	t.Run("error: mark sent failure rolls back the batch", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Kind: "receipt", Topic: "booking.receipt"}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), nil, testNow, int32(10)).Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifications.EXPECT().MarkSent(gomock.Any(), nil, job.ID, testNow).Return(errors.New("db down"))

		sent, err := f.relay.RelayOnce(ctx)

		require.Error(t, err)
		assert.Zero(t, sent)
	})
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempts int32
		want     time.Duration
	}{
		{attempts: -1, want: 2 * time.Second},
		{attempts: 0, want: 2 * time.Second},
		{attempts: 1, want: 4 * time.Second},
		{attempts: 3, want: 16 * time.Second},
		{attempts: 7, want: 256 * time.Second},
		{attempts: 8, want: 5 * time.Minute},
		{attempts: 20, want: 5 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, worker.RetryDelay(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestOutboxRelay_RunStopsOnCancel(t *testing.T) {
	f := newRelayFixture(t)
	f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.relay.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
