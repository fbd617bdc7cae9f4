package worker

import (
	"context"
	"log/slog"
	"math"
	"time"

	"parkspot/internal/infra/metrics"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/shared"
)

const (
	baseRetryDelay = 2 * time.Second
	maxRetryDelay  = 5 * time.Minute
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

// OutboxRelay moves committed notification jobs to the broker.
// Delivery is at-least-once; consumers deduplicate on the message id.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *OutboxRelay {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run polls until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	r.logger.Info("アウトボックスリレーを開始します", "interval", r.cfg.PollInterval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("アウトボックスリレーを停止します")
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("アウトボックスの送信に失敗しました", "error", err.Error())
			}
		}
	}
}

// RelayOnce publishes one batch of due jobs and returns how many were sent.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return err
				}
				metrics.IncOutboxPublished(job.Kind, "sent")
				sent++
				continue
			}

			r.logger.Warn("通知ジョブの送信に失敗しました",
				"job_id", job.ID,
				"kind", job.Kind,
				"attempts", job.Attempts+1,
				"error", pubErr.Error())
			next := now.Add(RetryDelay(job.Attempts))
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), r.cfg.MaxAttempts, next, now); err != nil {
				return err
			}
			metrics.IncOutboxPublished(job.Kind, "failed")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

// RetryDelay doubles per attempt and is capped.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	d := time.Duration(float64(baseRetryDelay) * math.Pow(2, float64(attempts)))
	if d <= 0 || d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
