package bootstrap

import (
	"context"
	"log/slog"

	"parkspot/internal/infra/broker"
	"parkspot/internal/infra/worker"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/shared"

	"go.uber.org/fx"
)

// WorkerModule relays committed notification jobs to RabbitMQ.
// It is kept out of Module so tests can boot the HTTP stack without a broker.
var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewBrokerPublisher,
		fx.Annotate(
			func(p *broker.Publisher) *broker.Publisher { return p },
			fx.As(new(worker.EventPublisher)),
		),
		NewOutboxRelay,
	),
	fx.Invoke(startOutboxRelay),
)

func NewBrokerPublisher(lc fx.Lifecycle, cfg config.Config) (*broker.Publisher, error) {
	p, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher worker.EventPublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, publisher, clk, cfg.Outbox, logger)
}

func startOutboxRelay(lc fx.Lifecycle, relay *worker.OutboxRelay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
