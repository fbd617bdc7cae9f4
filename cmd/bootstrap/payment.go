package bootstrap

import (
	"parkspot/internal/infra/payment"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *payment.Gateway {
				return payment.NewGateway(cfg.Payment)
			},
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
