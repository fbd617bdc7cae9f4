package bootstrap

import (
	"parkspot/cmd/bootstrap/components"
	"parkspot/internal/pkg/clock"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

// Module wires the HTTP API. WorkerModule is added separately by main.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	DBModule,
	CacheModule,
	JWTModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
