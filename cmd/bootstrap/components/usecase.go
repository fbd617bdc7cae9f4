package components

import (
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/password"
	"parkspot/internal/usecase"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		func() *password.Hasher {
			return password.NewHasher(password.DefaultCost)
		},
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.SpotCommands {
			return commands.NewSpotCommands(uow, clk, cfg.Booking.DefaultTimeZone)
		},
		func(uow shared.UnitOfWork, bookings queries.BookingQueries, gateway commands.PaymentGateway, clk clock.Clock, cfg config.Config) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, bookings, gateway, clk, cfg.Booking.IdempotencyTTL)
		},
		commands.NewReviewUseCase,
		commands.NewSearchHistoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSpotQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewSearchHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
