package components

import (
	"parkspot/internal/handler"
	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewSpotHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewSearchHistoryHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth          *api.AuthHandler
	User          *api.UserHandler
	Spot          *api.SpotHandler
	Booking       *api.BookingHandler
	Review        *api.ReviewHandler
	SearchHistory *api.SearchHistoryHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:          p.Auth,
		User:          p.User,
		Spot:          p.Spot,
		Booking:       p.Booking,
		Review:        p.Review,
		SearchHistory: p.SearchHistory,
	}
}
