package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	User          *api.UserHandler
	Spot          *api.SpotHandler
	Booking       *api.BookingHandler
	Review        *api.ReviewHandler
	SearchHistory *api.SearchHistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireOwner := authMiddleware.RequireRole(user.RoleOwner)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodPatch, Path: "/me", Handler: h.User.UpdateMe},
			})
		}

		spots := apiGroup.Group("/spots")
		{
			addRoutes(spots, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Spot.Search, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Spot.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListBySpot},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: h.Review.SpotRatingStats},
			})

			spotsAuth := spots.Group("")
			spotsAuth.Use(requireAuth)
			addRoutes(spotsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Spot.Create, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Spot.ListMine, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Spot.Update, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Spot.Delete, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Spot.ListBookings, Mw: []gin.HandlerFunc{requireOwner}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: h.Booking.Quote},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/payment/confirm", Handler: h.Booking.ConfirmPayment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: []gin.HandlerFunc{requireOwner}},
				{Method: http.MethodPost, Path: "/:id/receipt", Handler: h.Booking.SendReceipt},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			})

			reviewsAuth := reviews.Group("")
			reviewsAuth.Use(requireAuth)
			addRoutes(reviewsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
				{Method: http.MethodPut, Path: "/:id/reply", Handler: h.Review.Reply, Mw: []gin.HandlerFunc{requireOwner}},
			})
		}

		searches := apiGroup.Group("/searches")
		searches.Use(requireAuth)
		{
			addRoutes(searches, []route{
				{Method: http.MethodGet, Path: "/recent", Handler: h.SearchHistory.List},
				{Method: http.MethodDelete, Path: "/recent", Handler: h.SearchHistory.Clear},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
