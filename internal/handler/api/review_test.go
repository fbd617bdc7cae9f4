//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"parkspot/internal/domain/review"
	"parkspot/internal/domain/user"
	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	commandsmock "parkspot/tests/mock/commands"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// stands in for RequireAuth; X-Test-Role picks the role
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleUser
		if r := c.GetHeader("X-Test-Role"); r != "" {
			role = user.Role(r)
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", role)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reviews/:id", authMiddleware, s.handler.Delete)
	s.router.PUT("/reviews/:id/reply", authMiddleware, s.handler.Reply)
	s.router.GET("/spots/:id/reviews", s.handler.ListBySpot)
	s.router.GET("/spots/:id/rating-stats", s.handler.SpotRatingStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	b := builder.NewReviewBuilder().WithUserID(uuid.New())
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: returns 201 with the stored review", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actorID, reqBody.ToInput()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(int32(5), response.Rating)
		s.NotNil(response.Images)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"rating 0", testutil.Field("rating", 0)},
			{"rating 6", testutil.Field("rating", 6)},
			{"missing booking", testutil.Drop("booking_id")},
			{"missing description", testutil.Drop("description")},
			{"description too long", testutil.Field("description", strings.Repeat("a", 1001))},
			{"relative image", testutil.Field("images", []string{"photos/1.jpg"})},
			{"too many images", testutil.Field("images", []string{
				"https://img.example.com/1.jpg", "https://img.example.com/2.jpg", "https://img.example.com/3.jpg",
				"https://img.example.com/4.jpg", "https://img.example.com/5.jpg", "https://img.example.com/6.jpg",
			})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"booking not eligible", review.ErrBookingNotEligible, http.StatusUnprocessableEntity},
			{"duplicate review", review.ErrReviewExists, http.StatusConflict},
			{"domain validation", review.ErrInvalidImageURL, http.StatusBadRequest},
			{"internal", errors.New("db down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestGet() {
	view := builder.NewReviewBuilder().WithOwnerReply("Thanks for coming!").BuildViewQuery()

	s.Run("success: returns the review with the owner reply", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+view.ID.String(), nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.OwnerReply)
		s.Equal("Thanks for coming!", *response.OwnerReply)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	view := builder.NewReviewBuilder().BuildViewQuery()
	url := "/reviews/" + view.ID.String()

	s.Run("success: partial update with rating only", func() {
		rating := 3
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), view.ID, s.actorID, commands.UpdateReviewInput{Rating: &rating}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 3}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 when the review belongs to someone else", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), view.ID, s.actorID, gomock.Any()).Return(commands.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"description": "changed"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You do not own this review")
	})

	s.Run("error: 400 for rating out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 9}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/reviews/" + id.String()

	s.Run("success: passes the caller role through", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id, s.actorID, "admin").Return(nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, url, nil, "token",
			map[string]string{"X-Test-Role": "admin"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already gone", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id, s.actorID, "user").Return(commands.ErrReviewNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestReply() {
	view := builder.NewReviewBuilder().WithOwnerReply("See you again").BuildViewQuery()
	url := "/reviews/" + view.ID.String() + "/reply"

	s.Run("success: owner reply is stored", func() {
		s.mockCommands.EXPECT().ReplyToReview(gomock.Any(), view.ID, s.actorID, "See you again").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"reply": "See you again"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for an owner of another spot", func() {
		s.mockCommands.EXPECT().ReplyToReview(gomock.Any(), view.ID, s.actorID, gomock.Any()).Return(commands.ErrReplyNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"reply": "hello"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the spot owner can reply")
	})

	s.Run("error: 400 when reply is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ReviewHandlerTestSuite) TestListBySpot() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/reviews"
	items := []*queries.ReviewListItem{builder.NewReviewBuilder().BuildListItem()}

	s.Run("success: forwards filters, cursor and limit", func() {
		minRating, maxRating := 4, 5
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID,
			queries.ReviewFilters{MinRating: &minRating, MaxRating: &maxRating},
			&queries.Cursor{After: "abc"}, 10).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_rating=4&max_rating=5&after=abc&limit=10", nil, "")

		var response struct {
			Reviews    []resdto.ReviewListItemResponse `json:"reviews"`
			NextCursor string                          `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 1)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: omits next_cursor on the last page", func() {
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID, queries.ReviewFilters{}, nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "next_cursor")
	})

	s.Run("error: 400 for an invalid cursor", func() {
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=broken", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *ReviewHandlerTestSuite) TestSpotRatingStats() {
	b := builder.NewReviewBuilder()
	stats := b.BuildSpotRatingStats()

	s.Run("success: returns aggregated stats", func() {
		s.mockQueries.EXPECT().GetSpotRatingStats(gomock.Any(), b.SpotID).Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+b.SpotID.String()+"/rating-stats", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.EqualValues(stats.TotalReviews, response["total_reviews"])
	})
}
