//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	"parkspot/tests/common/authtest"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/dbtest"
	"parkspot/tests/common/httptest"
	"parkspot/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL     = "/api/reviews"
	spotReviewsURL = "/api/spots/%s/reviews"
	ratingStatsURL = "/api/spots/%s/rating-stats"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

// reviewFixture is a completed booking the reviewer may review.
type reviewFixture struct {
	ownerID    uuid.UUID
	ownerToken string
	userID     uuid.UUID
	userToken  string
	spotID     uuid.UUID
	bookingID  uuid.UUID
}

func (s *ReviewSuite) setupCompletedBooking(suffix string) reviewFixture {
	t := s.T()

	ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner"+suffix+"@example.com", string(user.RoleOwner))
	userID, userToken := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer"+suffix+"@example.com", string(user.RoleUser))
	spotID := dbtest.CreateTestSpot(t, s.DB, dbtest.DefaultSpotFixture(ownerID))
	bookingID := dbtest.CreateTestBooking(t, s.DB, userID, spotID, "Completed", "paid", time.Now().Add(-48*time.Hour))

	return reviewFixture{
		ownerID:    ownerID,
		ownerToken: ownerToken,
		userID:     userID,
		userToken:  userToken,
		spotID:     spotID,
		bookingID:  bookingID,
	}
}

func (s *ReviewSuite) createReview(f reviewFixture, rating int) response.ReviewResponse {
	t := s.T()

	reqBody := builder.NewReviewBuilder().
		WithSpotID(f.spotID).
		WithBookingID(f.bookingID).
		WithRating(rating).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.ReviewResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *ReviewSuite) TestCreateReview() {
	s.Run("Normal case: User can review a completed booking", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")

		reqBody := builder.NewReviewBuilder().
			WithSpotID(f.spotID).
			WithBookingID(f.bookingID).
			WithRating(4).
			WithDescription("Wide slots, friendly owner.").
			WithImages("https://img.example.com/1.jpg").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.ReviewResponse{
			UserID:      f.userID.String(),
			UserName:    "Test User",
			SpotID:      f.spotID.String(),
			SpotTitle:   "Test Spot",
			BookingID:   f.bookingID.String(),
			Rating:      4,
			Description: "Wide slots, friendly owner.",
			Images:      []string{"https://img.example.com/1.jpg"},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Review response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Second review for the same booking conflicts", func() {
		t := s.T()
		f := s.setupCompletedBooking("2")
		s.createReview(f, 5)

		reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(f.bookingID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: Booking that is not completed is rejected", func() {
		t := s.T()
		f := s.setupCompletedBooking("3")
		pending := dbtest.CreateTestBooking(t, s.DB, f.userID, f.spotID, "Pending", "paid", time.Now().Add(24*time.Hour))

		reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(pending).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Someone else's booking is rejected", func() {
		t := s.T()
		f := s.setupCompletedBooking("4")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other4@example.com", string(user.RoleUser))

		reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(f.bookingID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, otherToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Rating out of range is rejected", func() {
		t := s.T()
		f := s.setupCompletedBooking("5")

		reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(f.bookingID).WithRating(6).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ReviewSuite) TestGetReview() {
	s.Run("Normal case: Review retrieved by ID without auth", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")
		created := s.createReview(f, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, created.ID, actual.ID)
	})

	s.Run("Error case: Returns 404 Not Found for non-existent ID", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewSuite) TestUpdateReview() {
	s.Run("Normal case: Partial update keeps other fields", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")
		created := s.createReview(f, 5)

		rating := 2
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID,
			request.UpdateReviewRequest{Rating: &rating}, f.userToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int32(2), actual.Rating)
		require.Equal(t, created.Description, actual.Description)
	})

	s.Run("Error case: Other users cannot update", func() {
		t := s.T()
		f := s.setupCompletedBooking("2")
		created := s.createReview(f, 5)
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other2@example.com", string(user.RoleUser))

		rating := 1
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID,
			request.UpdateReviewRequest{Rating: &rating}, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *ReviewSuite) TestDeleteReview() {
	s.Run("Normal case: Author can delete and stats are recalculated", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")
		created := s.createReview(f, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, f.userToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, f.spotID), nil, "")
		var stats response.SpotRatingStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &stats))
		require.Equal(t, int32(0), stats.TotalReviews)
	})

	s.Run("Normal case: Admin can delete other users' reviews", func() {
		t := s.T()
		f := s.setupCompletedBooking("2")
		created := s.createReview(f, 4)
		_, adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func (s *ReviewSuite) TestReplyToReview() {
	s.Run("Normal case: Spot owner can reply", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")
		created := s.createReview(f, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID+"/reply",
			request.ReplyReviewRequest{Reply: "Thanks, we repainted the lines."}, f.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.NotNil(t, actual.OwnerReply)
		require.Equal(t, "Thanks, we repainted the lines.", *actual.OwnerReply)
	})

	s.Run("Error case: Owner of another spot cannot reply", func() {
		t := s.T()
		f := s.setupCompletedBooking("2")
		created := s.createReview(f, 3)
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger2@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID+"/reply",
			request.ReplyReviewRequest{Reply: "Not my spot"}, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: Plain users are rejected by role", func() {
		t := s.T()
		f := s.setupCompletedBooking("3")
		created := s.createReview(f, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID+"/reply",
			request.ReplyReviewRequest{Reply: "Self reply"}, f.userToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *ReviewSuite) TestListSpotReviews() {
	s.Run("Normal case: Filter by rating and paginate", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")

		ratings := []int{5, 4, 2}
		for i, r := range ratings {
			bookingID := f.bookingID
			if i > 0 {
				bookingID = dbtest.CreateTestBooking(t, s.DB, f.userID, f.spotID, "Completed", "paid", time.Now().Add(-time.Duration(72+i*24)*time.Hour))
			}
			reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(bookingID).WithRating(r).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		var page struct {
			Reviews    []response.ReviewListItemResponse `json:"reviews"`
			NextCursor *string                           `json:"next_cursor"`
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(spotReviewsURL, f.spotID)+"?min_rating=4", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Reviews, 2)
		for _, r := range page.Reviews {
			require.GreaterOrEqual(t, r.Rating, int32(4))
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(spotReviewsURL, f.spotID)+"?limit=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		page.NextCursor = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Reviews, 2)
		require.NotNil(t, page.NextCursor, "次ページのカーソルがない")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(spotReviewsURL, f.spotID)+"?limit=2&after="+url.QueryEscape(*page.NextCursor), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		page.NextCursor = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Reviews, 1)
		require.Nil(t, page.NextCursor)
	})
}

func (s *ReviewSuite) TestSpotRatingStats() {
	s.Run("Normal case: Stats follow created reviews", func() {
		t := s.T()
		f := s.setupCompletedBooking("1")
		s.createReview(f, 5)

		second := dbtest.CreateTestBooking(t, s.DB, f.userID, f.spotID, "Completed", "paid", time.Now().Add(-96*time.Hour))
		reqBody := builder.NewReviewBuilder().WithSpotID(f.spotID).WithBookingID(second).WithRating(3).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, f.userToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, f.spotID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.SpotRatingStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.SpotRatingStatsResponse{
			SpotID:        f.spotID.String(),
			TotalReviews:  2,
			AverageRating: 4,
			Rating3Count:  1,
			Rating5Count:  1,
		}
		if diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(response.SpotRatingStatsResponse{}, "UpdatedAt")); diff != "" {
			t.Errorf("Stats mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Returns empty stats for a spot without reviews", func() {
		t := s.T()

		spotID := uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, spotID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.SpotRatingStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int32(0), actual.TotalReviews)
	})
}
