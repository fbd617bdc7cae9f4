package api

import (
	"net/http"
	"strconv"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a review for a completed booking (one per booking)
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "レビューの作成に失敗しました")
		return
	}
	h.respondReview(c, http.StatusCreated, id)
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	h.respondReview(c, http.StatusOK, id)
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	actorID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), id, actorID, req.ToInput()); err != nil {
		abortWithMappedError(c, err, "レビューの更新に失敗しました")
		return
	}
	h.respondReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, role.String()); err != nil {
		abortWithMappedError(c, err, "レビューの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reply to review
// @Description The spot owner sets or replaces the public reply
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReplyReviewRequest true "Reply"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id}/reply [put]
func (h *ReviewHandler) Reply(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	actorID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ReplyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ReplyToReview(c.Request.Context(), id, actorID, req.Reply); err != nil {
		abortWithMappedError(c, err, "レビューへの返信に失敗しました")
		return
	}
	h.respondReview(c, http.StatusOK, id)
}

// @Summary List spot reviews
// @Description List reviews for a spot with optional rating filters and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Spot ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param max_rating query int false "Maximum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spots/{id}/reviews [get]
func (h *ReviewHandler) ListBySpot(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	var minPtr, maxPtr *int
	if v := c.Query("min_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			minPtr = &iv
		}
	}
	if v := c.Query("max_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			maxPtr = &iv
		}
	}
	filters := queries.ReviewFilters{MinRating: minPtr, MaxRating: maxPtr}
	items, next, err := h.q.ListBySpot(c.Request.Context(), spotID, filters, queryCursor(c), queryLimit(c))
	if err != nil {
		abortWithMappedError(c, err, "スポットのレビュー一覧の取得に失敗しました")
		return
	}
	resp := gin.H{"reviews": resdto.FromReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Spot rating stats
// @Description Get rating statistics for a spot
// @Tags reviews
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotRatingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spots/{id}/rating-stats [get]
func (h *ReviewHandler) SpotRatingStats(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	stats, err := h.q.GetSpotRatingStats(c.Request.Context(), spotID)
	if err != nil {
		abortWithMappedError(c, err, "評価統計の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotRatingStats(stats))
}

func (h *ReviewHandler) respondReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "レビューの取得に失敗しました")
		return
	}
	c.JSON(status, resdto.FromReviewView(view))
}
