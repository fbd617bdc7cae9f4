package api

import (
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds     commands.SpotCommands
	q        queries.SpotQueries
	bookings queries.BookingQueries
	history  commands.SearchHistoryCommands
}

func NewSpotHandler(
	cmds commands.SpotCommands,
	q queries.SpotQueries,
	bookings queries.BookingQueries,
	history commands.SearchHistoryCommands,
) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q, bookings: bookings, history: history}
}

// @Summary Create spot
// @Description Register a parking spot owned by the caller
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Create spot request"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	ownerID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "駐車スポットの作成に失敗しました")
		return
	}
	h.respondSpot(c, http.StatusCreated, id)
}

// @Summary Get spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	h.respondSpot(c, http.StatusOK, id)
}

// @Summary Update spot
// @Description Partially update a spot (owner of the spot or admin)
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotRequest true "Update spot request"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actorID, role.String(), spotID, req.ToInput()); err != nil {
		abortWithMappedError(c, err, "駐車スポットの更新に失敗しました")
		return
	}
	h.respondSpot(c, http.StatusOK, spotID)
}

// @Summary Delete spot
// @Description Delete a spot without active bookings
// @Tags spots
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actorID, role.String(), spotID); err != nil {
		abortWithMappedError(c, err, "駐車スポットの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Search spots
// @Description Spots within radius_km of (lat, lng), nearest first. With start and end only spots that can take the booking are returned.
// @Tags spots
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km (default 5, max 50)"
// @Param start query string false "RFC3339 start time"
// @Param end query string false "RFC3339 end time"
// @Param slots query int false "Slots needed (default 1)"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.SpotSearchResponse
// @Failure 400 {object} map[string]string
// @Router /spots/search [get]
func (h *SpotHandler) Search(c *gin.Context) {
	var q reqdto.SearchSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search query", nil)
		return
	}
	criteria, err := q.ToCriteria()
	if err != nil {
		abortWithMappedError(c, err, "検索条件の解析に失敗しました")
		return
	}

	results, err := h.q.Search(c.Request.Context(), criteria)
	if err != nil {
		abortWithMappedError(c, err, "駐車スポットの検索に失敗しました")
		return
	}

	if userID, ok := middleware.GetUserID(c); ok {
		h.history.Record(c.Request.Context(), userID, queries.RecentSearch{
			Lat:      criteria.Lat,
			Lng:      criteria.Lng,
			RadiusKm: criteria.RadiusKm,
		})
	}

	res, err := resdto.FromSpotSearch(results)
	if err != nil {
		abortWithMappedError(c, err, "検索結果の変換に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": res})
}

// @Summary My spots
// @Description Spots owned by the caller
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SpotResponse
// @Failure 401 {object} map[string]string
// @Router /spots/mine [get]
func (h *SpotHandler) ListMine(c *gin.Context) {
	ownerID, _, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortWithMappedError(c, err, "所有スポット一覧の取得に失敗しました")
		return
	}
	res, err := resdto.FromSpotList(views)
	if err != nil {
		abortWithMappedError(c, err, "スポット一覧の変換に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": res})
}

// @Summary Spot bookings
// @Description Bookings of a spot (spot owner or admin)
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id}/bookings [get]
func (h *SpotHandler) ListBookings(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id", "Invalid spot id")
	if !ok {
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.bookings.ListBySpot(c.Request.Context(), actorID, role.String(), spotID, queryLimit(c))
	if err != nil {
		abortWithMappedError(c, err, "スポットの予約一覧の取得に失敗しました")
		return
	}
	res, err := resdto.FromBookingList(items)
	if err != nil {
		abortWithMappedError(c, err, "予約一覧の変換に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": res})
}

func (h *SpotHandler) respondSpot(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "駐車スポットの取得に失敗しました")
		return
	}
	res, err := resdto.FromSpotView(view)
	if err != nil {
		abortWithMappedError(c, err, "駐車スポットの変換に失敗しました")
		return
	}
	c.JSON(status, res)
}
