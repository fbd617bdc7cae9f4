package api

import (
	"net/http"

	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHistoryHandler struct {
	cmds commands.SearchHistoryCommands
	q    queries.SearchHistoryQueries
}

func NewSearchHistoryHandler(cmds commands.SearchHistoryCommands, q queries.SearchHistoryQueries) *SearchHistoryHandler {
	return &SearchHistoryHandler{cmds: cmds, q: q}
}

// @Summary Recent searches
// @Description The caller's latest spot searches, newest first
// @Tags searches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RecentSearchResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /searches/recent [get]
func (h *SearchHistoryHandler) List(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.q.ListRecent(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err, "検索履歴の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": resdto.FromRecentSearches(items)})
}

// @Summary Clear recent searches
// @Tags searches
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /searches/recent [delete]
func (h *SearchHistoryHandler) Clear(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		abortWithMappedError(c, err, "検索履歴の削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}
