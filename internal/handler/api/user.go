package api

import (
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds  commands.UserCommands
	users queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, users queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, users: users}
}

// @Summary Update profile
// @Description Update the current user's name and phone
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, _, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToInput()); err != nil {
		abortWithMappedError(c, err, "プロフィールの更新に失敗しました")
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err, "ユーザー情報の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
