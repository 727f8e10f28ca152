package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifesync/internal/models/request_models"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type MinigameController struct {
	minigameService services.MinigameService
}

func NewMinigameController(minigameService services.MinigameService) *MinigameController {
	return &MinigameController{
		minigameService: minigameService,
	}
}

func (m *MinigameController) Record(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateMinigameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	game, err := m.minigameService.RecordSession(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, game, "Session recorded")
}

func (m *MinigameController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	games, err := m.minigameService.ListSessions(c.Request.Context(), userID.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, games, "")
}
