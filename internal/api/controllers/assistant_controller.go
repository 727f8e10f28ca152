package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifesync/internal/models/request_models"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantService
}

func NewAssistantController(assistantService services.AssistantService) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

func (a *AssistantController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.assistantService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
