package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifesync/internal/models/request_models"
	"lifesync/internal/models/response_models"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type GateController struct {
	gateService services.GateService
}

func NewGateController(gateService services.GateService) *GateController {
	return &GateController{
		gateService: gateService,
	}
}

// Unlock godoc
// @Summary Unlock the site
// @Description Verify the shared site password and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.PasswordGateRequest true "Site password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/password [post]
func (g *GateController) Unlock(c *gin.Context) {
	var req request_models.PasswordGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := g.gateService.Unlock(req.Password, c.ClientIP())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UnlockResponse{Token: token}, "Access granted")
}
