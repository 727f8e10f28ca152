package controllers

import (
	"github.com/gin-gonic/gin"

	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Get serves /api/dashboard and /api/dashboard/:section. The section segment
// is free-form; the service decides what it means.
func (d *DashboardController) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), userID.String(), c.Param("section"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "")
}
