package controllers

import (
	"github.com/gin-gonic/gin"

	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type RewardController struct {
	rewardService services.RewardService
}

func NewRewardController(rewardService services.RewardService) *RewardController {
	return &RewardController{
		rewardService: rewardService,
	}
}

func (r *RewardController) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reward, err := r.rewardService.GetRewards(c.Request.Context(), userID.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reward, "")
}
