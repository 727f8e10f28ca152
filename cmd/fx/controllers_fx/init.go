package controllers_fx

import (
	"go.uber.org/fx"

	"lifesync/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewGateController,
	controllers.NewAccountController,
	controllers.NewContactController,
	controllers.NewNewsletterController,
	controllers.NewGoalController,
	controllers.NewRewardController,
	controllers.NewMinigameController,
	controllers.NewDashboardController,
	controllers.NewBillingController,
	controllers.NewAssistantController,
)
