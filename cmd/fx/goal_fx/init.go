package goal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideGoalRepo, provideGoalService)

func provideGoalRepo(db *gorm.DB) repositories.GoalRepository {
	return repositories.NewGoalRepository(db)
}

func provideGoalService(goalRepo repositories.GoalRepository, rewardService services.RewardService) services.GoalService {
	return services.NewGoalService(goalRepo, rewardService)
}
