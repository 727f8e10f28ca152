package reward_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideRewardRepo, provideRewardService)

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideRewardService(rewardRepo repositories.RewardRepository) services.RewardService {
	return services.NewRewardService(rewardRepo)
}
