package minigame_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideMinigameRepo, provideMinigameService)

func provideMinigameRepo(db *gorm.DB) repositories.MinigameRepository {
	return repositories.NewMinigameRepository(db)
}

func provideMinigameService(minigameRepo repositories.MinigameRepository, rewardService services.RewardService) services.MinigameService {
	return services.NewMinigameService(minigameRepo, rewardService)
}
