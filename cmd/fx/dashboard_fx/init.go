package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	repo repositories.DashboardRepository,
	rewardRepo repositories.RewardRepository,
	subRepo repositories.SubscriptionRepository,
) services.DashboardService {
	return services.NewDashboardService(repo, rewardRepo, subRepo)
}
