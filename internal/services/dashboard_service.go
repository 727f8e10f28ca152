package services

import (
	"context"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/response_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

// Dashboard sections. The URL segment is free-form; anything unknown falls
// back to the overview.
const (
	SectionOverview = "overview"
	SectionGoals    = "goals"
	SectionRewards  = "rewards"
	SectionGames    = "games"
	SectionBilling  = "billing"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, userID string, section string) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo       repositories.DashboardRepository
	rewardRepo repositories.RewardRepository
	subRepo    repositories.SubscriptionRepository
}

func NewDashboardService(
	repo repositories.DashboardRepository,
	rewardRepo repositories.RewardRepository,
	subRepo repositories.SubscriptionRepository,
) DashboardService {
	return &dashboardService{
		repo:       repo,
		rewardRepo: rewardRepo,
		subRepo:    subRepo,
	}
}

func normalizeSection(section string) string {
	switch section {
	case SectionGoals, SectionRewards, SectionGames, SectionBilling:
		return section
	default:
		return SectionOverview
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID string, section string) (*response_models.DashboardReport, error) {
	section = normalizeSection(section)
	report := &response_models.DashboardReport{Section: section}

	var err error
	switch section {
	case SectionGoals:
		report.Goals, err = s.goalsSection(ctx, userID)
	case SectionRewards:
		report.Rewards, err = s.rewardsSection(ctx, userID)
	case SectionGames:
		report.Games, err = s.gamesSection(ctx, userID)
	case SectionBilling:
		report.Billing, err = s.billingSection(ctx, userID)
	default:
		report.Overview, err = s.overviewSection(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *dashboardService) overviewSection(ctx context.Context, userID string) (*response_models.OverviewSection, error) {
	total, completed, err := s.repo.GoalCounts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats, err := s.repo.GameStats(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.OverviewSection{
		GoalsTotal:     total,
		GoalsCompleted: completed,
		GamesPlayed:    stats.Played,
		Level:          1,
	}

	reward, err := s.rewardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reward != nil {
		out.TotalPoints = reward.TotalPoints
		out.Level = reward.Level
	}
	return out, nil
}

func (s *dashboardService) goalsSection(ctx context.Context, userID string) (*response_models.GoalsSection, error) {
	total, completed, err := s.repo.GoalCounts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byCategory, err := s.repo.GoalCountsByCategory(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.GoalsSection{
		Total:      total,
		Completed:  completed,
		ByCategory: byCategory,
	}, nil
}

func (s *dashboardService) rewardsSection(ctx context.Context, userID string) (*response_models.RewardsSection, error) {
	out := &response_models.RewardsSection{
		Level:        1,
		Achievements: []string{},
		NextLevelAt:  PointsPerLevel,
	}

	reward, err := s.rewardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reward != nil {
		out.TotalPoints = reward.TotalPoints
		out.Level = reward.Level
		out.LastMilestone = reward.LastMilestone
		out.NextLevelAt = int64(reward.Level) * PointsPerLevel
		out.Achievements = decodeAchievements(reward.Achievements)
		if out.Achievements == nil {
			out.Achievements = []string{}
		}
	}
	return out, nil
}

func (s *dashboardService) gamesSection(ctx context.Context, userID string) (*response_models.GamesSection, error) {
	stats, err := s.repo.GameStats(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	best, err := s.repo.BestScores(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.GamesSection{
		Played:       stats.Played,
		BestScores:   best,
		TotalSeconds: stats.TotalSeconds,
		PointsEarned: stats.PointsEarned,
	}, nil
}

func (s *dashboardService) billingSection(ctx context.Context, userID string) (*response_models.BillingSection, error) {
	out := &response_models.BillingSection{
		Plan:   string(db_models.PlanFree),
		Status: string(db_models.SubStatusActive),
	}

	sub, err := s.subRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub != nil {
		out.Plan = string(sub.Plan)
		out.Status = string(sub.Status)
		out.CurrentPeriodEnd = sub.CurrentPeriodEnd
	}

	count, paid, err := s.repo.PaymentTotals(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out.PaymentsCount = count
	out.TotalPaidMinor = paid
	return out, nil
}
