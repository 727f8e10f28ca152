package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"lifesync/internal/models/db_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

// PointsPerLevel is the flat point cost of each level.
const PointsPerLevel = 500

// Point sources recorded as first-time achievements.
const (
	PointSourceGoal = "goal"
	PointSourceGame = "game"
)

type RewardService interface {
	GetRewards(ctx context.Context, userID string) (*db_models.Reward, error)

	// AwardPoints adds points to the user's reward row, creating it on first
	// use, and records level-up milestones and first-time achievements.
	AwardPoints(ctx context.Context, userID uuid.UUID, points int64, source string) (*db_models.Reward, error)
}

type rewardService struct {
	rewardRepo repositories.RewardRepository
}

func NewRewardService(rewardRepo repositories.RewardRepository) RewardService {
	return &rewardService{rewardRepo: rewardRepo}
}

func LevelForPoints(points int64) int {
	if points < 0 {
		return 1
	}
	return int(points/PointsPerLevel) + 1
}

func (r *rewardService) GetRewards(ctx context.Context, userID string) (*db_models.Reward, error) {
	reward, err := r.rewardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reward == nil {
		return nil, utils.ErrRewardNotFound
	}
	return reward, nil
}

func (r *rewardService) AwardPoints(ctx context.Context, userID uuid.UUID, points int64, source string) (*db_models.Reward, error) {
	if points < 0 {
		points = 0
	}

	reward, err := r.rewardRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	achievements := decodeAchievements(reward.Achievements)

	oldLevel := reward.Level
	reward.TotalPoints += points
	reward.Level = LevelForPoints(reward.TotalPoints)

	var earned []string
	switch source {
	case PointSourceGoal:
		if !contains(achievements, "first_goal") {
			earned = append(earned, "first_goal")
		}
	case PointSourceGame:
		if !contains(achievements, "first_game") {
			earned = append(earned, "first_game")
		}
	}

	for lvl := oldLevel + 1; lvl <= reward.Level; lvl++ {
		earned = append(earned, fmt.Sprintf("level_%d", lvl))
	}

	if len(earned) > 0 {
		achievements = append(achievements, earned...)
		last := earned[len(earned)-1]
		reward.LastMilestone = &last
	}

	encoded, err := json.Marshal(achievements)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	reward.Achievements = encoded

	if err := r.rewardRepo.Update(ctx, reward); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reward, nil
}

func decodeAchievements(raw []byte) []string {
	var out []string
	if len(raw) == 0 {
		return out
	}
	// A corrupt list is treated as empty rather than blocking the award.
	_ = json.Unmarshal(raw, &out)
	return out
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
