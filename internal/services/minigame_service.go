package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

// completionBonus is granted on top of score points when a session was
// finished rather than abandoned.
const completionBonus = 25

type MinigameService interface {
	RecordSession(ctx context.Context, userID uuid.UUID, request request_models.CreateMinigameRequest) (*db_models.Minigame, error)
	ListSessions(ctx context.Context, userID string) ([]db_models.Minigame, error)
}

type minigameService struct {
	minigameRepo  repositories.MinigameRepository
	rewardService RewardService
}

func NewMinigameService(minigameRepo repositories.MinigameRepository, rewardService RewardService) MinigameService {
	return &minigameService{
		minigameRepo:  minigameRepo,
		rewardService: rewardService,
	}
}

// PointsForSession converts a raw score into reward points, scaled by
// difficulty.
func PointsForSession(score int64, difficulty db_models.GameDifficulty, completed bool) int64 {
	multiplier := int64(1)
	switch difficulty {
	case db_models.DifficultyMedium:
		multiplier = 2
	case db_models.DifficultyHard:
		multiplier = 3
	}

	points := (score / 10) * multiplier
	if completed {
		points += completionBonus
	}
	return points
}

func (m *minigameService) RecordSession(ctx context.Context, userID uuid.UUID, request request_models.CreateMinigameRequest) (*db_models.Minigame, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	difficulty := db_models.GameDifficulty(request.Difficulty)
	if difficulty == "" {
		difficulty = db_models.DifficultyMedium
	}

	game := &db_models.Minigame{
		UserID:       userID,
		GameType:     db_models.GameType(request.GameType),
		Score:        request.Score,
		TimeSpent:    request.TimeSpent,
		Difficulty:   difficulty,
		Completed:    request.Completed,
		PointsEarned: PointsForSession(request.Score, difficulty, request.Completed),
	}

	if err := m.minigameRepo.Insert(ctx, game); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if game.PointsEarned > 0 {
		if _, err := m.rewardService.AwardPoints(ctx, userID, game.PointsEarned, PointSourceGame); err != nil {
			log.Printf("awarding %d points for game session %s failed: %v", game.PointsEarned, game.ID, err)
		}
	}

	return game, nil
}

func (m *minigameService) ListSessions(ctx context.Context, userID string) ([]db_models.Minigame, error) {
	games, err := m.minigameRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return games, nil
}
