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

type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, request request_models.CreateGoalRequest) (*db_models.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]db_models.Goal, error)
	UpdateGoal(ctx context.Context, userID string, goalID string, request request_models.UpdateGoalRequest) (*db_models.Goal, error)
	CompleteGoal(ctx context.Context, userID string, goalID string) (*db_models.Goal, error)
}

type goalService struct {
	goalRepo      repositories.GoalRepository
	rewardService RewardService
}

func NewGoalService(goalRepo repositories.GoalRepository, rewardService RewardService) GoalService {
	return &goalService{
		goalRepo:      goalRepo,
		rewardService: rewardService,
	}
}

func (g *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, request request_models.CreateGoalRequest) (*db_models.Goal, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	goal := &db_models.Goal{
		UserID:       userID,
		Title:        request.Title,
		Description:  request.Description,
		Category:     db_models.GoalCategory(request.Category),
		TargetDate:   request.TargetDate,
		RewardPoints: request.RewardPoints,
	}

	if err := g.goalRepo.Insert(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return goal, nil
}

func (g *goalService) ListGoals(ctx context.Context, userID string) ([]db_models.Goal, error) {
	goals, err := g.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return goals, nil
}

func (g *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, request request_models.UpdateGoalRequest) (*db_models.Goal, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	goal, err := g.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		goal.Title = *request.Title
	}
	if request.Description != nil {
		goal.Description = request.Description
	}
	if request.TargetDate != nil {
		goal.TargetDate = request.TargetDate
	}

	if err := g.goalRepo.Update(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return goal, nil
}

func (g *goalService) CompleteGoal(ctx context.Context, userID string, goalID string) (*db_models.Goal, error) {
	goal, err := g.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		return nil, utils.ErrGoalAlreadyCompleted
	}

	flipped, err := g.goalRepo.MarkCompleted(ctx, goalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !flipped {
		// Lost the race to a concurrent completion; points were already
		// awarded by the winner.
		return nil, utils.ErrGoalAlreadyCompleted
	}
	goal.Completed = true

	if goal.RewardPoints > 0 {
		if _, err := g.rewardService.AwardPoints(ctx, goal.UserID, goal.RewardPoints, PointSourceGoal); err != nil {
			// The goal is completed either way; the award can be replayed
			// by support tooling if this ever fires.
			log.Printf("awarding %d points for goal %s failed: %v", goal.RewardPoints, goalID, err)
		}
	}

	return goal, nil
}

func (g *goalService) ownedGoal(ctx context.Context, userID string, goalID string) (*db_models.Goal, error) {
	goal, err := g.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if goal == nil || goal.UserID.String() != userID {
		// Hide other users' goals behind the same not-found.
		return nil, utils.ErrGoalNotFound
	}
	return goal, nil
}
