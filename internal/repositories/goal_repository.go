package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type GoalRepository interface {
	Insert(ctx context.Context, goal *db_models.Goal) error
	FindByID(ctx context.Context, id string) (*db_models.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Goal, error)
	Update(ctx context.Context, goal *db_models.Goal) error

	// MarkCompleted flips the completed flag only if it is still unset and
	// reports whether this call performed the flip.
	MarkCompleted(ctx context.Context, id string) (bool, error)
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (g *goalRepository) Insert(ctx context.Context, goal *db_models.Goal) error {
	return g.db.WithContext(ctx).Create(goal).Error
}

func (g *goalRepository) FindByID(ctx context.Context, id string) (*db_models.Goal, error) {
	var goal db_models.Goal
	err := g.db.WithContext(ctx).First(&goal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (g *goalRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Goal, error) {
	var goals []db_models.Goal
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *goalRepository) Update(ctx context.Context, goal *db_models.Goal) error {
	return g.db.WithContext(ctx).Save(goal).Error
}

func (g *goalRepository) MarkCompleted(ctx context.Context, id string) (bool, error) {
	// Conditional update guards against double completion under concurrent
	// requests.
	res := g.db.WithContext(ctx).
		Model(&db_models.Goal{}).
		Where("id = ? AND completed = FALSE", id).
		Update("completed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
