package repositories

import (
	"context"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type MinigameRepository interface {
	Insert(ctx context.Context, game *db_models.Minigame) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Minigame, error)
}

type minigameRepository struct {
	db *gorm.DB
}

func NewMinigameRepository(db *gorm.DB) MinigameRepository {
	return &minigameRepository{db: db}
}

func (m *minigameRepository) Insert(ctx context.Context, game *db_models.Minigame) error {
	return m.db.WithContext(ctx).Create(game).Error
}

func (m *minigameRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Minigame, error) {
	var games []db_models.Minigame
	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
