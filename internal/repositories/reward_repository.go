package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type RewardRepository interface {
	FindByUserID(ctx context.Context, userID string) (*db_models.Reward, error)

	// GetOrCreate returns the user's reward row, creating the initial one on
	// first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*db_models.Reward, error)
	Update(ctx context.Context, reward *db_models.Reward) error
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) FindByUserID(ctx context.Context, userID string) (*db_models.Reward, error) {
	var reward db_models.Reward
	err := r.db.WithContext(ctx).First(&reward, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*db_models.Reward, error) {
	var reward db_models.Reward
	err := r.db.WithContext(ctx).
		Where(db_models.Reward{UserID: userID}).
		Attrs(db_models.Reward{Level: 1}).
		FirstOrCreate(&reward).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) Update(ctx context.Context, reward *db_models.Reward) error {
	return r.db.WithContext(ctx).Save(reward).Error
}
