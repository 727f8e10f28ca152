package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type NewsletterRepository interface {
	Insert(ctx context.Context, entry *db_models.Newsletter) error
	FindByEmail(ctx context.Context, email string) (*db_models.Newsletter, error)
	SetSubscribed(ctx context.Context, email string, subscribed bool) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (n *newsletterRepository) Insert(ctx context.Context, entry *db_models.Newsletter) error {
	return n.db.WithContext(ctx).Create(entry).Error
}

func (n *newsletterRepository) FindByEmail(ctx context.Context, email string) (*db_models.Newsletter, error) {
	var entry db_models.Newsletter
	err := n.db.WithContext(ctx).First(&entry, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (n *newsletterRepository) SetSubscribed(ctx context.Context, email string, subscribed bool) error {
	return n.db.WithContext(ctx).
		Model(&db_models.Newsletter{}).
		Where("email = ?", email).
		Update("subscribed", subscribed).Error
}
