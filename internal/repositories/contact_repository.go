package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type ContactRepository interface {
	Insert(ctx context.Context, contact *db_models.Contact) error
	FindByID(ctx context.Context, id string) (*db_models.Contact, error)
	List(ctx context.Context, status string) ([]db_models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status db_models.ContactStatus) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (c *contactRepository) Insert(ctx context.Context, contact *db_models.Contact) error {
	return c.db.WithContext(ctx).Create(contact).Error
}

func (c *contactRepository) FindByID(ctx context.Context, id string) (*db_models.Contact, error) {
	var contact db_models.Contact
	err := c.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (c *contactRepository) List(ctx context.Context, status string) ([]db_models.Contact, error) {
	var contacts []db_models.Contact
	q := c.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *contactRepository) UpdateStatus(ctx context.Context, id string, status db_models.ContactStatus) error {
	return c.db.WithContext(ctx).
		Model(&db_models.Contact{}).
		Where("id = ?", id).
		Update("status", status).Error
}
