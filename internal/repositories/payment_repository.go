package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	FindByID(ctx context.Context, id string) (*db_models.Payment, error)
	FindByStripePaymentIntentID(ctx context.Context, intentID string) (*db_models.Payment, error)
	Update(ctx context.Context, payment *db_models.Payment) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p *paymentRepository) FindByID(ctx context.Context, id string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (p *paymentRepository) FindByStripePaymentIntentID(ctx context.Context, intentID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).First(&payment, "stripe_payment_intent_id = ?", intentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (p *paymentRepository) Update(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Save(payment).Error
}

func (p *paymentRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
