package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanBasic      SubscriptionPlan = "basic"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusPastDue  SubscriptionStatus = "past_due"
)

type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`

	Plan   SubscriptionPlan   `gorm:"index;default:'free'" json:"plan"`
	Status SubscriptionStatus `gorm:"index;default:'active'" json:"status"`

	// Billing period bounds (unix seconds).
	CurrentPeriodStart *int64 `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *int64 `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool   `gorm:"default:false" json:"cancel_at_period_end"`

	StripeSubscriptionID *string `gorm:"uniqueIndex" json:"-"`
	StripePriceID        *string `json:"-"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
