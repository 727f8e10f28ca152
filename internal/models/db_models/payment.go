package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	BaseModel
	UserID *uuid.UUID `gorm:"index" json:"user_id,omitempty"` // nullable for anonymous one-offs

	StripePaymentIntentID *string `gorm:"index" json:"-"` // idempotency across webhooks

	AmountMinor int64         `gorm:"not null" json:"amount"`               // e.g. 2900 = $29.00
	Currency    string        `gorm:"size:3;default:'usd'" json:"currency"` // ISO 4217, lowercase per Stripe
	Status      PaymentStatus `gorm:"index;not null" json:"status"`
	Description *string       `json:"description,omitempty"`

	// Raw provider payloads, failure reasons, etc.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Settled reports whether the payment reached a terminal state; settled
// payments are immutable.
func (p *Payment) Settled() bool {
	return p.Status == PaymentStatusSucceeded || p.Status == PaymentStatusFailed
}
