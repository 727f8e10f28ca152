package request_models

import "github.com/google/uuid"

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,oneof=basic pro enterprise"`
}

// CreatePaymentRequest is the insert contract for payment rows; id and
// created_at are server-assigned.
type CreatePaymentRequest struct {
	UserID                *uuid.UUID `json:"user_id" binding:"omitempty"`
	StripePaymentIntentID *string    `json:"stripe_payment_intent_id" binding:"omitempty"`
	AmountMinor           int64      `json:"amount" binding:"gte=0"`
	Currency              string     `json:"currency" binding:"required,len=3,lowercase"`
	Status                string     `json:"status" binding:"required,oneof=succeeded pending failed"`
	Description           *string    `json:"description" binding:"omitempty,max=500"`
}

// CreateSubscriptionRequest is the insert contract for subscription rows,
// driven by billing-provider events rather than end users.
type CreateSubscriptionRequest struct {
	UserID               uuid.UUID `json:"user_id" binding:"required"`
	Plan                 string    `json:"plan" binding:"required,oneof=free basic pro enterprise"`
	Status               string    `json:"status" binding:"omitempty,oneof=active canceled past_due"`
	CurrentPeriodStart   *int64    `json:"current_period_start" binding:"omitempty,gt=0"`
	CurrentPeriodEnd     *int64    `json:"current_period_end" binding:"omitempty,gt=0"`
	CancelAtPeriodEnd    bool      `json:"cancel_at_period_end"`
	StripeSubscriptionID *string   `json:"stripe_subscription_id" binding:"omitempty"`
	StripePriceID        *string   `json:"stripe_price_id" binding:"omitempty"`
}
