package utils

import "errors"

var (
	ErrInvalidPassword       = errors.New("invalid site password")
	ErrTooManyAttempts       = errors.New("too many password attempts")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrGoalNotFound         = errors.New("goal not found")
	ErrGoalAlreadyCompleted = errors.New("goal already completed")
	ErrContactNotFound      = errors.New("contact not found")
	ErrRewardNotFound       = errors.New("reward not found")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrWebhookSignature     = errors.New("webhook signature verification failed")
	ErrAssistantUnavailable = errors.New("assistant provider unavailable")

	ErrDatabaseError = errors.New("database error")
)
