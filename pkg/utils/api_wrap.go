package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer errors onto the response envelope.
func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			TraceID: traceID(c),
			Data:    gin.H{"violations": verr.Violations},
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidPassword):
		RespondError(c, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, ErrTooManyAttempts):
		RespondError(c, http.StatusTooManyRequests, "Too many attempts, try again later")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrUsernameAlreadyExists):
		RespondError(c, http.StatusConflict, "Username already taken")
	case errors.Is(err, ErrGoalNotFound):
		RespondError(c, http.StatusNotFound, "Goal not found")
	case errors.Is(err, ErrGoalAlreadyCompleted):
		RespondError(c, http.StatusConflict, "Goal already completed")
	case errors.Is(err, ErrContactNotFound):
		RespondError(c, http.StatusNotFound, "Contact not found")
	case errors.Is(err, ErrRewardNotFound):
		RespondError(c, http.StatusNotFound, "No rewards yet")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, "Payment not found")
	case errors.Is(err, ErrWebhookSignature):
		RespondError(c, http.StatusUnauthorized, "Invalid webhook signature")
	case errors.Is(err, ErrAssistantUnavailable):
		RespondError(c, http.StatusBadGateway, "Assistant is unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
