package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifesync/internal/models/request_models"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type BillingController struct {
	billingService services.BillingService
}

func NewBillingController(billingService services.BillingService) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

func (b *BillingController) Plans(c *gin.Context) {
	utils.RespondSuccess(c, b.billingService.Plans(), "")
}

func (b *BillingController) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := b.billingService.CreateCheckout(c.Request.Context(), userID.String(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout session created")
}

// Webhook receives provider events. Authentication is the signature header,
// not the site gate.
func (b *BillingController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if err := b.billingService.HandleWebhook(c.Request.Context(), payload, sigHeader); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "ok")
}

// PaymentSuccess backs the client's /payment/success result page.
func (b *BillingController) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	resp, err := b.billingService.ConfirmSuccess(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// PaymentCancel backs the client's /payment/cancel result page.
func (b *BillingController) PaymentCancel(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	resp, err := b.billingService.ConfirmCancel(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
