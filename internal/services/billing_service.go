package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/internal/models/response_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/stripe"
	"lifesync/pkg/utils"
)

// BillingConfig couples the service to the payment provider.
type BillingConfig struct {
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// StripeAPI is the slice of the provider client the service uses; the tests
// substitute a fake.
type StripeAPI interface {
	CreateCheckoutSession(ctx context.Context, p stripe.CreateCheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
	CreateCustomer(ctx context.Context, email string) (*stripe.Customer, error)
}

type BillingService interface {
	Plans() []response_models.PricingPlan
	CreateCheckout(ctx context.Context, userID string, request request_models.CheckoutRequest) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
	ConfirmSuccess(ctx context.Context, sessionID string) (*response_models.PaymentResultResponse, error)
	ConfirmCancel(ctx context.Context, sessionID string) (*response_models.PaymentResultResponse, error)
}

// PricingPlans is the public catalog; prices are monthly, in minor units.
var PricingPlans = []response_models.PricingPlan{
	{
		Code: string(db_models.PlanBasic), Name: "Basic",
		PriceMinor: 2900, Currency: "usd",
		Features: []string{
			"Finance tracking",
			"Up to 5 projects",
			"Basic analytics",
			"Email support",
			"Mobile app access",
		},
	},
	{
		Code: string(db_models.PlanPro), Name: "Pro",
		PriceMinor: 7900, Currency: "usd", Popular: true,
		Features: []string{
			"Everything in Basic",
			"Unlimited projects",
			"Side hustle toolkit",
			"Advanced analytics",
			"Priority support",
			"Team collaboration",
			"Custom integrations",
		},
	},
	{
		Code: string(db_models.PlanEnterprise), Name: "Enterprise",
		PriceMinor: 19900, Currency: "usd",
		Features: []string{
			"Everything in Pro",
			"White-label options",
			"Dedicated account manager",
			"Custom workflows",
			"SLA guarantee",
			"On-premise deployment",
			"Advanced security",
			"API access",
		},
	},
}

func planByCode(code string) *response_models.PricingPlan {
	for i := range PricingPlans {
		if PricingPlans[i].Code == code {
			return &PricingPlans[i]
		}
	}
	return nil
}

type billingService struct {
	userRepo    repositories.UserRepository
	subRepo     repositories.SubscriptionRepository
	paymentRepo repositories.PaymentRepository
	client      StripeAPI
	cfg         BillingConfig
	now         func() int64
}

func NewBillingService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
	client StripeAPI,
	cfg BillingConfig,
) BillingService {
	return &billingService{
		userRepo:    userRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		client:      client,
		cfg:         cfg,
		now:         utils.NowUnixSeconds,
	}
}

func (b *billingService) Plans() []response_models.PricingPlan {
	return PricingPlans
}

func (b *billingService) CreateCheckout(ctx context.Context, userID string, request request_models.CheckoutRequest) (*response_models.CreateCheckoutResponse, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	plan := planByCode(request.Plan)
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	customerID, err := b.ensureCustomer(ctx, user)
	if err != nil {
		return nil, err
	}

	// Record the pending payment before touching the provider so a crash
	// in between leaves a traceable row, not a dangling charge.
	description := fmt.Sprintf("%s plan subscription", plan.Name)
	input := request_models.CreatePaymentRequest{
		UserID:      &user.ID,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Status:      string(db_models.PaymentStatusPending),
		Description: &description,
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	payment := &db_models.Payment{
		UserID:      input.UserID,
		AmountMinor: input.AmountMinor,
		Currency:    input.Currency,
		Status:      db_models.PaymentStatus(input.Status),
		Description: input.Description,
	}
	if err := b.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	session, err := b.client.CreateCheckoutSession(ctx, stripe.CreateCheckoutSessionParams{
		Customer:          customerID,
		SuccessURL:        b.cfg.SuccessURL,
		CancelURL:         b.cfg.CancelURL,
		ProductName:       fmt.Sprintf("LifeSync Pro %s", plan.Name),
		UnitAmountMinor:   plan.PriceMinor,
		Currency:          plan.Currency,
		RecurringInterval: "month",
		Metadata: map[string]string{
			"payment_id": payment.ID.String(),
			"user_id":    user.ID.String(),
			"plan":       plan.Code,
		},
	})
	if err != nil {
		payment.Status = db_models.PaymentStatusFailed
		if updErr := b.paymentRepo.Update(ctx, payment); updErr != nil {
			log.Printf("marking payment %s failed: %v", payment.ID, updErr)
		}
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	// Snapshot the provider response for traceability.
	if meta, err := json.Marshal(map[string]any{"checkout_session": session.ID}); err == nil {
		payment.Metadata = meta
		if err := b.paymentRepo.Update(ctx, payment); err != nil {
			log.Printf("storing session metadata on payment %s: %v", payment.ID, err)
		}
	}

	return &response_models.CreateCheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Plan:        plan.Code,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
	}, nil
}

func (b *billingService) ensureCustomer(ctx context.Context, user *db_models.User) (string, error) {
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	customer, err := b.client.CreateCustomer(ctx, user.Email)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	if err := b.userRepo.SetStripeCustomerID(ctx, user.ID.String(), customer.ID); err != nil {
		return "", utils.ErrDatabaseError
	}
	user.StripeCustomerID = &customer.ID
	return customer.ID, nil
}

func (b *billingService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := stripe.ConstructEvent(payload, sigHeader, b.cfg.WebhookSecret, utils.FromUnixSeconds(b.now()))
	if err != nil {
		return utils.ErrWebhookSignature
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Object, &session); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
		return b.handleCheckoutCompleted(ctx, &session)

	case "invoice.payment_failed":
		var invoice stripe.InvoiceObject
		if err := json.Unmarshal(event.Data.Object, &invoice); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		return b.handlePaymentFailed(ctx, &invoice)

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.SubscriptionObject
		if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		return b.handleSubscriptionChange(ctx, event.Type, &sub)

	default:
		// Unhandled event types are acked so the provider stops retrying.
		log.Printf("webhook: ignoring event type %s", event.Type)
		return nil
	}
}

func (b *billingService) handleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	paymentID := session.Metadata["payment_id"]
	if paymentID == "" {
		log.Printf("webhook: session %s carries no payment_id", session.ID)
		return nil
	}

	payment, err := b.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		// Ack to avoid a retry storm; log for investigation.
		log.Printf("webhook: payment %s not found for session %s", paymentID, session.ID)
		return nil
	}

	// Idempotency: settled payments are immutable.
	if !payment.Settled() {
		payment.Status = db_models.PaymentStatusSucceeded
		if session.PaymentIntent != "" {
			payment.StripePaymentIntentID = &session.PaymentIntent
		}
		if err := b.paymentRepo.Update(ctx, payment); err != nil {
			return utils.ErrDatabaseError
		}
	}

	return b.activateSubscription(ctx, session)
}

func (b *billingService) activateSubscription(ctx context.Context, session *stripe.CheckoutSession) error {
	userID := session.Metadata["user_id"]
	planCode := session.Metadata["plan"]
	if userID == "" || planCode == "" {
		return nil
	}

	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		log.Printf("webhook: user %s not found for session %s", userID, session.ID)
		return nil
	}

	input := request_models.CreateSubscriptionRequest{
		UserID: user.ID,
		Plan:   planCode,
		Status: string(db_models.SubStatusActive),
	}
	if session.Subscription != "" {
		input.StripeSubscriptionID = &session.Subscription
	}
	if err := utils.ValidateInput(input); err != nil {
		return err
	}

	existing, err := b.subRepo.FindByUserID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if existing != nil {
		existing.Plan = db_models.SubscriptionPlan(input.Plan)
		existing.Status = db_models.SubStatusActive
		existing.CancelAtPeriodEnd = false
		existing.StripeSubscriptionID = input.StripeSubscriptionID
		if err := b.subRepo.Update(ctx, existing); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	sub := &db_models.Subscription{
		UserID:               user.ID,
		Plan:                 db_models.SubscriptionPlan(input.Plan),
		Status:               db_models.SubStatusActive,
		StripeSubscriptionID: input.StripeSubscriptionID,
	}
	if err := b.subRepo.Insert(ctx, sub); err != nil {
		if utils.IsUniqueViolation(err) {
			// Replayed webhook raced an earlier delivery; already active.
			return nil
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *billingService) handlePaymentFailed(ctx context.Context, invoice *stripe.InvoiceObject) error {
	// The invoice payload comes straight off the wire; screen it before any
	// state changes so a malformed amount or currency never lands in a row.
	description := "subscription renewal failed"
	input := request_models.CreatePaymentRequest{
		AmountMinor: invoice.AmountDue,
		Currency:    invoice.Currency,
		Status:      string(db_models.PaymentStatusFailed),
		Description: &description,
	}
	if invoice.PaymentIntent != "" {
		input.StripePaymentIntentID = &invoice.PaymentIntent
	}
	if err := utils.ValidateInput(input); err != nil {
		return err
	}

	if invoice.Subscription != "" {
		sub, err := b.subRepo.FindByStripeSubID(ctx, invoice.Subscription)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if sub != nil && sub.Status != db_models.SubStatusCanceled {
			sub.Status = db_models.SubStatusPastDue
			if err := b.subRepo.Update(ctx, sub); err != nil {
				return utils.ErrDatabaseError
			}
		}
	}

	// Record the failed charge; invoices have no local pending row.
	payment := &db_models.Payment{
		StripePaymentIntentID: input.StripePaymentIntentID,
		AmountMinor:           input.AmountMinor,
		Currency:              input.Currency,
		Status:                db_models.PaymentStatus(input.Status),
		Description:           input.Description,
	}
	if input.StripePaymentIntentID != nil {
		existing, err := b.paymentRepo.FindByStripePaymentIntentID(ctx, *input.StripePaymentIntentID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if existing != nil {
			return nil // already recorded
		}
	}
	if user, err := b.userRepo.FindByStripeCustomerID(ctx, invoice.Customer); err == nil && user != nil {
		payment.UserID = &user.ID
	}

	if err := b.paymentRepo.Insert(ctx, payment); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *billingService) handleSubscriptionChange(ctx context.Context, eventType string, obj *stripe.SubscriptionObject) error {
	sub, err := b.subRepo.FindByStripeSubID(ctx, obj.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		log.Printf("webhook: subscription %s not tracked", obj.ID)
		return nil
	}

	if eventType == "customer.subscription.deleted" {
		sub.Status = db_models.SubStatusCanceled
	} else {
		sub.Status = mapProviderStatus(obj.Status)
	}
	sub.CancelAtPeriodEnd = obj.CancelAtPeriodEnd
	if obj.CurrentPeriodStart > 0 {
		sub.CurrentPeriodStart = &obj.CurrentPeriodStart
	}
	if obj.CurrentPeriodEnd > 0 {
		sub.CurrentPeriodEnd = &obj.CurrentPeriodEnd
	}

	if err := b.subRepo.Update(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// mapProviderStatus folds Stripe's richer status set onto ours.
func mapProviderStatus(status string) db_models.SubscriptionStatus {
	switch status {
	case "active", "trialing":
		return db_models.SubStatusActive
	case "past_due", "unpaid", "incomplete":
		return db_models.SubStatusPastDue
	default:
		return db_models.SubStatusCanceled
	}
}

func (b *billingService) ConfirmSuccess(ctx context.Context, sessionID string) (*response_models.PaymentResultResponse, error) {
	session, err := b.client.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrPaymentNotFound
	}

	if session.PaymentStatus != "paid" {
		return &response_models.PaymentResultResponse{Status: string(db_models.PaymentStatusPending)}, nil
	}

	// The webhook normally lands first; settling here covers delivery gaps.
	if err := b.handleCheckoutCompleted(ctx, session); err != nil {
		return nil, err
	}

	return &response_models.PaymentResultResponse{
		Status:      string(db_models.PaymentStatusSucceeded),
		Plan:        session.Metadata["plan"],
		AmountMinor: session.AmountTotal,
		Currency:    session.Currency,
	}, nil
}

func (b *billingService) ConfirmCancel(ctx context.Context, sessionID string) (*response_models.PaymentResultResponse, error) {
	session, err := b.client.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrPaymentNotFound
	}

	if paymentID := session.Metadata["payment_id"]; paymentID != "" {
		payment, err := b.paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if payment != nil && !payment.Settled() {
			payment.Status = db_models.PaymentStatusFailed
			description := "checkout canceled"
			payment.Description = &description
			if err := b.paymentRepo.Update(ctx, payment); err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
	}

	return &response_models.PaymentResultResponse{
		Status: string(db_models.PaymentStatusFailed),
		Plan:   session.Metadata["plan"],
	}, nil
}
