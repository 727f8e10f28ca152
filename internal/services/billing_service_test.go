package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/pkg/stripe"
	"lifesync/pkg/utils"
)

const testWebhookSecret = "whsec_test"

func seedUser(repo *fakeUserRepo) *db_models.User {
	u := &db_models.User{Email: "jamie@example.com", Username: "jamie"}
	u.ID = uuid.New()
	repo.users[u.ID.String()] = u
	return u
}

func newBillingFixture(client StripeAPI) (*fakeUserRepo, *fakeSubRepo, *fakePaymentRepo, BillingService) {
	users := newFakeUserRepo()
	subs := &fakeSubRepo{}
	payments := newFakePaymentRepo()
	svc := NewBillingService(users, subs, payments, client, BillingConfig{
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://app.example.com/payment/success",
		CancelURL:     "https://app.example.com/payment/cancel",
	})
	return users, subs, payments, svc
}

func TestBillingServicePlans(t *testing.T) {
	_, _, _, svc := newBillingFixture(&fakeStripe{})

	plans := svc.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "basic", plans[0].Code)
	assert.Equal(t, int64(2900), plans[0].PriceMinor)
	assert.Equal(t, "pro", plans[1].Code)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, "enterprise", plans[2].Code)
	assert.Equal(t, int64(19900), plans[2].PriceMinor)
}

func TestBillingServiceCreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path records a pending payment and returns the session", func(t *testing.T) {
		client := &fakeStripe{
			session:  &stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"},
			customer: &stripe.Customer{ID: "cus_1"},
		}
		users, _, payments, svc := newBillingFixture(client)
		user := seedUser(users)

		resp, err := svc.CreateCheckout(ctx, user.ID.String(), request_models.CheckoutRequest{Plan: "pro"})
		require.NoError(t, err)
		assert.Equal(t, "cs_1", resp.SessionID)
		assert.Equal(t, "https://checkout.stripe.com/cs_1", resp.CheckoutURL)
		assert.Equal(t, int64(7900), resp.AmountMinor)

		require.Len(t, payments.payments, 1)
		for _, p := range payments.payments {
			assert.Equal(t, db_models.PaymentStatusPending, p.Status)
			assert.Equal(t, int64(7900), p.AmountMinor)
		}

		require.Len(t, client.checkoutParams, 1)
		params := client.checkoutParams[0]
		assert.Equal(t, "cus_1", params.Customer)
		assert.Equal(t, "pro", params.Metadata["plan"])
		assert.Equal(t, user.ID.String(), params.Metadata["user_id"])
		assert.NotEmpty(t, params.Metadata["payment_id"])

		// The created customer id sticks to the user.
		require.NotNil(t, user.StripeCustomerID)
		assert.Equal(t, "cus_1", *user.StripeCustomerID)
	})

	t.Run("existing customer id is reused", func(t *testing.T) {
		client := &fakeStripe{
			session:     &stripe.CheckoutSession{ID: "cs_1", URL: "https://x"},
			customerErr: errors.New("must not be called"),
		}
		users, _, _, svc := newBillingFixture(client)
		user := seedUser(users)
		existing := "cus_known"
		user.StripeCustomerID = &existing

		_, err := svc.CreateCheckout(ctx, user.ID.String(), request_models.CheckoutRequest{Plan: "basic"})
		require.NoError(t, err)
		assert.Equal(t, "cus_known", client.checkoutParams[0].Customer)
	})

	t.Run("provider failure marks the pending payment failed", func(t *testing.T) {
		client := &fakeStripe{
			sessionErr: errors.New("stripe unavailable"),
			customer:   &stripe.Customer{ID: "cus_1"},
		}
		users, _, payments, svc := newBillingFixture(client)
		user := seedUser(users)

		_, err := svc.CreateCheckout(ctx, user.ID.String(), request_models.CheckoutRequest{Plan: "basic"})
		require.Error(t, err)

		require.Len(t, payments.payments, 1)
		for _, p := range payments.payments {
			assert.Equal(t, db_models.PaymentStatusFailed, p.Status)
		}
	})

	t.Run("unknown plan is rejected by validation", func(t *testing.T) {
		users, _, _, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		_, err := svc.CreateCheckout(ctx, user.ID.String(), request_models.CheckoutRequest{Plan: "ultra"})
		require.Error(t, err)

		var verr *utils.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, _, _, svc := newBillingFixture(&fakeStripe{})

		_, err := svc.CreateCheckout(ctx, uuid.NewString(), request_models.CheckoutRequest{Plan: "basic"})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func signedPayload(t *testing.T, payload string) ([]byte, string) {
	t.Helper()
	raw := []byte(payload)
	return raw, stripe.SignPayload(raw, testWebhookSecret, time.Now())
}

func checkoutCompletedPayload(paymentID, userID, plan string) string {
	return fmt.Sprintf(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"payment_status": "paid",
			"payment_intent": "pi_1",
			"subscription": "sub_1",
			"metadata": {"payment_id": %q, "user_id": %q, "plan": %q}
		}}
	}`, paymentID, userID, plan)
}

func TestBillingServiceHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a bad signature", func(t *testing.T) {
		_, _, _, svc := newBillingFixture(&fakeStripe{})

		err := svc.HandleWebhook(ctx, []byte(`{}`), "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, utils.ErrWebhookSignature)
	})

	t.Run("checkout completion settles the payment and activates the plan", func(t *testing.T) {
		users, subs, payments, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 7900, Status: db_models.PaymentStatusPending}
		require.NoError(t, payments.Insert(ctx, payment))

		raw, sig := signedPayload(t, checkoutCompletedPayload(payment.ID.String(), user.ID.String(), "pro"))
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		assert.Equal(t, db_models.PaymentStatusSucceeded, payment.Status)
		require.NotNil(t, payment.StripePaymentIntentID)
		assert.Equal(t, "pi_1", *payment.StripePaymentIntentID)

		sub, err := subs.FindByUserID(ctx, user.ID.String())
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, db_models.PlanPro, sub.Plan)
		assert.Equal(t, db_models.SubStatusActive, sub.Status)
		require.NotNil(t, sub.StripeSubscriptionID)
		assert.Equal(t, "sub_1", *sub.StripeSubscriptionID)
	})

	t.Run("a replayed completion event is idempotent", func(t *testing.T) {
		users, subs, payments, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 7900, Status: db_models.PaymentStatusPending}
		require.NoError(t, payments.Insert(ctx, payment))

		raw, sig := signedPayload(t, checkoutCompletedPayload(payment.ID.String(), user.ID.String(), "pro"))
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		assert.Len(t, subs.subs, 1)
		assert.Equal(t, db_models.PaymentStatusSucceeded, payment.Status)
	})

	t.Run("completion upgrades an existing subscription in place", func(t *testing.T) {
		users, subs, payments, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		require.NoError(t, subs.Insert(ctx, &db_models.Subscription{
			UserID: user.ID,
			Plan:   db_models.PlanBasic,
			Status: db_models.SubStatusActive,
		}))

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 19900, Status: db_models.PaymentStatusPending}
		require.NoError(t, payments.Insert(ctx, payment))

		raw, sig := signedPayload(t, checkoutCompletedPayload(payment.ID.String(), user.ID.String(), "enterprise"))
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		require.Len(t, subs.subs, 1)
		assert.Equal(t, db_models.PlanEnterprise, subs.subs[0].Plan)
	})

	t.Run("an unknown payment id is acked without error", func(t *testing.T) {
		_, _, _, svc := newBillingFixture(&fakeStripe{})

		raw, sig := signedPayload(t, checkoutCompletedPayload(uuid.NewString(), uuid.NewString(), "pro"))
		assert.NoError(t, svc.HandleWebhook(ctx, raw, sig))
	})

	t.Run("invoice failure moves the subscription to past_due", func(t *testing.T) {
		users, subs, payments, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)
		customerID := "cus_1"
		user.StripeCustomerID = &customerID

		subID := "sub_1"
		require.NoError(t, subs.Insert(ctx, &db_models.Subscription{
			UserID:               user.ID,
			Plan:                 db_models.PlanPro,
			Status:               db_models.SubStatusActive,
			StripeSubscriptionID: &subID,
		}))

		raw, sig := signedPayload(t, `{
			"id": "evt_2",
			"type": "invoice.payment_failed",
			"data": {"object": {
				"id": "in_1",
				"customer": "cus_1",
				"subscription": "sub_1",
				"payment_intent": "pi_fail",
				"amount_due": 7900,
				"currency": "usd"
			}}
		}`)
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		assert.Equal(t, db_models.SubStatusPastDue, subs.subs[0].Status)

		failed, err := payments.FindByStripePaymentIntentID(ctx, "pi_fail")
		require.NoError(t, err)
		require.NotNil(t, failed)
		assert.Equal(t, db_models.PaymentStatusFailed, failed.Status)
		assert.Equal(t, int64(7900), failed.AmountMinor)
		require.NotNil(t, failed.UserID)
		assert.Equal(t, user.ID, *failed.UserID)

		// A redelivery does not record a second failed payment.
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))
		assert.Len(t, payments.payments, 1)
	})

	t.Run("invoice failure with a negative amount persists nothing", func(t *testing.T) {
		users, subs, payments, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)
		customerID := "cus_1"
		user.StripeCustomerID = &customerID

		subID := "sub_1"
		require.NoError(t, subs.Insert(ctx, &db_models.Subscription{
			UserID:               user.ID,
			Plan:                 db_models.PlanPro,
			Status:               db_models.SubStatusActive,
			StripeSubscriptionID: &subID,
		}))

		raw, sig := signedPayload(t, `{
			"id": "evt_2b",
			"type": "invoice.payment_failed",
			"data": {"object": {
				"id": "in_2",
				"customer": "cus_1",
				"subscription": "sub_1",
				"payment_intent": "pi_neg",
				"amount_due": -100,
				"currency": "usd"
			}}
		}`)
		err := svc.HandleWebhook(ctx, raw, sig)
		require.Error(t, err)

		var verr *utils.ValidationError
		assert.True(t, errors.As(err, &verr))

		assert.Empty(t, payments.payments)
		assert.Equal(t, db_models.SubStatusActive, subs.subs[0].Status)
	})

	t.Run("subscription deletion cancels the local row", func(t *testing.T) {
		users, subs, _, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		subID := "sub_1"
		require.NoError(t, subs.Insert(ctx, &db_models.Subscription{
			UserID:               user.ID,
			Plan:                 db_models.PlanPro,
			Status:               db_models.SubStatusActive,
			StripeSubscriptionID: &subID,
		}))

		raw, sig := signedPayload(t, `{
			"id": "evt_3",
			"type": "customer.subscription.deleted",
			"data": {"object": {"id": "sub_1", "status": "canceled"}}
		}`)
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		assert.Equal(t, db_models.SubStatusCanceled, subs.subs[0].Status)
	})

	t.Run("subscription update maps provider status and period bounds", func(t *testing.T) {
		users, subs, _, svc := newBillingFixture(&fakeStripe{})
		user := seedUser(users)

		subID := "sub_1"
		require.NoError(t, subs.Insert(ctx, &db_models.Subscription{
			UserID:               user.ID,
			Plan:                 db_models.PlanPro,
			Status:               db_models.SubStatusActive,
			StripeSubscriptionID: &subID,
		}))

		raw, sig := signedPayload(t, `{
			"id": "evt_4",
			"type": "customer.subscription.updated",
			"data": {"object": {
				"id": "sub_1",
				"status": "past_due",
				"cancel_at_period_end": true,
				"current_period_start": 1700000000,
				"current_period_end": 1702592000
			}}
		}`)
		require.NoError(t, svc.HandleWebhook(ctx, raw, sig))

		updated := subs.subs[0]
		assert.Equal(t, db_models.SubStatusPastDue, updated.Status)
		assert.True(t, updated.CancelAtPeriodEnd)
		require.NotNil(t, updated.CurrentPeriodStart)
		assert.Equal(t, int64(1700000000), *updated.CurrentPeriodStart)
		require.NotNil(t, updated.CurrentPeriodEnd)
		assert.Equal(t, int64(1702592000), *updated.CurrentPeriodEnd)
	})

	t.Run("unhandled event types are acked", func(t *testing.T) {
		_, _, _, svc := newBillingFixture(&fakeStripe{})

		raw, sig := signedPayload(t, `{"id": "evt_5", "type": "charge.refunded", "data": {"object": {}}}`)
		assert.NoError(t, svc.HandleWebhook(ctx, raw, sig))
	})
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]db_models.SubscriptionStatus{
		"active":             db_models.SubStatusActive,
		"trialing":           db_models.SubStatusActive,
		"past_due":           db_models.SubStatusPastDue,
		"unpaid":             db_models.SubStatusPastDue,
		"incomplete":         db_models.SubStatusPastDue,
		"canceled":           db_models.SubStatusCanceled,
		"incomplete_expired": db_models.SubStatusCanceled,
	}
	for in, want := range cases {
		assert.Equal(t, want, mapProviderStatus(in), "status %q", in)
	}
}

func TestBillingServiceConfirmSuccess(t *testing.T) {
	ctx := context.Background()

	t.Run("paid session settles when the webhook never landed", func(t *testing.T) {
		client := &fakeStripe{}
		users, subs, payments, svc := newBillingFixture(client)
		user := seedUser(users)

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 2900, Status: db_models.PaymentStatusPending}
		require.NoError(t, payments.Insert(ctx, payment))

		client.fetched = &stripe.CheckoutSession{
			ID:            "cs_1",
			PaymentStatus: "paid",
			Subscription:  "sub_1",
			AmountTotal:   2900,
			Currency:      "usd",
			Metadata: map[string]string{
				"payment_id": payment.ID.String(),
				"user_id":    user.ID.String(),
				"plan":       "basic",
			},
		}

		resp, err := svc.ConfirmSuccess(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, "succeeded", resp.Status)
		assert.Equal(t, "basic", resp.Plan)
		assert.Equal(t, db_models.PaymentStatusSucceeded, payment.Status)
		assert.Len(t, subs.subs, 1)
	})

	t.Run("unpaid session reports pending", func(t *testing.T) {
		client := &fakeStripe{fetched: &stripe.CheckoutSession{ID: "cs_1", PaymentStatus: "unpaid"}}
		_, _, _, svc := newBillingFixture(client)

		resp, err := svc.ConfirmSuccess(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		client := &fakeStripe{fetchErr: errors.New("no such session")}
		_, _, _, svc := newBillingFixture(client)

		_, err := svc.ConfirmSuccess(ctx, "cs_missing")
		assert.ErrorIs(t, err, utils.ErrPaymentNotFound)
	})
}

func TestBillingServiceConfirmCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel marks the unsettled payment failed", func(t *testing.T) {
		client := &fakeStripe{}
		users, _, payments, svc := newBillingFixture(client)
		user := seedUser(users)

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 2900, Status: db_models.PaymentStatusPending}
		require.NoError(t, payments.Insert(ctx, payment))

		client.fetched = &stripe.CheckoutSession{
			ID:       "cs_1",
			Metadata: map[string]string{"payment_id": payment.ID.String(), "plan": "basic"},
		}

		resp, err := svc.ConfirmCancel(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, "failed", resp.Status)
		assert.Equal(t, db_models.PaymentStatusFailed, payment.Status)
	})

	t.Run("a settled payment is left alone", func(t *testing.T) {
		client := &fakeStripe{}
		users, _, payments, svc := newBillingFixture(client)
		user := seedUser(users)

		payment := &db_models.Payment{UserID: &user.ID, AmountMinor: 2900, Status: db_models.PaymentStatusSucceeded}
		require.NoError(t, payments.Insert(ctx, payment))

		client.fetched = &stripe.CheckoutSession{
			ID:       "cs_1",
			Metadata: map[string]string{"payment_id": payment.ID.String()},
		}

		_, err := svc.ConfirmCancel(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, db_models.PaymentStatusSucceeded, payment.Status)
	})
}
