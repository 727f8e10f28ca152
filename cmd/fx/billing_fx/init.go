package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/config"
	"lifesync/internal/repositories"
	"lifesync/internal/services"
	"lifesync/pkg/stripe"
)

var Module = fx.Provide(
	providePaymentRepo, provideStripeClient, provideBillingService)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideStripeClient(cfg config.Config) services.StripeAPI {
	return stripe.NewClient(cfg.StripeSecretKey)
}

func provideBillingService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
	client services.StripeAPI,
	cfg config.Config,
) services.BillingService {
	return services.NewBillingService(userRepo, subRepo, paymentRepo, client, services.BillingConfig{
		WebhookSecret: cfg.StripeWebhookSecret,
		SuccessURL:    cfg.CheckoutSuccessURL,
		CancelURL:     cfg.CheckoutCancelURL,
	})
}
