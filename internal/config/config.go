package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from
// environment variables.
type Config struct {
	Port        string `mapstructure:"PORT"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Shared password protecting the whole site.
	SitePassword string `mapstructure:"SITE_PASSWORD"`

	// Stripe billing.
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	CheckoutSuccessURL  string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL   string `mapstructure:"CHECKOUT_CANCEL_URL"`

	// Assistant provider: "openai" or "gemini".
	AssistantProvider string `mapstructure:"ASSISTANT_PROVIDER"`
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`

	// Analytics measurement id; optional, absence is logged and skipped.
	GAMeasurementID string `mapstructure:"GA_MEASUREMENT_ID"`

	// SMTP for contact/newsletter notifications.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	ContactInbox string `mapstructure:"CONTACT_INBOX"`
}

var keys = []string{
	"PORT", "POSTGRES_URL", "JWT_SECRET", "SITE_PASSWORD",
	"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET",
	"CHECKOUT_SUCCESS_URL", "CHECKOUT_CANCEL_URL",
	"ASSISTANT_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY",
	"GA_MEASUREMENT_ID",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD",
	"SMTP_FROM", "CONTACT_INBOX",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ASSISTANT_PROVIDER", "openai")
	viper.SetDefault("SMTP_PORT", 587)
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	for _, k := range keys {
		_ = viper.BindEnv(k)
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.GAMeasurementID == "" {
		log.Println("Warning: missing GA_MEASUREMENT_ID, analytics disabled")
	}

	return config, nil
}
