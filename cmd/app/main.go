package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/cmd/fx/account_fx"
	"lifesync/cmd/fx/assistant_fx"
	"lifesync/cmd/fx/billing_fx"
	"lifesync/cmd/fx/config_fx"
	"lifesync/cmd/fx/contact_fx"
	"lifesync/cmd/fx/controllers_fx"
	"lifesync/cmd/fx/dashboard_fx"
	"lifesync/cmd/fx/db_fx"
	"lifesync/cmd/fx/gate_fx"
	"lifesync/cmd/fx/goal_fx"
	"lifesync/cmd/fx/mail_fx"
	"lifesync/cmd/fx/memcache_fx"
	"lifesync/cmd/fx/minigame_fx"
	"lifesync/cmd/fx/newsletter_fx"
	"lifesync/cmd/fx/reward_fx"
	"lifesync/internal/api/controllers"
	"lifesync/internal/config"
	"lifesync/internal/infra"
	"lifesync/pkg/middleware"
	"lifesync/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		gate_fx.Module,
		account_fx.Module,
		contact_fx.Module,
		newsletter_fx.Module,
		reward_fx.Module,
		goal_fx.Module,
		minigame_fx.Module,
		dashboard_fx.Module,
		billing_fx.Module,
		assistant_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(ConfigureAuth),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ConfigureAuth(cfg config.Config) {
	utils.SetJWTKey(cfg.JWTSecret)
}

func Migrate(db *gorm.DB) error {
	return infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	gateController *controllers.GateController,
	accountController *controllers.AccountController,
	contactController *controllers.ContactController,
	newsletterController *controllers.NewsletterController,
	goalController *controllers.GoalController,
	rewardController *controllers.RewardController,
	minigameController *controllers.MinigameController,
	dashboardController *controllers.DashboardController,
	billingController *controllers.BillingController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		gateController,
		accountController,
		contactController,
		newsletterController,
		goalController,
		rewardController,
		minigameController,
		dashboardController,
		billingController,
		assistantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	gateController *controllers.GateController,
	accountController *controllers.AccountController,
	contactController *controllers.ContactController,
	newsletterController *controllers.NewsletterController,
	goalController *controllers.GoalController,
	rewardController *controllers.RewardController,
	minigameController *controllers.MinigameController,
	dashboardController *controllers.DashboardController,
	billingController *controllers.BillingController,
	assistantController *controllers.AssistantController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(middleware.NotFoundHandler())

	// Reachable without a gate token: the unlock endpoint itself and the
	// Stripe webhook, which authenticates with its own signature.
	r.POST("/api/auth/password", gateController.Unlock)
	r.POST("/api/billing/webhook", billingController.Webhook)

	api := r.Group("/api", middleware.GateMiddleware())
	{
		api.POST("/accounts/register", accountController.Register)
		api.POST("/accounts/login", accountController.Login)

		api.POST("/contacts", contactController.Submit)
		api.GET("/contacts", contactController.List)
		api.PATCH("/contacts/:id/status", contactController.UpdateStatus)

		api.POST("/newsletter/subscribe", newsletterController.Subscribe)
		api.POST("/newsletter/unsubscribe", newsletterController.Unsubscribe)

		api.GET("/billing/plans", billingController.Plans)
		api.GET("/payment/success", billingController.PaymentSuccess)
		api.GET("/payment/cancel", billingController.PaymentCancel)
	}

	user := api.Group("", middleware.JWTAuthMiddleware())
	{
		user.POST("/goals", goalController.Create)
		user.GET("/goals", goalController.List)
		user.PATCH("/goals/:id", goalController.Update)
		user.POST("/goals/:id/complete", goalController.Complete)

		user.GET("/rewards", rewardController.Get)

		user.POST("/minigames", minigameController.Record)
		user.GET("/minigames", minigameController.List)

		user.POST("/billing/checkout", billingController.Checkout)
		user.GET("/dashboard", dashboardController.Get)
		user.GET("/dashboard/:section", dashboardController.Get)
		user.POST("/assistant/chat", assistantController.Chat)
	}
}
