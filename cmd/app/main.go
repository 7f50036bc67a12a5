package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"lumen/cmd/fx/account_fx"
	"lumen/cmd/fx/billing_fx"
	"lumen/cmd/fx/chat_fx"
	"lumen/cmd/fx/db_fx"
	"lumen/cmd/fx/generation_fx"
	"lumen/internal/api/controllers"
	"lumen/internal/config"
	"lumen/internal/services"
	"lumen/pkg/metrics"
	"lumen/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		billing_fx.Module,
		chat_fx.Module,
		generation_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartSettlementSweep),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartSettlementSweep periodically reconciles pending checkouts stuck past
// their deadline against the gateway.
func StartSettlementSweep(lc fx.Lifecycle, billingService services.BillingServiceInterface) {
	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		billingService.SweepExpiredCheckouts(context.Background())
	}); err != nil {
		log.Fatalf("Failed to schedule settlement sweep: %v", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	billingController *controllers.BillingController,
	generationController *controllers.GenerationController,
	chatController *controllers.ChatController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, billingController, generationController, chatController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	accountController *controllers.AccountController,
	billingController *controllers.BillingController,
	generationController *controllers.GenerationController,
	chatController *controllers.ChatController,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Working Properly")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Webhook delivery needs the raw body for signature verification, so it
	// is registered outside any group that might parse it.
	r.POST("/api/stripe", billingController.HandleWebhook)

	userGroup := r.Group("/api/user")
	userGroup.POST("/register", accountController.Register)
	userGroup.POST("/login", accountController.Login)
	userGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	billingGroup := r.Group("/api/billing")
	billingGroup.GET("/plans", billingController.ListPlans)
	billingGroup.POST("/checkout", middleware.JWTAuthMiddleware(), billingController.CreateCheckout)
	billingGroup.POST("/verify", middleware.JWTAuthMiddleware(), billingController.VerifyCheckout)

	r.POST("/api/image/generate", middleware.JWTAuthMiddleware(), generationController.GenerateImage)
	r.POST("/api/message/text", middleware.JWTAuthMiddleware(), generationController.TextMessage)

	chatGroup := r.Group("/api/chat", middleware.JWTAuthMiddleware())
	chatGroup.POST("", chatController.CreateChat)
	chatGroup.GET("", chatController.ListChats)
	chatGroup.DELETE("/:id", chatController.DeleteChat)

	r.GET("/api/community/images", chatController.PublishedImages)
}
