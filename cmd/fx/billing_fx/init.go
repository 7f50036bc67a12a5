package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lumen/internal/api/controllers"
	"lumen/internal/config"
	"lumen/internal/repositories"
	"lumen/internal/services"
	"lumen/pkg/gateway"
)

var Module = fx.Provide(
	providePlanCatalog,
	provideGateway,
	provideTransactionRepo,
	provideBillingService,
	provideBillingController,
)

func providePlanCatalog() *config.PlanCatalog {
	return config.NewPlanCatalog(config.DefaultPlans())
}

func provideGateway(cfg *config.Config) gateway.PaymentGateway {
	return gateway.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideBillingService(
	ledger repositories.TransactionRepository,
	catalog *config.PlanCatalog,
	gw gateway.PaymentGateway,
	cfg *config.Config,
) services.BillingServiceInterface {
	return services.NewBillingService(ledger, catalog, gw, cfg)
}

func provideBillingController(billingService services.BillingServiceInterface) *controllers.BillingController {
	return controllers.NewBillingController(billingService)
}
