package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"lumen/internal/config"
	"lumen/internal/models/db_models"
	"lumen/internal/models/response_models"
	"lumen/internal/repositories"
	"lumen/pkg/gateway"
	"lumen/pkg/metrics"
	"lumen/pkg/utils"
)

// checkoutTTL bounds how long a checkout session stays payable. Anything
// still pending past this deadline is picked up by the sweep.
const checkoutTTL = 30 * time.Minute

type BillingServiceInterface interface {
	ListPlans() []config.Plan
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CheckoutResponse, error)
	VerifyCheckout(ctx context.Context, sessionID string) (*response_models.SettlementResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
	SweepExpiredCheckouts(ctx context.Context)
}

type BillingService struct {
	ledger  repositories.TransactionRepository
	catalog *config.PlanCatalog
	gw      gateway.PaymentGateway

	successURL string
	cancelURL  string
}

func NewBillingService(
	ledger repositories.TransactionRepository,
	catalog *config.PlanCatalog,
	gw gateway.PaymentGateway,
	cfg *config.Config,
) BillingServiceInterface {
	return &BillingService{
		ledger:     ledger,
		catalog:    catalog,
		gw:         gw,
		successURL: cfg.CheckoutSuccessURL,
		cancelURL:  cfg.CheckoutCancelURL,
	}
}

func (b *BillingService) ListPlans() []config.Plan {
	return b.catalog.All()
}

// CreateCheckoutForPlan records a pending ledger entry for the plan, opens a
// gateway checkout session carrying the entry id as correlation metadata,
// and hands the session descriptor back to the caller.
func (b *BillingService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CheckoutResponse, error) {
	plan, ok := b.catalog.Find(planCode)
	if !ok {
		return nil, utils.ErrPlanNotFound
	}

	txn := &db_models.Transaction{
		AccountID:   accountID,
		PlanCode:    plan.Code,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Credits:     plan.Credits,
		Status:      db_models.TxnStatusPending,
		ExpiresAt:   time.Now().Add(checkoutTTL).Unix(),
	}
	if meta, err := json.Marshal(map[string]string{"plan_code": plan.Code, "plan_name": plan.Name}); err == nil {
		txn.Metadata = meta
	}
	if err := b.ledger.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	sess, err := b.gw.CreateSession(ctx, gateway.CreateSessionParams{
		AmountMinor:   plan.PriceMinor,
		Currency:      plan.Currency,
		ProductName:   plan.Name,
		SuccessURL:    b.successURL,
		CancelURL:     b.cancelURL,
		ExpiresAt:     txn.ExpiresAt,
		TransactionID: txn.ID.String(),
	})
	if err != nil {
		log.Printf("checkout: gateway session for txn %s failed: %v", txn.ID, err)
		if markErr := b.ledger.MarkFailed(ctx, txn.ID); markErr != nil {
			log.Printf("checkout: marking txn %s failed: %v", txn.ID, markErr)
		}
		return nil, utils.ErrGatewayFailure
	}

	if err := b.ledger.AttachSession(ctx, txn.ID, b.gw.Provider(), sess.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	metrics.CheckoutsTotal.Inc()

	return &response_models.CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Credits:     plan.Credits,
	}, nil
}

// VerifyCheckout is the synchronous settlement entry point: the client hands
// back the session id after returning from the gateway.
func (b *BillingService) VerifyCheckout(ctx context.Context, sessionID string) (*response_models.SettlementResponse, error) {
	return b.reconcileSession(ctx, sessionID)
}

// ProcessWebhook is the asynchronous settlement entry point. The signature
// is verified before the payload is trusted; failures are rejected with no
// side effects. Events the service does not settle on are acknowledged.
func (b *BillingService) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := b.gw.VerifyWebhook(payload, signature)
	if err != nil {
		metrics.WebhooksRejectedTotal.Inc()
		return utils.ErrInvalidSignature
	}

	if event.SessionID == "" {
		log.Printf("webhook: ignoring event type %s", event.Type)
		return nil
	}

	_, err = b.reconcileSession(ctx, event.SessionID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrAlreadyProcessed),
		errors.Is(err, utils.ErrPaymentNotCompleted):
		// Duplicate or premature delivery; ack so the gateway stops retrying.
		return nil
	case errors.Is(err, utils.ErrTransactionNotFound):
		// Ack to avoid a retry storm, but leave a trail for investigation.
		log.Printf("webhook: no transaction for session %s", event.SessionID)
		return nil
	default:
		return err
	}
}

// reconcileSession is the shared settlement path. The gateway is re-queried
// as the authoritative status source, and the conditional pending→settled
// flip inside Settle guarantees the credit grant applies exactly once no
// matter how many times a session id is presented.
func (b *BillingService) reconcileSession(ctx context.Context, sessionID string) (*response_models.SettlementResponse, error) {
	txn, err := b.ledger.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	if txn.Status == db_models.TxnStatusSettled {
		return nil, utils.ErrAlreadyProcessed
	}

	status, err := b.gw.FetchSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrGatewayFailure
	}
	if status != gateway.StatusPaid {
		return nil, utils.ErrPaymentNotCompleted
	}

	settled, err := b.ledger.Settle(ctx, txn)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !settled {
		return nil, utils.ErrAlreadyProcessed
	}

	metrics.SettlementsTotal.Inc()
	log.Printf("settlement: txn %s granted %d credits to account %s", txn.ID, txn.Credits, txn.AccountID)

	return &response_models.SettlementResponse{
		PlanCode:       txn.PlanCode,
		CreditsGranted: txn.Credits,
	}, nil
}

// SweepExpiredCheckouts re-checks pending entries stuck past their deadline
// against the gateway: paid sessions settle through the normal path,
// everything else is marked abandoned.
func (b *BillingService) SweepExpiredCheckouts(ctx context.Context) {
	txns, err := b.ledger.ListExpiredPending(ctx, time.Now().Unix(), 100)
	if err != nil {
		log.Printf("sweep: listing expired checkouts: %v", err)
		return
	}

	for i := range txns {
		txn := &txns[i]

		if txn.ProviderSessionID != "" {
			status, err := b.gw.FetchSessionStatus(ctx, txn.ProviderSessionID)
			if err != nil {
				log.Printf("sweep: status for txn %s: %v", txn.ID, err)
				continue
			}
			if status == gateway.StatusPaid {
				if settled, err := b.ledger.Settle(ctx, txn); err != nil {
					log.Printf("sweep: settling txn %s: %v", txn.ID, err)
				} else if settled {
					metrics.SettlementsTotal.Inc()
					log.Printf("sweep: late settlement of txn %s", txn.ID)
				}
				continue
			}
		}

		if abandoned, err := b.ledger.MarkAbandoned(ctx, txn.ID); err != nil {
			log.Printf("sweep: abandoning txn %s: %v", txn.ID, err)
		} else if abandoned {
			metrics.AbandonedCheckoutsTotal.Inc()
		}
	}
}
