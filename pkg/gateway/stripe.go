package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{webhookSecret: webhookSecret}
}

func (g *StripeGateway) Provider() string { return "stripe" }

func (g *StripeGateway) CreateSession(ctx context.Context, p CreateSessionParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(p.Currency)),
					UnitAmount: stripe.Int64(p.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	if p.ExpiresAt > 0 {
		params.ExpiresAt = stripe.Int64(p.ExpiresAt)
	}
	params.AddMetadata("transaction_id", p.TransactionID)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) FetchSessionStatus(ctx context.Context, sessionID string) (SessionStatus, error) {
	s, err := session.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return StatusUnpaid, fmt.Errorf("stripe fetch session: %w", err)
	}
	if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		return StatusPaid, nil
	}
	return StatusUnpaid, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	evt := &WebhookEvent{Type: string(event.Type)}
	if event.Type == "checkout.session.completed" {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, fmt.Errorf("stripe webhook payload: %w", err)
		}
		evt.SessionID = cs.ID
	}
	return evt, nil
}
