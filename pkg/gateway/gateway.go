package gateway

import (
	"context"
	"errors"
)

type SessionStatus string

const (
	StatusPaid   SessionStatus = "paid"
	StatusUnpaid SessionStatus = "unpaid"
)

// ErrInvalidSignature is returned when a webhook payload does not verify
// against the shared secret. Callers must fail closed without side effects.
var ErrInvalidSignature = errors.New("gateway: invalid webhook signature")

type CreateSessionParams struct {
	AmountMinor   int64
	Currency      string
	ProductName   string
	SuccessURL    string
	CancelURL     string
	ExpiresAt     int64
	TransactionID string // correlation metadata, echoed back by the gateway
}

type CheckoutSession struct {
	ID  string
	URL string
}

type WebhookEvent struct {
	Type string
	// SessionID is empty for event types the service does not settle on.
	SessionID string
}

// PaymentGateway is the external payment processor. The gateway is the
// authoritative source for payment status; local state never overrides it.
type PaymentGateway interface {
	Provider() string
	CreateSession(ctx context.Context, params CreateSessionParams) (*CheckoutSession, error)
	FetchSessionStatus(ctx context.Context, sessionID string) (SessionStatus, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
