package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusSettled   TransactionStatus = "settled"
	TxnStatusFailed    TransactionStatus = "failed"
	TxnStatusAbandoned TransactionStatus = "abandoned"
)

// Transaction is one credit-purchase attempt. A row transitions from
// pending to exactly one of settled, failed or abandoned; settled rows
// are the only ones that ever grant credits, and each grants at most once.
type Transaction struct {
	BaseModel
	AccountID   uuid.UUID         `gorm:"index;not null"`
	PlanCode    string            `gorm:"index;not null"`
	AmountMinor int64             // e.g. 1000 = $10.00
	Currency    string            `gorm:"size:3"`
	Credits     int64             // credits granted on settlement
	Status      TransactionStatus `gorm:"index;default:'pending'"`

	// Gateway correlation
	Provider          string `gorm:"index"`
	ProviderSessionID string `gorm:"index"`

	PaidAt    *int64
	ExpiresAt int64 // checkout session deadline, unix seconds

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
