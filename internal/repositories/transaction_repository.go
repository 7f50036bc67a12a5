package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lumen/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.Transaction, error)
	AttachSession(ctx context.Context, id uuid.UUID, provider, sessionID string) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	// Settle flips the row from pending to settled and grants the credits
	// to the owning account in one database transaction. The conditional
	// status flip is the idempotency guard: a row that is no longer
	// pending settles nothing and Settle returns false.
	Settle(ctx context.Context, txn *db_models.Transaction) (bool, error)
	// MarkAbandoned is terminal and only applies to rows still pending.
	MarkAbandoned(ctx context.Context, id uuid.UUID) (bool, error)
	ListExpiredPending(ctx context.Context, now int64, limit int) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).First(&txn, "provider_session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) AttachSession(ctx context.Context, id uuid.UUID, provider, sessionID string) error {
	return r.db.WithContext(ctx).Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"provider":            provider,
			"provider_session_id": sessionID,
		}).Error
}

func (r *transactionRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("status", db_models.TxnStatusFailed).Error
}

func (r *transactionRepository) Settle(ctx context.Context, txn *db_models.Transaction) (bool, error) {
	settled := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status":  db_models.TxnStatusSettled,
				"paid_at": time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		settled = true
		return tx.Model(&db_models.Account{}).
			Where("id = ?", txn.AccountID).
			UpdateColumn("credit_balance", gorm.Expr("credit_balance + ?", txn.Credits)).Error
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

func (r *transactionRepository) MarkAbandoned(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Transaction{}).
		Where("id = ? AND status = ?", id, db_models.TxnStatusPending).
		Update("status", db_models.TxnStatusAbandoned)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *transactionRepository) ListExpiredPending(ctx context.Context, now int64, limit int) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", db_models.TxnStatusPending, now).
		Order("created_at ASC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}
