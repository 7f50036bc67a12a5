package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lumen/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	// AddCredits applies an unconditional atomic increment.
	AddCredits(ctx context.Context, id uuid.UUID, delta int64) error
	// DebitCredits decrements only when the balance covers the cost, as a
	// single conditional update. Returns false when the account could not
	// afford the debit.
	DebitCredits(ctx context.Context, id uuid.UUID, cost int64) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) AddCredits(ctx context.Context, id uuid.UUID, delta int64) error {
	return a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ?", id).
		UpdateColumn("credit_balance", gorm.Expr("credit_balance + ?", delta)).Error
}

func (a *accountRepository) DebitCredits(ctx context.Context, id uuid.UUID, cost int64) (bool, error) {
	res := a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ? AND credit_balance >= ?", id, cost).
		UpdateColumn("credit_balance", gorm.Expr("credit_balance - ?", cost))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
