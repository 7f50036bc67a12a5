package services

import (
	"context"

	"github.com/google/uuid"

	"lumen/internal/models/db_models"
	"lumen/internal/models/request_models"
	"lumen/internal/models/response_models"
	"lumen/internal/repositories"
	"lumen/pkg/utils"
)

// StartingCredits is the grant every fresh account receives.
const StartingCredits = 5

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Profile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:          request.Name,
		Email:         request.Email,
		PasswordHash:  hashedPassword,
		CreditBalance: StartingCredits,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		Token: token,
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

func (a *AccountService) Profile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.ProfileResponse{
		Name:    account.Name,
		Email:   account.Email,
		Credits: account.CreditBalance,
	}, nil
}
