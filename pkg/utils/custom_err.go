package utils

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyProcessed    = errors.New("payment already processed")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrChatNotFound        = errors.New("chat not found")
	ErrGatewayFailure      = errors.New("payment gateway error")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrDatabaseError       = errors.New("database error")
)
