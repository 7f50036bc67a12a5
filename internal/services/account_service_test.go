package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/models/request_models"
	"lumen/pkg/utils"
)

func TestRegisterGrantsStartingCredits(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewAccountService(accounts)

	resp, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Name)

	stored, err := accounts.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(StartingCredits), stored.CreditBalance)
	// Only the bcrypt hash is persisted.
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "hunter22"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewAccountService(accounts)

	req := request_models.SignUpRequest{Name: "alice", Email: "alice@example.com", Password: "hunter22"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRoundTrip(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewAccountService(accounts)

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewAccountService(accounts)

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountStore())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestProfileReportsCurrentBalance(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewAccountService(accounts)
	accountID := accounts.seed("alice", 42)

	profile, err := svc.Profile(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, int64(42), profile.Credits)
}

func TestProfileUnknownAccount(t *testing.T) {
	svc := NewAccountService(newFakeAccountStore())

	_, err := svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
