package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripforge/internal/models/request_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

func newAccountTestService(t *testing.T) (AccountServiceInterface, *utils.TokenIssuer) {
	t.Helper()

	db := newTestDB(t)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	return NewAccountService(repositories.NewAccountRepository(db), issuer), issuer
}

func TestRegisterAndLogin(t *testing.T) {
	accounts, issuer := newAccountTestService(t)
	ctx := context.Background()

	err := accounts.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	result, err := accounts.Login(ctx, request_models.LoginRequest{
		Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "Alice", result.Account.Name)
	require.Equal(t, "traveler", result.Account.Role)

	claims, err := issuer.ValidateToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.Account.ID, claims.Subject)
	require.Equal(t, "traveler", claims.Role)
	require.Equal(t, "Alice", claims.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts, _ := newAccountTestService(t)
	ctx := context.Background()

	req := request_models.SignUpRequest{DisplayName: "Alice", Email: "alice@example.com", Password: "hunter22"}
	require.NoError(t, accounts.CreateAccount(ctx, req))

	err := accounts.CreateAccount(ctx, req)
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	accounts, _ := newAccountTestService(t)
	ctx := context.Background()

	require.NoError(t, accounts.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Alice", Email: "alice@example.com", Password: "hunter22",
	}))

	_, err := accounts.Login(ctx, request_models.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	accounts, _ := newAccountTestService(t)

	_, err := accounts.Login(context.Background(), request_models.LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
