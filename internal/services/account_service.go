package services

import (
	"context"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/logger"
	"tripforge/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		logger.Error("find account failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role, account.Name)
	if err != nil {
		logger.Error("token generation failed", logger.Err(err))
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: buildAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		logger.Error("find account failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &dbm.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         dbm.RoleTraveler,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		logger.Error("insert account failed", logger.Err(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		logger.Error("find account failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := buildAccountResponse(account)
	return &resp, nil
}

func buildAccountResponse(account *dbm.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
}
