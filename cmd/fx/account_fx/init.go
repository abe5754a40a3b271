package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripforge/internal/config"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens)
}
