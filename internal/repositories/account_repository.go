package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripforge/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListAdmins(ctx context.Context) ([]db_models.Account, error)
	CountAll(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
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

func (a *accountRepository) ListAdmins(ctx context.Context) ([]db_models.Account, error) {
	var admins []db_models.Account
	err := a.db.WithContext(ctx).
		Where("role = ?", db_models.RoleAdmin).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (a *accountRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Count(&count).Error
	return count, err
}
