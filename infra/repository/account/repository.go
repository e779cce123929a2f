package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/kobopay/accountsvc/pkg/domain/account"
	"github.com/kobopay/accountsvc/pkg/dto"
	repo "github.com/kobopay/accountsvc/pkg/repository/account"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&acct).Error
}

// FindByNumber implements account.Repository.
func (r *repository) FindByNumber(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "account_number = ?", accountNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// FindByCustomer implements account.Repository.
func (r *repository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// Debit implements account.Repository. The decrement and the funds check are a
// single UPDATE so concurrent transfers against the same account cannot both
// pass the check against a stale balance.
func (r *repository) Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ? AND balance >= ?", accountNumber, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means either no such account or not enough balance.
		if _, err := r.FindByNumber(ctx, accountNumber); err != nil {
			return err
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

// mapCreateDTOToModel maps AccountCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.AccountCreate) Account {
	return Account{
		ID:            create.ID,
		AccountNumber: create.AccountNumber,
		CustomerID:    create.CustomerId,
		Balance:       create.Balance,
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            acct.ID,
		AccountNumber: acct.AccountNumber,
		CustomerId:    acct.CustomerID,
		Balance:       acct.Balance,
		CreatedAt:     acct.CreatedAt,
	}
}
