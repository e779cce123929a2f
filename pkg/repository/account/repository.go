package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kobopay/accountsvc/pkg/dto"
)

// Repository is the ledger store's account contract.
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// FindByNumber retrieves an account by its externally visible account number.
	// Returns account.ErrAccountNotFound when the number does not resolve.
	FindByNumber(ctx context.Context, accountNumber string) (*dto.AccountRead, error)

	// FindByCustomer retrieves the account owned by the given customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.AccountRead, error)

	// Debit decrements the account balance by amount as a single conditional
	// update: the decrement applies iff the current balance covers the amount,
	// otherwise account.ErrInsufficientFunds is returned and the row is
	// untouched. This is the only balance mutation the ledger exposes.
	Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) error
}
