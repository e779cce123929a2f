package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be resolved by number or customer.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerNotFound is returned when a customer identifier does not resolve.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInsufficientFunds is returned when a debit would take a balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNegativeBalance is returned when an account would be created with a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

// Account is the ledger's view of a customer account.
//
// Invariants:
// - An account is exclusively owned by one customer (CustomerID).
// - The balance is a decimal value and never negative.
// - The balance is mutated only through the ledger store's conditional debit,
//   and only after a confirmed successful remote transfer.
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	CustomerID    uuid.UUID
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Customer holds the onboarded identity an account belongs to.
type Customer struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Bvn         string
	Nin         string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// FullName returns the display name used on dashboards.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Builder provides a fluent API for constructing Account instances, ensuring
// only valid accounts are built.
type Builder struct {
	id            uuid.UUID
	accountNumber string
	customerID    uuid.UUID
	balance       decimal.Decimal
	createdAt     time.Time
}

// New creates a new Builder with a fresh ID, a generated account number and a
// zero balance.
func New() *Builder {
	return &Builder{
		id:            uuid.New(),
		accountNumber: NewAccountNumber(),
		createdAt:     time.Now(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithAccountNumber overrides the generated account number. This is primarily
// for hydrating an existing account from a data store.
func (b *Builder) WithAccountNumber(number string) *Builder {
	b.accountNumber = number
	return b
}

// WithCustomerID sets the owning customer. This is a mandatory field.
func (b *Builder) WithCustomerID(customerID uuid.UUID) *Builder {
	b.customerID = customerID
	return b
}

// WithBalance sets the balance. Only for hydration or test setup; new accounts
// start at zero.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// Build finalizes construction, validating all invariants.
func (b *Builder) Build() (*Account, error) {
	if b.customerID == uuid.Nil {
		return nil, errors.New("customerID is required")
	}
	if b.accountNumber == "" {
		return nil, errors.New("account number is required")
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Account{
		ID:            b.id,
		AccountNumber: b.accountNumber,
		CustomerID:    b.customerID,
		Balance:       b.balance,
		CreatedAt:     b.createdAt,
	}, nil
}

// NewAccountNumber generates a 10-digit, externally visible account number
// derived from the system clock.
func NewAccountNumber() string {
	return fmt.Sprintf("%010d", time.Now().UnixMilli()%10_000_000_000)
}
