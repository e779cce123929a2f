package account_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobopay/accountsvc/pkg/domain/account"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.Run()
}

func TestBuilder_NewAccountDefaults(t *testing.T) {
	customerID := uuid.New()

	acct, err := account.New().WithCustomerID(customerID).Build()

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, acct.ID)
	assert.Equal(t, customerID, acct.CustomerID)
	assert.Len(t, acct.AccountNumber, 10)
	assert.True(t, acct.Balance.IsZero(), "new accounts start with a zero balance")
	assert.False(t, acct.CreatedAt.IsZero())
}

func TestBuilder_RequiresCustomerID(t *testing.T) {
	acct, err := account.New().Build()

	require.Error(t, err)
	assert.Nil(t, acct)
	assert.Contains(t, err.Error(), "customerID is required")
}

func TestBuilder_RejectsNegativeBalance(t *testing.T) {
	acct, err := account.New().
		WithCustomerID(uuid.New()).
		WithBalance(decimal.NewFromFloat(-0.01)).
		Build()

	require.ErrorIs(t, err, account.ErrNegativeBalance)
	assert.Nil(t, acct)
}

func TestBuilder_Hydration(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()
	balance := decimal.NewFromFloat(250.75)

	acct, err := account.New().
		WithID(id).
		WithAccountNumber("0011223344").
		WithCustomerID(customerID).
		WithBalance(balance).
		Build()

	require.NoError(t, err)
	assert.Equal(t, id, acct.ID)
	assert.Equal(t, "0011223344", acct.AccountNumber)
	assert.True(t, acct.Balance.Equal(balance))
}

func TestBuilder_RejectsEmptyAccountNumber(t *testing.T) {
	_, err := account.New().
		WithCustomerID(uuid.New()).
		WithAccountNumber("").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "account number is required")
}

func TestNewAccountNumber(t *testing.T) {
	n := account.NewAccountNumber()

	assert.Len(t, n, 10)
	for _, r := range n {
		assert.True(t, r >= '0' && r <= '9', "account numbers are numeric")
	}
}

func TestCustomer_FullName(t *testing.T) {
	c := &account.Customer{FirstName: "Ada", LastName: "Obi"}
	assert.Equal(t, "Ada Obi", c.FullName())
}
