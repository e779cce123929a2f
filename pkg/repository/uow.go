package repository

import (
	"context"

	accountrepo "github.com/kobopay/accountsvc/pkg/repository/account"
	customerrepo "github.com/kobopay/accountsvc/pkg/repository/customer"
)

// UnitOfWork groups repository access under one transaction boundary so that
// multi-record writes (customer + account during onboarding) commit or roll
// back together.
type UnitOfWork interface {
	// Do executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the current
	// transaction/session.
	AccountRepository() (accountrepo.Repository, error)

	// CustomerRepository returns the customer repository bound to the current
	// transaction/session.
	CustomerRepository() (customerrepo.Repository, error)
}
