package repository

import (
	"context"

	"gorm.io/gorm"

	infraaccount "github.com/kobopay/accountsvc/infra/repository/account"
	infracustomer "github.com/kobopay/accountsvc/infra/repository/customer"
	"github.com/kobopay/accountsvc/pkg/repository"
	accountrepo "github.com/kobopay/accountsvc/pkg/repository/account"
	customerrepo "github.com/kobopay/accountsvc/pkg/repository/customer"
)

// UoW provides transaction boundary and repository access in one abstraction,
// so all repositories inside Do share the same DB session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW whose
// repositories are bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (accountrepo.Repository, error) {
	return infraaccount.New(u.session()), nil
}

// CustomerRepository implements repository.UnitOfWork.
func (u *UoW) CustomerRepository() (customerrepo.Repository, error) {
	return infracustomer.New(u.session()), nil
}

// session returns the transaction when inside Do, the root DB otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
