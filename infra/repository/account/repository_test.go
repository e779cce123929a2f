package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/kobopay/accountsvc/pkg/domain/account"
	"github.com/kobopay/accountsvc/pkg/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, _ := sqlmock.New()
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	create := dto.AccountCreate{
		ID:            uuid.New(),
		AccountNumber: "0123456789",
		CustomerId:    uuid.New(),
		Balance:       decimal.Zero,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), create))
}

func TestRepository_FindByNumber(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	id := uuid.New()
	customerID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "account_number", "customer_id", "balance", "created_at", "updated_at"}).
		AddRow(id, "0123456789", customerID, "100.00", time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_number = (.+)`).
		WithArgs("0123456789", 1).
		WillReturnRows(rows)

	acct, err := repo.FindByNumber(context.Background(), "0123456789")
	require.NoError(err)
	assert.Equal(id, acct.ID)
	assert.Equal(customerID, acct.CustomerId)
	assert.True(acct.Balance.Equal(decimal.NewFromFloat(100.00)))
}

func TestRepository_FindByNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_number = (.+)`).
		WithArgs("0000000000", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	acct, err := repo.FindByNumber(context.Background(), "0000000000")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Nil(t, acct)
}

func TestRepository_FindByCustomer_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	customerID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE customer_id = (.+)`).
		WithArgs(customerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	acct, err := repo.FindByCustomer(context.Background(), customerID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Nil(t, acct)
}

func TestRepository_Debit(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}
	amount := decimal.NewFromFloat(40.00)

	// The funds check and the decrement are one conditional UPDATE.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance - (.+) WHERE account_number = (.+) AND balance >= (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.Debit(context.Background(), "0123456789", amount))
}

func TestRepository_Debit_InsufficientFunds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	amount := decimal.NewFromFloat(500.00)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance - (.+) WHERE account_number = (.+) AND balance >= (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Zero rows with an existing account means the balance did not cover it.
	rows := sqlmock.NewRows([]string{"id", "account_number", "customer_id", "balance", "created_at", "updated_at"}).
		AddRow(uuid.New(), "0123456789", uuid.New(), "100.00", time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_number = (.+)`).
		WithArgs("0123456789", 1).
		WillReturnRows(rows)

	err := repo.Debit(context.Background(), "0123456789", amount)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestRepository_Debit_UnknownAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	amount := decimal.NewFromFloat(40.00)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance - (.+) WHERE account_number = (.+) AND balance >= (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_number = (.+)`).
		WithArgs("0000000000", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.Debit(context.Background(), "0000000000", amount)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
