package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database. Balance is stored as
// NUMERIC so the ledger never loses monetary precision.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountNumber string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(19,4);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
