package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer record in the database. BVN and NIN are the
// national identity proofs captured during onboarding.
type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"not null"`
	LastName    string    `gorm:"not null"`
	Bvn         string    `gorm:"type:varchar(11);uniqueIndex"`
	Nin         string    `gorm:"type:varchar(11);uniqueIndex"`
	Email       string    `gorm:"uniqueIndex"`
	PhoneNumber string    `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}
