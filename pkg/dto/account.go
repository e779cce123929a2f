package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID            uuid.UUID       `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	CustomerId    uuid.UUID       `json:"customerId"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// AccountCreate is a DTO for creating a new account record.
type AccountCreate struct {
	ID            uuid.UUID
	AccountNumber string
	CustomerId    uuid.UUID
	Balance       decimal.Decimal
}

// CustomerRead is a read-optimized DTO for customer queries.
type CustomerRead struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Bvn         string    `json:"bvn"`
	Nin         string    `json:"nin"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CustomerCreate is a DTO for creating a new customer record.
type CustomerCreate struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Bvn         string
	Nin         string
	Email       string
	PhoneNumber string
}
