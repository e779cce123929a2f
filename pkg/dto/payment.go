package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MakePaymentRequest is the inbound payload forwarded to the payment service.
type MakePaymentRequest struct {
	CustomerId    uuid.UUID       `json:"customerId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
}

// MakePaymentResponse is the payment service's confirmation, also used as a
// single entry in payment-history listings.
type MakePaymentResponse struct {
	TransactionId uuid.UUID       `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
