package dto

import (
	"github.com/shopspring/decimal"
)

// OnboardCustomerRequest carries the identity proofs and contact details for a
// new customer. Either Bvn or Nin must be present; both are verified by an
// external collaborator.
type OnboardCustomerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Bvn         string `json:"bvn"`
	Nin         string `json:"nin"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// OnboardCustomerResponse returns the generated account number.
type OnboardCustomerResponse struct {
	AccountNumber string `json:"accountNumber"`
	Message       string `json:"message"`
}

// AuthLoginRequest is forwarded untouched to the external auth service.
type AuthLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthLoginResponse is the auth service's reply, returned to the caller as-is.
type AuthLoginResponse struct {
	Token   string `json:"token"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CustomerDashboardResponse aggregates the customer view: identity, account
// state and recent payment activity.
type CustomerDashboardResponse struct {
	CustomerName  string                `json:"customerName"`
	AccountNumber string                `json:"accountNumber"`
	Balance       decimal.Decimal       `json:"balance"`
	Transactions  []MakePaymentResponse `json:"transactions"`
}
