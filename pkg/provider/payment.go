package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/kobopay/accountsvc/pkg/dto"
)

// PaymentClient is the external payment service collaborator. Payments and
// their history are owned by that service; this module only passes through.
type PaymentClient interface {
	// MakePayment forwards a payment request and returns the confirmation.
	MakePayment(ctx context.Context, req *dto.MakePaymentRequest) (*dto.MakePaymentResponse, error)

	// PaymentHistory lists the customer's payment transactions.
	PaymentHistory(ctx context.Context, customerID uuid.UUID) ([]dto.MakePaymentResponse, error)
}

// AuthClient is the external authentication service collaborator. Token
// issuing lives there; this module only validates bearer tokens.
type AuthClient interface {
	// Login forwards credentials and returns the auth service response as-is.
	Login(ctx context.Context, req *dto.AuthLoginRequest) (*dto.AuthLoginResponse, error)
}
