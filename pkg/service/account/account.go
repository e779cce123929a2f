// Package account implements customer onboarding and the pass-through
// operations backed by the external auth and payment services.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	domain "github.com/kobopay/accountsvc/pkg/domain/account"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/provider"
	"github.com/kobopay/accountsvc/pkg/repository"
)

// ErrIdentityProofRequired is returned when onboarding is attempted without a
// BVN or NIN.
var ErrIdentityProofRequired = errors.New("either BVN or NIN must be provided")

// Service owns onboarding plus the payment/auth pass-through operations.
type Service struct {
	uow      repository.UnitOfWork
	payments provider.PaymentClient
	auth     provider.AuthClient
	logger   *slog.Logger
}

// New creates an account Service.
func New(
	uow repository.UnitOfWork,
	payments provider.PaymentClient,
	auth provider.AuthClient,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:      uow,
		payments: payments,
		auth:     auth,
		logger:   logger,
	}
}

// Onboard validates the identity proofs and creates the customer together with
// a zero-balance account in one transaction.
func (s *Service) Onboard(ctx context.Context, req *dto.OnboardCustomerRequest) (*dto.OnboardCustomerResponse, error) {
	log := s.logger.With("context", "Onboard")

	if req.Bvn == "" && req.Nin == "" {
		return nil, ErrIdentityProofRequired
	}

	customerID := uuid.New()
	var accountNumber string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		if err := customers.Create(ctx, dto.CustomerCreate{
			ID:          customerID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Bvn:         req.Bvn,
			Nin:         req.Nin,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		}); err != nil {
			return err
		}

		acct, err := domain.New().WithCustomerID(customerID).Build()
		if err != nil {
			return err
		}
		accountNumber = acct.AccountNumber
		return accounts.Create(ctx, dto.AccountCreate{
			ID:            acct.ID,
			AccountNumber: acct.AccountNumber,
			CustomerId:    acct.CustomerID,
			Balance:       acct.Balance,
		})
	})
	if err != nil {
		log.Error("Onboarding failed", "error", err)
		return nil, err
	}

	log.Info("Customer onboarded", "customer_id", customerID, "account_number", accountNumber)
	return &dto.OnboardCustomerResponse{
		AccountNumber: accountNumber,
		Message:       "Customer successfully onboarded",
	}, nil
}

// Login forwards credentials to the external auth service.
func (s *Service) Login(ctx context.Context, req *dto.AuthLoginRequest) (*dto.AuthLoginResponse, error) {
	return s.auth.Login(ctx, req)
}

// PaymentHistory lists the customer's payment transactions from the external
// payment service.
func (s *Service) PaymentHistory(ctx context.Context, customerID uuid.UUID) ([]dto.MakePaymentResponse, error) {
	return s.payments.PaymentHistory(ctx, customerID)
}

// MakePayment verifies the customer exists, then forwards the payment to the
// external payment service.
func (s *Service) MakePayment(ctx context.Context, req *dto.MakePaymentRequest) (*dto.MakePaymentResponse, error) {
	customers, err := s.uow.CustomerRepository()
	if err != nil {
		return nil, err
	}
	if _, err := customers.Get(ctx, req.CustomerId); err != nil {
		return nil, err
	}
	return s.payments.MakePayment(ctx, req)
}

// Dashboard aggregates the customer's identity, account state and payment
// history into one view.
func (s *Service) Dashboard(ctx context.Context, customerID uuid.UUID) (*dto.CustomerDashboardResponse, error) {
	customers, err := s.uow.CustomerRepository()
	if err != nil {
		return nil, err
	}
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}

	cust, err := customers.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	acct, err := accounts.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	history, err := s.payments.PaymentHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &dto.CustomerDashboardResponse{
		CustomerName:  cust.FirstName + " " + cust.LastName,
		AccountNumber: acct.AccountNumber,
		Balance:       acct.Balance,
		Transactions:  history,
	}, nil
}
