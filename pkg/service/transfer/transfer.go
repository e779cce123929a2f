// Package transfer implements the inter-bank transfer orchestration: request
// validation, local funds check, remote gateway submission and the conditional
// ledger debit, in that order.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainaccount "github.com/kobopay/accountsvc/pkg/domain/account"
	domaintransfer "github.com/kobopay/accountsvc/pkg/domain/transfer"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/provider"
	accountrepo "github.com/kobopay/accountsvc/pkg/repository/account"
	customerrepo "github.com/kobopay/accountsvc/pkg/repository/customer"
)

// ErrLedgerConflict is returned when the remote gateway confirmed the transfer
// but the conditional debit could not be applied (the balance was drained by a
// concurrent operation between the funds check and the debit). The remote
// money movement already happened; the discrepancy needs reconciliation.
var ErrLedgerConflict = errors.New("transfer succeeded remotely but ledger debit failed")

// Service sequences a transfer through its states. Each call is an independent
// unit of work; the only shared mutable state is the ledger store, whose debit
// is atomic.
type Service struct {
	accounts  accountrepo.Repository
	customers customerrepo.Repository
	gateway   provider.TransferGateway
	logger    *slog.Logger
}

// New creates a transfer Service.
func New(
	accounts accountrepo.Repository,
	customers customerrepo.Repository,
	gateway provider.TransferGateway,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts:  accounts,
		customers: customers,
		gateway:   gateway,
		logger:    logger,
	}
}

// Transfer runs the orchestration:
//
//  1. validate the request (pure, no I/O) — any violation aborts before any
//     side effect;
//  2. resolve the customer and the source account — either missing aborts;
//  3. funds check — the gateway is never called for a request that cannot
//     possibly succeed locally;
//  4. submit to the remote gateway exactly once, no automatic retry;
//  5. iff the gateway reports SUCCESS (case-insensitive), apply the atomic
//     conditional debit.
//
// The gateway result is returned verbatim whether or not the ledger was
// updated; abort paths return typed errors instead of a result.
func (s *Service) Transfer(ctx context.Context, req *dto.BankTransferRequest) (*dto.BankTransferResponse, error) {
	if err := domaintransfer.ValidateRequest(req); err != nil {
		return nil, err
	}

	log := s.logger.With(
		"context", "Transfer",
		"session_id", req.SessionId,
		"source", req.SourceAccountNumber,
	)

	if _, err := s.customers.Get(ctx, req.CustomerId); err != nil {
		log.Warn("Customer lookup failed", "customer_id", req.CustomerId, "error", err)
		return nil, err
	}

	source, err := s.accounts.FindByNumber(ctx, req.SourceAccountNumber)
	if err != nil {
		log.Warn("Source account lookup failed", "error", err)
		return nil, err
	}

	if source.Balance.LessThan(req.Amount) {
		log.Warn("Insufficient funds for transfer", "amount", req.Amount)
		return nil, domainaccount.ErrInsufficientFunds
	}

	result, err := s.gateway.Submit(ctx, req)
	if err != nil {
		log.Error("Gateway submission failed", "error", err)
		return nil, err
	}

	if !domaintransfer.Status(result.Status).IsSuccess() {
		// Business decline or unknown status: the ledger is never touched.
		log.Info("Transfer not confirmed by gateway, ledger unchanged",
			"status", result.Status,
			"response_code", result.ResponseCode,
		)
		return result, nil
	}

	if err := s.accounts.Debit(ctx, req.SourceAccountNumber, req.Amount); err != nil {
		log.Error("Debit after confirmed transfer failed, reconciliation required",
			"reference", result.TransactionReference,
			"error", err,
		)
		return result, fmt.Errorf("%w: %v", ErrLedgerConflict, err)
	}

	log.Info("Transfer completed, ledger updated",
		"reference", result.TransactionReference,
		"amount", req.Amount,
	)
	return result, nil
}
