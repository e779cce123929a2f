// Package transfer holds the pure domain rules of the inter-bank transfer flow:
// the request validator and the gateway status vocabulary. Nothing in this
// package performs I/O.
package transfer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kobopay/accountsvc/pkg/dto"
)

// ErrInvalidRequest is the sentinel wrapped by every validation violation.
// Callers match it with errors.Is; the wrapped message names the exact field.
var ErrInvalidRequest = errors.New("invalid transfer request")

// Status is the remote gateway's transfer outcome vocabulary. Anything outside
// this set is treated as unknown and never mutates the ledger.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusPending Status = "PENDING"
)

// IsSuccess reports whether the status confirms the transfer, case-insensitively.
func (s Status) IsSuccess() bool {
	return strings.EqualFold(string(s), string(StatusSuccess))
}

// ValidateRequest checks a transfer request's structural and business-rule
// correctness before any side effect occurs. Checks are ordered and fail fast:
// the first violation wins, so error messages are deterministic for callers.
func ValidateRequest(req *dto.BankTransferRequest) error {
	switch {
	case req == nil:
		return fmt.Errorf("%w: transfer request cannot be nil", ErrInvalidRequest)
	case req.CustomerId == uuid.Nil:
		return fmt.Errorf("%w: customer ID is required", ErrInvalidRequest)
	case strings.TrimSpace(req.SourceAccountNumber) == "":
		return fmt.Errorf("%w: source account number is required", ErrInvalidRequest)
	case strings.TrimSpace(req.DestinationAccountNumber) == "":
		return fmt.Errorf("%w: destination account number is required", ErrInvalidRequest)
	case strings.TrimSpace(req.DestinationBankCode) == "":
		return fmt.Errorf("%w: destination bank code is required", ErrInvalidRequest)
	case req.Amount.Sign() <= 0:
		return fmt.Errorf("%w: transfer amount must be greater than zero", ErrInvalidRequest)
	case strings.TrimSpace(req.TransactionPin) == "":
		return fmt.Errorf("%w: transaction PIN is required", ErrInvalidRequest)
	}
	return nil
}
