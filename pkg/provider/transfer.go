// Package provider defines the outbound collaborator contracts: the remote
// bank-transfer gateway and the pass-through payment/auth services. Concrete
// implementations live under infra/provider.
package provider

import (
	"context"
	"errors"

	"github.com/kobopay/accountsvc/pkg/dto"
)

var (
	// ErrGatewayUnavailable is returned on transport-level failure calling the
	// remote transfer service: connection error, timeout, non-2xx status or an
	// undecodable body. Distinct from a business-level decline, which is a
	// normal non-SUCCESS result. A timeout is treated as a definitive failure
	// (no ledger mutation was triggered); callers retry with the same session
	// ID so the remote side can deduplicate.
	ErrGatewayUnavailable = errors.New("transfer gateway unavailable")

	// ErrGatewayEmptyResponse is returned when the call succeeded at the
	// transport level but the gateway returned no usable result.
	ErrGatewayEmptyResponse = errors.New("no response received from transfer gateway")
)

// TransferGateway abstracts the external bank-transfer network call.
type TransferGateway interface {
	// Submit sends the transfer to the remote service exactly once. A non-nil
	// response with a non-SUCCESS status is a normal outcome, not an error.
	Submit(ctx context.Context, req *dto.BankTransferRequest) (*dto.BankTransferResponse, error)
}
