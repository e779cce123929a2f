package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/kobopay/accountsvc/pkg/dto"
)

// Repository is the ledger store's customer contract.
type Repository interface {
	// Create inserts a new customer record from a DTO.
	Create(ctx context.Context, create dto.CustomerCreate) error

	// Get retrieves a customer by identifier. Returns
	// account.ErrCustomerNotFound when the identifier does not resolve.
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerRead, error)
}
