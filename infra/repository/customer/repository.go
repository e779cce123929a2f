package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kobopay/accountsvc/pkg/domain/account"
	"github.com/kobopay/accountsvc/pkg/dto"
	repo "github.com/kobopay/accountsvc/pkg/repository/customer"
)

type repository struct {
	db *gorm.DB
}

// New creates a customer repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements customer.Repository.
func (r *repository) Create(ctx context.Context, create dto.CustomerCreate) error {
	cust := Customer{
		ID:          create.ID,
		FirstName:   create.FirstName,
		LastName:    create.LastName,
		Bvn:         create.Bvn,
		Nin:         create.Nin,
		Email:       create.Email,
		PhoneNumber: create.PhoneNumber,
	}
	return r.db.WithContext(ctx).Create(&cust).Error
}

// Get implements customer.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerRead, error) {
	var cust Customer
	if err := r.db.WithContext(ctx).First(&cust, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &dto.CustomerRead{
		ID:          cust.ID,
		FirstName:   cust.FirstName,
		LastName:    cust.LastName,
		Bvn:         cust.Bvn,
		Nin:         cust.Nin,
		Email:       cust.Email,
		PhoneNumber: cust.PhoneNumber,
		CreatedAt:   cust.CreatedAt,
	}, nil
}
