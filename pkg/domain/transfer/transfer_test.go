package transfer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobopay/accountsvc/pkg/domain/transfer"
	"github.com/kobopay/accountsvc/pkg/dto"
)

func validRequest() *dto.BankTransferRequest {
	return &dto.BankTransferRequest{
		CustomerId:               uuid.New(),
		SourceAccountNumber:      "0123456789",
		DestinationAccountNumber: "9876543210",
		DestinationBankCode:      "058",
		Amount:                   decimal.NewFromFloat(100.00),
		Narration:                "rent",
		TransactionPin:           "1234",
		SessionId:                "sess-001",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	require.NoError(t, transfer.ValidateRequest(validRequest()))
}

func TestValidateRequest_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.BankTransferRequest)
		wantMsg string
	}{
		{
			name:    "missing customer ID",
			mutate:  func(req *dto.BankTransferRequest) { req.CustomerId = uuid.Nil },
			wantMsg: "customer ID is required",
		},
		{
			name:    "blank source account",
			mutate:  func(req *dto.BankTransferRequest) { req.SourceAccountNumber = "   " },
			wantMsg: "source account number is required",
		},
		{
			name:    "blank destination account",
			mutate:  func(req *dto.BankTransferRequest) { req.DestinationAccountNumber = "" },
			wantMsg: "destination account number is required",
		},
		{
			name:    "blank bank code",
			mutate:  func(req *dto.BankTransferRequest) { req.DestinationBankCode = "" },
			wantMsg: "destination bank code is required",
		},
		{
			name:    "zero amount",
			mutate:  func(req *dto.BankTransferRequest) { req.Amount = decimal.Zero },
			wantMsg: "transfer amount must be greater than zero",
		},
		{
			name:    "negative amount",
			mutate:  func(req *dto.BankTransferRequest) { req.Amount = decimal.NewFromFloat(-5) },
			wantMsg: "transfer amount must be greater than zero",
		},
		{
			name:    "blank transaction PIN",
			mutate:  func(req *dto.BankTransferRequest) { req.TransactionPin = "" },
			wantMsg: "transaction PIN is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := transfer.ValidateRequest(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, transfer.ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateRequest_NilRequest(t *testing.T) {
	err := transfer.ValidateRequest(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "cannot be nil")
}

// The first violation in declaration order wins, so callers always see the
// same message for the same bad request.
func TestValidateRequest_FailFastOrdering(t *testing.T) {
	req := validRequest()
	req.CustomerId = uuid.Nil
	req.Amount = decimal.Zero

	err := transfer.ValidateRequest(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer ID is required")
	assert.NotContains(t, err.Error(), "amount")
}

func TestStatus_IsSuccess(t *testing.T) {
	tests := []struct {
		status transfer.Status
		want   bool
	}{
		{transfer.StatusSuccess, true},
		{transfer.Status("success"), true},
		{transfer.Status("Success"), true},
		{transfer.StatusFailed, false},
		{transfer.StatusPending, false},
		{transfer.Status(""), false},
		{transfer.Status("SUCCESSFUL"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsSuccess())
		})
	}
}
