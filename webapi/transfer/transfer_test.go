package transfer_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainaccount "github.com/kobopay/accountsvc/pkg/domain/account"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/provider"
	"github.com/kobopay/accountsvc/webapi/common"
	"github.com/kobopay/accountsvc/webapi/testutils"
)

func transferBody(customerID uuid.UUID, amount string) string {
	return fmt.Sprintf(`{
		"customerId": %q,
		"sourceAccountNumber": "0123456789",
		"destinationAccountNumber": "9876543210",
		"destinationBankCode": "058",
		"amount": %s,
		"narration": "rent",
		"transactionPin": "1234",
		"sessionId": "sess-9"
	}`, customerID, amount)
}

func TestBankTransfer_RequiresToken(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(uuid.New(), "40.00"), "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBankTransfer_Success(t *testing.T) {
	app, m := testutils.SetupTestApp(t)
	customerID := uuid.New()

	m.Customers.EXPECT().Get(mock.Anything, customerID).
		Return(&dto.CustomerRead{ID: customerID}, nil).Once()
	m.Accounts.EXPECT().FindByNumber(mock.Anything, "0123456789").
		Return(&dto.AccountRead{
			AccountNumber: "0123456789",
			CustomerId:    customerID,
			Balance:       decimal.NewFromFloat(100.00),
		}, nil).Once()
	m.Gateway.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&dto.BankTransferResponse{
			Status:               "SUCCESS",
			TransactionReference: "TRF-2024-0001",
			SessionId:            "sess-9",
		}, nil).Once()
	m.Accounts.EXPECT().Debit(mock.Anything, "0123456789", mock.Anything).
		Return(nil).Once()

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(customerID, "40.00"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Bank transfer processed", envelope.Message)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SUCCESS", data["status"])
	assert.Equal(t, "TRF-2024-0001", data["transactionReference"])
}

func TestBankTransfer_DeclineIsReturnedVerbatim(t *testing.T) {
	app, m := testutils.SetupTestApp(t)
	customerID := uuid.New()

	m.Customers.EXPECT().Get(mock.Anything, customerID).
		Return(&dto.CustomerRead{ID: customerID}, nil).Once()
	m.Accounts.EXPECT().FindByNumber(mock.Anything, "0123456789").
		Return(&dto.AccountRead{
			AccountNumber: "0123456789",
			CustomerId:    customerID,
			Balance:       decimal.NewFromFloat(100.00),
		}, nil).Once()
	m.Gateway.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&dto.BankTransferResponse{
			Status:       "FAILED",
			Message:      "Destination account cannot receive funds",
			ResponseCode: "57",
		}, nil).Once()
	// No debit: the decline leaves the ledger untouched.

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(customerID, "40.00"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FAILED", data["status"])
	assert.Equal(t, "57", data["responseCode"])
}

func TestBankTransfer_InvalidAmount(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(uuid.New(), "0"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestBankTransfer_InsufficientFunds(t *testing.T) {
	app, m := testutils.SetupTestApp(t)
	customerID := uuid.New()

	m.Customers.EXPECT().Get(mock.Anything, customerID).
		Return(&dto.CustomerRead{ID: customerID}, nil).Once()
	m.Accounts.EXPECT().FindByNumber(mock.Anything, "0123456789").
		Return(&dto.AccountRead{
			AccountNumber: "0123456789",
			CustomerId:    customerID,
			Balance:       decimal.NewFromFloat(10.00),
		}, nil).Once()

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(customerID, "40.00"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBankTransfer_UnknownCustomer(t *testing.T) {
	app, m := testutils.SetupTestApp(t)
	customerID := uuid.New()

	m.Customers.EXPECT().Get(mock.Anything, customerID).
		Return(nil, domainaccount.ErrCustomerNotFound).Once()

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(customerID, "40.00"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBankTransfer_GatewayUnavailable(t *testing.T) {
	app, m := testutils.SetupTestApp(t)
	customerID := uuid.New()

	m.Customers.EXPECT().Get(mock.Anything, customerID).
		Return(&dto.CustomerRead{ID: customerID}, nil).Once()
	m.Accounts.EXPECT().FindByNumber(mock.Anything, "0123456789").
		Return(&dto.AccountRead{
			AccountNumber: "0123456789",
			CustomerId:    customerID,
			Balance:       decimal.NewFromFloat(100.00),
		}, nil).Once()
	m.Gateway.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, provider.ErrGatewayUnavailable).Once()

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		transferBody(customerID, "40.00"), testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Bank transfer failed", pd.Title)
	assert.Equal(t, http.StatusBadGateway, pd.Status)
}

func TestBankTransfer_MalformedBody(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp := testutils.MakeRequest(t, app, "POST", "/api/v1/customer/bank-transfer",
		`{"amount": "not-a-number"`, testutils.Token(t))
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
