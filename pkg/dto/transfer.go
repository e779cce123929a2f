package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankTransferRequest is the inbound payload for an inter-bank transfer. Field
// names are part of the external contract and must not change.
type BankTransferRequest struct {
	CustomerId               uuid.UUID       `json:"customerId"`
	SourceAccountNumber      string          `json:"sourceAccountNumber"`
	DestinationAccountNumber string          `json:"destinationAccountNumber"`
	DestinationBankCode      string          `json:"destinationBankCode"`
	Amount                   decimal.Decimal `json:"amount"`
	Narration                string          `json:"narration"`
	DestinationAccountName   string          `json:"destinationAccountName"`
	TransactionPin           string          `json:"transactionPin"`
	SessionId                string          `json:"sessionId"`
}

// BankTransferResponse mirrors the remote gateway's result body. It is returned
// to the caller verbatim; the ledger side effect is applied iff Status is SUCCESS.
type BankTransferResponse struct {
	TransactionReference string          `json:"transactionReference"`
	Status               string          `json:"status"`
	Message              string          `json:"message"`
	Amount               decimal.Decimal `json:"amount"`
	SourceAccount        string          `json:"sourceAccount"`
	DestinationAccount   string          `json:"destinationAccount"`
	DestinationBankCode  string          `json:"destinationBankCode"`
	TransactionDate      time.Time       `json:"transactionDate"`
	Narration            string          `json:"narration"`
	SessionId            string          `json:"sessionId"`
	ResponseCode         string          `json:"responseCode"`
}
