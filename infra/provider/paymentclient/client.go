// Package paymentclient is the HTTP client for the external payment service:
// payment initiation and payment-history retrieval are pass-through calls.
package paymentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
)

// Client calls the external payment service.
type Client struct {
	url        string
	historyUrl string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client from config.
func New(cfg *config.Payment, logger *slog.Logger) *Client {
	return &Client{
		url:        cfg.Url,
		historyUrl: cfg.HistoryUrl,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// MakePayment implements provider.PaymentClient.
func (c *Client) MakePayment(ctx context.Context, req *dto.MakePaymentRequest) (*dto.MakePaymentResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment service: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result dto.MakePaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}
	c.logger.Info("Payment processed", "transaction_id", result.TransactionId, "status", result.Status)
	return &result, nil
}

// PaymentHistory implements provider.PaymentClient.
func (c *Client) PaymentHistory(ctx context.Context, customerID uuid.UUID) ([]dto.MakePaymentResponse, error) {
	url := fmt.Sprintf("%s/%s", c.historyUrl, customerID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment service: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment service returned status %d: %s", resp.StatusCode, string(body))
	}

	var history []dto.MakePaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, fmt.Errorf("failed to decode payment history: %w", err)
	}
	return history, nil
}
