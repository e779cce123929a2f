// Package transfergateway implements the remote bank-transfer gateway over
// HTTP. It owns timeout handling and the translation of transport failures
// into the gateway error taxonomy.
package transfergateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/provider"
)

// Gateway calls the external bank-transfer service at a configured endpoint.
type Gateway struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Gateway from config. The request timeout applies to the whole
// round trip; a timeout surfaces as ErrGatewayUnavailable.
func New(cfg *config.BankTransfer, logger *slog.Logger) *Gateway {
	return &Gateway{
		url: cfg.Url,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Submit implements provider.TransferGateway. One network attempt, no retry.
func (g *Gateway) Submit(ctx context.Context, req *dto.BankTransferRequest) (*dto.BankTransferResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	g.logger.Info("Submitting bank transfer",
		"source", req.SourceAccountNumber,
		"destination_bank", req.DestinationBankCode,
		"session_id", req.SessionId,
	)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", provider.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: gateway returned status %d: %s",
			provider.ErrGatewayUnavailable, resp.StatusCode, string(body))
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, provider.ErrGatewayEmptyResponse
	}

	var result dto.BankTransferResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", provider.ErrGatewayUnavailable, err)
	}
	if result.Status == "" {
		return nil, provider.ErrGatewayEmptyResponse
	}

	g.logger.Info("Bank transfer gateway responded",
		"status", result.Status,
		"reference", result.TransactionReference,
		"response_code", result.ResponseCode,
		"session_id", req.SessionId,
	)
	return &result, nil
}
