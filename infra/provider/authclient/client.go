// Package authclient forwards login requests to the external auth service.
// Token issuing and credential storage live entirely on that side.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
)

// Client calls the external auth service.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client from config.
func New(cfg *config.Auth, logger *slog.Logger) *Client {
	return &Client{
		url: cfg.Url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Login implements provider.AuthClient.
func (c *Client) Login(ctx context.Context, req *dto.AuthLoginRequest) (*dto.AuthLoginResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call auth service: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result dto.AuthLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	c.logger.Info("Login forwarded to auth service", "status", result.Status)
	return &result, nil
}
