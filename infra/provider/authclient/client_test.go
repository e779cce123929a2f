package authclient_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobopay/accountsvc/infra/provider/authclient"
	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
)

func newClient(url string) *authclient.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return authclient.New(&config.Auth{Url: url}, logger)
}

func TestLogin_ForwardsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.AuthLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.AuthLoginResponse{
			Token:  "jwt-token",
			Status: "SUCCESS",
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	resp, err := c.Login(context.Background(), &dto.AuthLoginRequest{
		Username: "ada",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "SUCCESS", resp.Status)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	resp, err := c.Login(context.Background(), &dto.AuthLoginRequest{
		Username: "ada",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "401")
}
