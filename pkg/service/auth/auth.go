// Package auth reads identity claims from validated bearer tokens. Tokens are
// issued by the external auth service; only validation happens here.
package auth

import (
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kobopay/accountsvc/pkg/config"
)

// ErrInvalidToken is returned when a token's claims cannot be read.
var ErrInvalidToken = errors.New("invalid token")

// Service extracts the subject and roles from a validated JWT.
type Service struct {
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Subject returns the token's subject claim (the authenticated username).
func (s *Service) Subject(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// Roles returns the token's roles claim, empty when absent. Roles gate route
// access only; the orchestration logic never consumes them.
func (s *Service) Roles(token *jwt.Token) []string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
