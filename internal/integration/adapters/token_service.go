// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

const (
	// Default service token duration
	defaultServiceTokenDuration = 5 * time.Minute

	// A cached token is reissued once less than this much of its lifetime is left.
	tokenRefreshMargin = 30 * time.Second

	tokenIssuer   = "finance-tracker-dashboard"
	tokenAudience = "finance-tracker-ledger"
	tokenScope    = "ledger:rw"
)

// ServiceClaims represents the custom claims of a service token.
type ServiceClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	duration time.Duration
	clock    adapter.Clock

	mu     sync.Mutex
	cached *adapter.ServiceToken
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration, clock adapter.Clock) adapter.TokenService {
	if duration <= 0 {
		duration = defaultServiceTokenDuration
	}
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
		clock:    clock,
	}
}

// ServiceToken returns the cached token or signs a new one.
func (s *tokenService) ServiceToken(_ context.Context) (*adapter.ServiceToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.cached != nil && now.Add(tokenRefreshMargin).Before(s.cached.ExpiresAt) {
		return s.cached, nil
	}

	token, err := s.generateJWT(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate service token: %w", err)
	}
	s.cached = token
	return token, nil
}

// generateJWT creates a new JWT token valid from now.
func (s *tokenService) generateJWT(now time.Time) (*adapter.ServiceToken, error) {
	now = now.UTC()
	expiresAt := now.Add(s.duration)
	claims := ServiceClaims{
		Scope: tokenScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &adapter.ServiceToken{
		Value:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
