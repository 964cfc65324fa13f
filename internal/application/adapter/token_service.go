// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ServiceToken is a signed bearer token identifying this dashboard to the ledger service.
type ServiceToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService defines the interface for service-to-service JWT operations.
type TokenService interface {
	// ServiceToken returns a valid bearer token, issuing a new one when the cached token is about to expire.
	ServiceToken(ctx context.Context) (*ServiceToken, error)
}
