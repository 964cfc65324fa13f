// Package guard implements the in-flight mutation guard.
package guard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

type heldKey struct {
	token     string
	expiresAt time.Time
}

// memoryGuard implements adapter.MutationGuard for a single process.
type memoryGuard struct {
	mu   sync.Mutex
	held map[string]heldKey
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryGuard creates a process-local guard.
func NewMemoryGuard(ttl time.Duration) adapter.MutationGuard {
	return &memoryGuard{
		held: make(map[string]heldKey),
		ttl:  ttl,
		now:  time.Now,
	}
}

// TryAcquire claims key unless another live holder has it.
func (g *memoryGuard) TryAcquire(_ context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if h, ok := g.held[key]; ok && now.Before(h.expiresAt) {
		return "", false, nil
	}

	token := uuid.NewString()
	g.held[key] = heldKey{token: token, expiresAt: now.Add(g.ttl)}
	return token, true, nil
}

// Release frees key if token still owns it.
func (g *memoryGuard) Release(_ context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if h, ok := g.held[key]; ok && h.token == token {
		delete(g.held, key)
	}
	return nil
}
