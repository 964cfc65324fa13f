// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// MutationGuard marks a mutation as in flight so an identical submission is refused until it completes.
type MutationGuard interface {
	// TryAcquire claims key. ok is false when the key is already held.
	// The returned token must be passed to Release.
	TryAcquire(ctx context.Context, key string) (token string, ok bool, err error)

	// Release frees key if it is still held by token.
	Release(ctx context.Context, key, token string) error
}
