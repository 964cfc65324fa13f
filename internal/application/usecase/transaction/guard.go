// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

const mutationKeyPrefix = "ledger:mutation:"

// mutationKey identifies a mutation for de-duplication. An explicit idempotency
// key wins; otherwise the key is a digest of the request payload.
func mutationKey(operation, idempotencyKey string, payload any) string {
	if idempotencyKey != "" {
		return mutationKeyPrefix + operation + ":" + idempotencyKey
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", payload))
	}
	sum := sha256.Sum256(raw)
	return mutationKeyPrefix + operation + ":" + hex.EncodeToString(sum[:16])
}

// withGuard runs fn while holding key, refusing to run it if an identical mutation is in flight.
func withGuard(
	ctx context.Context,
	guard adapter.MutationGuard,
	metrics adapter.MetricsRecorder,
	operation, key string,
	fn func() error,
) error {
	token, ok, err := guard.TryAcquire(ctx, key)
	if err != nil {
		// An unavailable guard must not block mutations.
		slog.WarnContext(ctx, "Mutation guard unavailable, continuing without de-duplication",
			"operation", operation,
			"error", err,
		)
		return fn()
	}
	if !ok {
		metrics.RecordDuplicateSubmission(operation)
		slog.InfoContext(ctx, "Duplicate submission rejected", "operation", operation, "key", key)
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDuplicateSubmission,
			"an identical request is already in progress",
			domainerror.ErrDuplicateSubmission,
		)
	}

	defer func() {
		// The request context may already be cancelled; release with a fresh one.
		if err := guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			slog.WarnContext(ctx, "Failed to release mutation guard", "operation", operation, "error", err)
		}
	}()

	return fn()
}
