// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// MetricsRecorder defines the ledger metrics published by the dashboard.
type MetricsRecorder interface {
	// RecordRemoteCall records the outcome and latency of one request to the ledger service.
	RecordRemoteCall(operation string, duration time.Duration, err error)

	// RecordEditWindowViolation counts a rejected update or delete.
	RecordEditWindowViolation(operation string)

	// RecordDuplicateSubmission counts a mutation refused by the in-flight guard.
	RecordDuplicateSubmission(operation string)

	// RecordSync records a sync result and whether it was applied or dropped as stale.
	RecordSync(applied bool, transactions, accounts int)
}
