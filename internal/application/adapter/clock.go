// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Every period window and edit-window check is anchored to it.
type Clock interface {
	Now() time.Time
}
