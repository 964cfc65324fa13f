package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Once set it keeps ticking from the set instant
// unless frozen.
type Time struct {
	mu               sync.RWMutex
	currentStartTime time.Time
	updatedAt        time.Time
	frozen           bool
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Freeze stops the clock at the current mock instant.
func (t *Time) Freeze(frozen bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = t.nowLocked()
	t.updatedAt = time.Now()
	t.frozen = frozen
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nowLocked()
}

func (t *Time) nowLocked() time.Time {
	if t.frozen {
		return t.currentStartTime
	}
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
