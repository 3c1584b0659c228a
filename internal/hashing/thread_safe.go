package hashing

import (
	"sync"
)

// SafeTracker wraps Tracker with mutex protection for concurrent
// access.
type SafeTracker struct {
	tracker *Tracker
	mu      sync.RWMutex
}

// NewSafeTracker returns an empty thread-safe tracker.
func NewSafeTracker() *SafeTracker {
	return &SafeTracker{
		tracker: NewTracker(),
	}
}

// Record atomically notes one occurrence of the hash and returns how
// many times it has now been seen.
func (t *SafeTracker) Record(hash uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracker.Record(hash)
}

// Count returns how many times the hash has been recorded.
func (t *SafeTracker) Count(hash uint64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.Count(hash)
}

// ThreefoldRepetition reports whether the most recently recorded hash
// has occurred at least three times.
func (t *SafeTracker) ThreefoldRepetition() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.ThreefoldRepetition()
}

// Unique returns the number of distinct hashes recorded.
func (t *SafeTracker) Unique() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.Unique()
}

// Reset forgets all recorded hashes.
func (t *SafeTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracker.Reset()
}
