package monotonic

import (
	"sync"
	"time"
)

// SyncGuard is a Guard that is safe for concurrent use. Each Check runs its
// read of the previous observation and its write of the new one under a
// single lock, so every transition is observed by exactly one caller.
type SyncGuard struct {
	mu    sync.Mutex
	guard Guard
}

// NewSyncGuard returns an empty SyncGuard.
func NewSyncGuard() *SyncGuard {
	return &SyncGuard{}
}

// Check is Guard.Check under the guard's lock.
func (s *SyncGuard) Check(current time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.Check(current)
}

// Reset is Guard.Reset under the guard's lock.
func (s *SyncGuard) Reset() {
	s.mu.Lock()
	s.guard.Reset()
	s.mu.Unlock()
}

// LastSeen is Guard.LastSeen under the guard's lock.
func (s *SyncGuard) LastSeen() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.LastSeen()
}
