package monotonic

import "time"

// Result describes one Guard.Check call. It is an immutable value.
type Result struct {
	backward    bool
	delta       time.Duration
	previous    time.Time
	hasPrevious bool
	current     time.Time
}

// IsBackwardJump reports whether Current is strictly earlier than Previous.
func (r Result) IsBackwardJump() bool {
	return r.backward
}

// Delta returns Current minus Previous, or zero on a first observation.
// Differences beyond the range of time.Duration saturate, keeping their sign.
func (r Result) Delta() time.Duration {
	return r.delta
}

// Previous returns the observation that preceded Current. ok is false for the
// first check after construction or Reset.
func (r Result) Previous() (previous time.Time, ok bool) {
	return r.previous, r.hasPrevious
}

// Current returns the checked timestamp, unmodified.
func (r Result) Current() time.Time {
	return r.current
}

// Checker is the behaviour shared by Guard and SyncGuard.
type Checker interface {
	Check(current time.Time) Result
	Reset()
	LastSeen() (time.Time, bool)
}

var (
	_ Checker = (*Guard)(nil)
	_ Checker = (*SyncGuard)(nil)
)

// Guard tracks the last observed timestamp. The zero value is an empty guard
// ready for use.
type Guard struct {
	lastSeen time.Time
	primed   bool
}

// NewGuard returns an empty Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Check compares current against the previous observation and records it as
// the new baseline, whether or not it is a backward jump. Equal instants,
// including the same instant at a different offset, are not a jump.
func (g *Guard) Check(current time.Time) Result {
	if !g.primed {
		g.lastSeen = current
		g.primed = true
		return Result{current: current}
	}
	previous := g.lastSeen
	g.lastSeen = current
	return Result{
		backward:    current.Before(previous),
		delta:       current.Sub(previous),
		previous:    previous,
		hasPrevious: true,
		current:     current,
	}
}

// Reset forgets the last observation. The next Check behaves as a first
// observation. Reset is idempotent.
func (g *Guard) Reset() {
	g.lastSeen = time.Time{}
	g.primed = false
}

// LastSeen returns the most recently checked timestamp. ok is false when the
// guard is empty.
func (g *Guard) LastSeen() (lastSeen time.Time, ok bool) {
	return g.lastSeen, g.primed
}
