// Package monotonic detects backward jumps in a sequence of observed
// timestamps.
//
// A Guard remembers the last timestamp it was shown and reports, for each new
// observation, whether it lies strictly before that previous one. It never
// reads a clock: callers hand it timestamps taken from wherever they come
// from (a system clock, a log line, a decoded wire field). Instants are
// compared by absolute point in time, so the same instant at two offsets is
// never a jump.
//
// The guard compares only against the immediately preceding observation, not
// against the highest value seen so far, and it never corrects or buffers a
// jump. After a jump the earlier value becomes the new baseline.
//
// Usage:
//
//	var guard monotonic.Guard
//	for _, ts := range observations {
//	    if r := guard.Check(ts); r.IsBackwardJump() {
//	        prev, _ := r.Previous()
//	        log.Printf("clock stepped back %s (from %s to %s)", -r.Delta(), prev, ts)
//	    }
//	}
//
// Guard is not safe for concurrent use; SyncGuard wraps it behind a mutex.
package monotonic
