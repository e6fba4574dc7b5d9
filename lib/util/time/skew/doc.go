// Package skew validates observed timestamps against a reference clock.
//
// A timestamp more than MaxSkew away from the clock's current time, in either
// direction, is rejected. The clock is injected (clockwork.Clock) so callers
// and tests decide where "now" comes from; ValidateAgainst performs the same
// check against an explicit reference instant without any clock.
//
// Usage:
//
//	v, err := skew.NewValidator(clockwork.NewRealClock(), skew.DefaultMaxSkew)
//	if err != nil {
//	    return err
//	}
//	if err := v.Validate(observed); err != nil {
//	    // observed is too far from the local clock
//	}
package skew
