package unixtime

import "time"

// FromUnixTime returns the UTC calendar timestamp that lies value units after
// the Unix epoch.
//
// Nanosecond input is truncated toward zero to whole ticks, so -50ns yields
// the epoch itself. The scaling step is overflow checked: a product that does
// not fit an int64, or an instant outside [MinTime, MaxTime], returns ErrRange.
// An undefined unit returns ErrInvalidArgument.
func FromUnixTime(value int64, unit Unit) (time.Time, error) {
	var (
		ticks int64
		ok    = true
	)
	switch unit {
	case Seconds:
		ticks, ok = mulInt64(value, TicksPerSecond)
	case Milliseconds:
		ticks, ok = mulInt64(value, TicksPerMillisecond)
	case Microseconds:
		ticks, ok = mulInt64(value, TicksPerMicrosecond)
	case Nanoseconds:
		ticks = value / NanosecondsPerTick
	default:
		return time.Time{}, invalidUnit(unit)
	}
	if !ok {
		return time.Time{}, valueOutOfRange(value, unit, "tick conversion overflows int64")
	}
	if ticks < minTicks || ticks > maxTicks {
		return time.Time{}, valueOutOfRange(value, unit, "outside supported calendar range")
	}
	return fromTicks(ticks), nil
}

// ToUnixTime returns the number of units elapsed between the Unix epoch and t.
//
// t is normalised to UTC first, so the same instant at any offset gives the
// same result. Seconds, milliseconds and microseconds truncate toward zero;
// nanoseconds are whole ticks times 100. A result that does not fit an int64
// returns ErrRange. An undefined unit returns ErrInvalidArgument.
func ToUnixTime(t time.Time, unit Unit) (int64, error) {
	if !unit.Valid() {
		return 0, invalidUnit(unit)
	}
	ticks, err := ticksSinceEpoch(t, unit)
	if err != nil {
		return 0, err
	}
	switch unit {
	case Seconds:
		return ticks / TicksPerSecond, nil
	case Milliseconds:
		return ticks / TicksPerMillisecond, nil
	case Microseconds:
		return ticks / TicksPerMicrosecond, nil
	}
	ns, ok := mulInt64(ticks, NanosecondsPerTick)
	if !ok {
		return 0, timeOutOfRange(t, unit, "nanosecond count overflows int64")
	}
	return ns, nil
}

// Ticks returns the number of 100ns ticks between the Unix epoch and t.
// Nanoseconds below one tick are floored onto the tick grid.
func Ticks(t time.Time) (int64, error) {
	return ticksSinceEpoch(t, Nanoseconds)
}

// FromTicks is the inverse of Ticks. It returns ErrRange when the instant
// falls outside [MinTime, MaxTime].
func FromTicks(ticks int64) (time.Time, error) {
	if ticks < minTicks || ticks > maxTicks {
		return time.Time{}, ticksOutOfRange(ticks)
	}
	return fromTicks(ticks), nil
}

// Convert rescales value from one unit to another through the calendar form,
// applying the same truncation and range rules as FromUnixTime and ToUnixTime.
func Convert(value int64, from, to Unit) (int64, error) {
	t, err := FromUnixTime(value, from)
	if err != nil {
		return 0, err
	}
	return ToUnixTime(t, to)
}

// InRange reports whether t lies within [MinTime, MaxTime].
func InRange(t time.Time) bool {
	return !t.Before(MinTime) && !t.After(MaxTime)
}

// Truncate floors t onto the tick grid and normalises it to UTC.
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(TickDuration)
}

func fromTicks(ticks int64) time.Time {
	sec := ticks / TicksPerSecond
	rem := ticks % TicksPerSecond
	return time.Unix(sec, rem*NanosecondsPerTick).UTC()
}

// ticksSinceEpoch floors t onto the tick grid. time.Time keeps the
// nanosecond field in [0, 1e9) regardless of the sign of Unix(), so the
// floor is a plain division.
func ticksSinceEpoch(t time.Time, unit Unit) (int64, error) {
	sec := t.Unix()
	frac := int64(t.Nanosecond()) / NanosecondsPerTick
	scaled, ok := mulInt64(sec, TicksPerSecond)
	if !ok {
		return 0, timeOutOfRange(t, unit, "tick count overflows int64")
	}
	ticks, ok := addInt64(scaled, frac)
	if !ok {
		return 0, timeOutOfRange(t, unit, "tick count overflows int64")
	}
	return ticks, nil
}
