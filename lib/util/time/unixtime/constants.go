package unixtime

import "time"

const (
	// NanosecondsPerTick is the size of one calendar tick.
	NanosecondsPerTick = 100
	// TicksPerMicrosecond is the number of ticks in one microsecond.
	TicksPerMicrosecond = 10
	// TicksPerMillisecond is the number of ticks in one millisecond.
	TicksPerMillisecond = 10_000
	// TicksPerSecond is the number of ticks in one second.
	TicksPerSecond = 10_000_000

	// TickDuration is the resolution of calendar timestamps.
	TickDuration = NanosecondsPerTick * time.Nanosecond
)

// ISO8601Layout is the canonical output layout: UTC, zero padded, exactly
// seven fractional digits and a literal Z.
const ISO8601Layout = "2006-01-02T15:04:05.0000000Z"

var (
	// Epoch is 1970-01-01T00:00:00Z.
	Epoch = time.Unix(0, 0).UTC()

	// MinTime is the earliest supported calendar timestamp.
	MinTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

	// MaxTime is the latest supported calendar timestamp, the last tick of
	// year 9999.
	MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999_999_900, time.UTC)
)

// Tick bounds of the supported range relative to Epoch.
const (
	minTicks int64 = -62_135_596_800 * TicksPerSecond
	maxTicks int64 = 253_402_300_799*TicksPerSecond + TicksPerSecond - 1
)
