package unixtime

import (
	"errors"
	"time"

	"github.com/samber/oops"
)

// Error kinds returned by this package. Returned errors wrap one of these,
// so callers test with errors.Is; the offending value, unit or input is
// attached as oops context.
var (
	// ErrInvalidArgument reports an unrecognised Unit. It is a programming
	// error, not a data error.
	ErrInvalidArgument = errors.New("unixtime: invalid argument")
	// ErrRange reports an arithmetic overflow or an instant outside
	// [MinTime, MaxTime].
	ErrRange = errors.New("unixtime: value out of range")
	// ErrNullInput reports a missing text argument.
	ErrNullInput = errors.New("unixtime: null input")
	// ErrFormat reports text that is not a valid ISO8601/RFC3339 timestamp.
	ErrFormat = errors.New("unixtime: invalid ISO8601 timestamp")
)

const domain = "unixtime"

const (
	codeInvalidArgument = "invalid_argument"
	codeRange           = "range_error"
	codeNullInput       = "null_input"
	codeFormat          = "format_error"
)

func invalidUnit(u Unit) error {
	return oops.
		Code(codeInvalidArgument).
		In(domain).
		With("unit", int(u)).
		Wrapf(ErrInvalidArgument, "unrecognised unix time unit %d", int(u))
}

func valueOutOfRange(value int64, unit Unit, reason string) error {
	return oops.
		Code(codeRange).
		In(domain).
		With("value", value).
		With("unit", unit.String()).
		Wrapf(ErrRange, "%d%s: %s", value, unit, reason)
}

func timeOutOfRange(t time.Time, unit Unit, reason string) error {
	return oops.
		Code(codeRange).
		In(domain).
		With("time", t.String()).
		With("unit", unit.String()).
		Wrapf(ErrRange, "%s as %s: %s", t, unit, reason)
}

func formatError(text, reason string) error {
	return oops.
		Code(codeFormat).
		In(domain).
		With("input", text).
		Wrapf(ErrFormat, "%q: %s", text, reason)
}

func ticksOutOfRange(ticks int64) error {
	return oops.
		Code(codeRange).
		In(domain).
		With("ticks", ticks).
		Wrapf(ErrRange, "%d ticks: outside supported calendar range", ticks)
}

func nullInput() error {
	return oops.
		Code(codeNullInput).
		In(domain).
		Wrapf(ErrNullInput, "timestamp text is absent")
}
