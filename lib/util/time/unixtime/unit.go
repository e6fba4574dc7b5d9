package unixtime

import (
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// Unit selects the scale of an integer Unix time count.
type Unit int

const (
	Seconds Unit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

// Units lists every defined unit, coarsest first.
var Units = []Unit{Seconds, Milliseconds, Microseconds, Nanoseconds}

var unitNames = map[Unit]string{
	Seconds:      "s",
	Milliseconds: "ms",
	Microseconds: "us",
	Nanoseconds:  "ns",
}

var unitAliases = map[string]Unit{
	"s":            Seconds,
	"sec":          Seconds,
	"secs":         Seconds,
	"second":       Seconds,
	"seconds":      Seconds,
	"ms":           Milliseconds,
	"milli":        Milliseconds,
	"millis":       Milliseconds,
	"millisecond":  Milliseconds,
	"milliseconds": Milliseconds,
	"us":           Microseconds,
	"µs":           Microseconds,
	"micro":        Microseconds,
	"micros":       Microseconds,
	"microsecond":  Microseconds,
	"microseconds": Microseconds,
	"ns":           Nanoseconds,
	"nano":         Nanoseconds,
	"nanos":        Nanoseconds,
	"nanosecond":   Nanoseconds,
	"nanoseconds":  Nanoseconds,
}

// Valid reports whether u is one of the four defined units.
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// String returns the short symbol of the unit ("s", "ms", "us", "ns").
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// PerSecond returns how many of u make up one second.
func (u Unit) PerSecond() int64 {
	switch u {
	case Seconds:
		return 1
	case Milliseconds:
		return 1_000
	case Microseconds:
		return 1_000_000
	case Nanoseconds:
		return 1_000_000_000
	}
	return 0
}

// ParseUnit resolves a unit name such as "ms" or "microseconds".
// Matching is case-insensitive.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return 0, oops.
		Code(codeInvalidArgument).
		In(domain).
		With("unit", name).
		Wrapf(ErrInvalidArgument, "unknown unix time unit %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, invalidUnit(u)
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
