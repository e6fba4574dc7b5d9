package skew

import (
	"errors"
	"time"

	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/time/unixtime"
	"github.com/jonboulle/clockwork"
	"github.com/samber/oops"
)

var log = logger.GetLogger()

// DefaultMaxSkew is the default tolerated distance between an observed
// timestamp and the reference clock.
const DefaultMaxSkew = 60 * time.Minute

var (
	ErrTooOld        = errors.New("clock skew: timestamp too far in the past")
	ErrTooNew        = errors.New("clock skew: timestamp too far in the future")
	ErrZeroTimestamp = errors.New("clock skew: timestamp is zero")
	ErrInvalidWindow = errors.New("clock skew: maxSkew must be positive")
)

// Validator checks timestamps against the current time of a clock.
type Validator struct {
	clock   clockwork.Clock
	maxSkew time.Duration
}

// NewValidator returns a Validator tolerating maxSkew either side of
// clock.Now(). A nil clock means the real clock. A non-positive maxSkew
// returns ErrInvalidWindow.
func NewValidator(clock clockwork.Clock, maxSkew time.Duration) (*Validator, error) {
	if maxSkew <= 0 {
		return nil, invalidWindow(maxSkew)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Validator{clock: clock, maxSkew: maxSkew}, nil
}

// MaxSkew returns the tolerated window.
func (v *Validator) MaxSkew() time.Duration {
	return v.maxSkew
}

// Skew returns how far ts lies behind the clock. Negative values are in the
// future.
func (v *Validator) Skew(ts time.Time) time.Duration {
	return v.clock.Now().Sub(ts)
}

// Validate returns nil when ts is within MaxSkew of the clock's current time.
// Rejections are logged at warn level.
func (v *Validator) Validate(ts time.Time) error {
	now := v.clock.Now()
	err := ValidateAgainst(ts, now, v.maxSkew)
	if err != nil && !errors.Is(err, ErrZeroTimestamp) {
		log.WithFields(logger.Fields{
			"at":       "skew.Validator.Validate",
			"observed": unixtime.FormatISO8601(ts),
			"now":      unixtime.FormatISO8601(now),
			"skew":     now.Sub(ts).String(),
			"max":      v.maxSkew.String(),
		}).Warn("rejecting timestamp outside clock skew window")
	}
	return err
}

// IsValid is Validate as a boolean.
func (v *Validator) IsValid(ts time.Time) bool {
	return v.Validate(ts) == nil
}

// ValidateAgainst checks whether ts lies within maxSkew of reference. A
// zero-value ts is always rejected.
func ValidateAgainst(ts, reference time.Time, maxSkew time.Duration) error {
	if maxSkew <= 0 {
		return invalidWindow(maxSkew)
	}
	if ts.IsZero() {
		return oops.Code("zero_timestamp").In("skew").Wrap(ErrZeroTimestamp)
	}

	skew := reference.Sub(ts)
	if skew > maxSkew {
		return oops.
			Code("clock_skew").
			In("skew").
			With("skew", skew.String()).
			With("max", maxSkew.String()).
			Wrapf(ErrTooOld, "timestamp is %s in the past (max %s)", skew, maxSkew)
	}
	if skew < -maxSkew {
		return oops.
			Code("clock_skew").
			In("skew").
			With("skew", (-skew).String()).
			With("max", maxSkew.String()).
			Wrapf(ErrTooNew, "timestamp is %s in the future (max %s)", -skew, maxSkew)
	}
	return nil
}

func invalidWindow(maxSkew time.Duration) error {
	return oops.
		Code("invalid_window").
		In("skew").
		With("max", maxSkew.String()).
		Wrapf(ErrInvalidWindow, "got %s", maxSkew)
}
