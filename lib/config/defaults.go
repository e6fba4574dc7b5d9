package config

import (
	"time"

	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/time/unixtime"
)

// Config is the resolved configuration of the timeconv command.
type Config struct {
	// Unit is used for integer input and output when no --unit flag is given.
	// Default: milliseconds
	Unit unixtime.Unit

	// LogLevel enables logging to stderr ("debug", "info", "warn", "error",
	// "off"). Empty leaves logging to DEBUG_TIMECONV.
	// Default: ""
	LogLevel string

	Watch WatchConfig
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// MaxSkew flags observations further than this from the local clock.
	// Zero disables the check.
	// Default: 0
	MaxSkew time.Duration

	// FailOnBackward makes watch exit non-zero after any backward jump.
	// Default: false
	FailOnBackward bool
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Unit:     unixtime.Milliseconds,
		LogLevel: "",
		Watch: WatchConfig{
			MaxSkew:        0,
			FailOnBackward: false,
		},
	}
}

// Validate checks that the configuration values are usable.
func Validate(cfg Config) error {
	log.WithFields(logger.Fields{
		"at":   "config.Validate",
		"unit": cfg.Unit.String(),
	}).Debug("validating configuration")
	if !cfg.Unit.Valid() {
		return newValidationError("unit must be one of s, ms, us, ns")
	}
	if cfg.Watch.MaxSkew < 0 {
		return newValidationError("watch.max_skew must not be negative")
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
