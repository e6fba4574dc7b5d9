package unixtime

import (
	"regexp"
	"strings"
	"time"
)

// timestampGrammar fixes the field widths that time.Parse leaves loose (it
// takes "3" for an hour). The offset is 'Z', +hh:mm or +hh; the basic +hhmm
// form cannot follow an extended date and time.
var timestampGrammar = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:[.,]\d+)?(?:Z|[+-]\d{2}(?::\d{2})?)$`)

// parseLayouts are tried in order. Fractional seconds of any length are
// accepted by time.Parse after the seconds field.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07",
}

// ParseISO8601 parses an ISO8601/RFC3339 timestamp and returns the instant
// normalised to UTC and floored onto the tick grid.
//
// The text must be YYYY-MM-DDTHH:MM:SS with two-digit fields, optional
// fractional seconds after '.' or ',', then 'Z', +hh:mm or +hh. Empty text,
// text outside that grammar and instants outside [MinTime, MaxTime] all
// return ErrFormat.
func ParseISO8601(text string) (time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, formatError(text, "empty timestamp")
	}
	if !timestampGrammar.MatchString(text) {
		return time.Time{}, formatError(text, "not YYYY-MM-DDTHH:MM:SS[.f](Z|+hh:mm|+hh)")
	}
	var firstErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		t = Truncate(t)
		if !InRange(t) {
			return time.Time{}, formatError(text, "outside supported calendar range "+
				FormatISO8601(MinTime)+" .. "+FormatISO8601(MaxTime))
		}
		return t, nil
	}
	return time.Time{}, formatError(text, firstErr.Error())
}

// ParseNullableISO8601 is ParseISO8601 for an optional argument. A nil text
// returns ErrNullInput.
func ParseNullableISO8601(text *string) (time.Time, error) {
	if text == nil {
		return time.Time{}, nullInput()
	}
	return ParseISO8601(*text)
}

// FormatISO8601 renders t in UTC as YYYY-MM-DDTHH:mm:ss.fffffffZ. The seven
// fractional digits are always written; sub-tick nanoseconds are dropped.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(ISO8601Layout)
}
