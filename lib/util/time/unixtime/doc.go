// Package unixtime converts between integer Unix time counts, calendar
// timestamps (time.Time) and ISO8601/RFC3339 text.
//
// Calendar timestamps carry a resolution of one tick (100ns). Conversions are
// unit aware and overflow checked: a scaling step that would wrap an int64, or
// an instant outside [MinTime, MaxTime], is reported as ErrRange instead of
// silently producing a wrong value.
//
// Every function in this package is pure and safe for concurrent use.
//
// Usage:
//
//	t, err := unixtime.FromUnixTime(1234567890123, unixtime.Milliseconds)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(unixtime.FormatISO8601(t)) // 2009-02-13T23:31:30.1230000Z
//
//	ms, err := unixtime.ToUnixTime(t, unixtime.Milliseconds)
package unixtime
