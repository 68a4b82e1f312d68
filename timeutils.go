package caltrainlive

import (
	"time"
)

// parseISOUTC parses an upstream ISO 8601 UTC timestamp. 511 emits both "Z"
// and numeric-offset suffixes.
func parseISOUTC(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// localClock renders an upstream UTC timestamp as a 12-hour clock string in
// the display timezone, e.g. "8:41 AM". Empty on parse failure.
func localClock(iso string, loc *time.Location) string {
	t, ok := parseISOUTC(iso)
	if !ok {
		return ""
	}
	return t.In(loc).Format("3:04 PM")
}

// minutesUntil returns whole minutes from now until the given UTC timestamp,
// truncated toward zero; negative once the time has passed. Nil when the
// timestamp is absent or unparsable.
func minutesUntil(iso string, now time.Time) *int {
	t, ok := parseISOUTC(iso)
	if !ok {
		return nil
	}
	m := int(t.Sub(now).Minutes())
	return &m
}
