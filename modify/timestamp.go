package modify

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// errTimestamp is wrapped into the ErrArg chain by parseWait.
var errTimestamp = errors.New("unrecognized timestamp")

// parseTimestamp accepts RFC 3339, a bare date (UTC midnight), or a relative
// duration such as "2d" or "3weeks" added to now. Results are in UTC.
func parseTimestamp(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if d, ok := parseDuration(s); ok {
		return now.Add(d).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", errTimestamp, s)
}

// parseDuration reads "<n><unit>" with the units users write on the command
// line. Months and years are the conventional fixed 30 and 365 days.
func parseDuration(s string) (time.Duration, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:i], 10, 32)
	if err != nil {
		return 0, false
	}
	var unit time.Duration
	switch s[i:] {
	case "s", "sec", "secs", "second", "seconds":
		unit = time.Second
	case "min", "mins", "minute", "minutes":
		unit = time.Minute
	case "h", "hour", "hours":
		unit = time.Hour
	case "d", "day", "days":
		unit = 24 * time.Hour
	case "w", "week", "weeks":
		unit = 7 * 24 * time.Hour
	case "mo", "month", "months":
		unit = 30 * 24 * time.Hour
	case "y", "year", "years":
		unit = 365 * 24 * time.Hour
	default:
		return 0, false
	}
	return time.Duration(n) * unit, true
}
