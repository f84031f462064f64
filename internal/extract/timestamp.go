package extract

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned when a value is not an ISO-8601 timestamp.
var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

// isoLayouts are tried in order. Layouts without an offset are read as local time.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 date or date-time as exported by Blogger,
// e.g. "2023-01-01T00:00:00+00:00" or "2023-01-01T09:30:00.000-08:00".
// A space is accepted in place of the "T" separator.
func ParseTimestamp(value string) (time.Time, error) {
	normalized := value
	if len(normalized) > 10 && normalized[10] == ' ' {
		normalized = normalized[:10] + "T" + normalized[11:]
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, normalized, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// EpochSeconds converts t to fractional seconds since the Unix epoch.
// Precision stops at microseconds; finer digits are truncated.
func EpochSeconds(t time.Time) float64 {
	micros := t.Unix()*1_000_000 + int64(t.Nanosecond()/1_000)
	return float64(micros) / 1e6
}

// FormatSeconds renders a float the way the CSV has always shown it:
// the shortest representation that round-trips, always with a decimal
// point ("1672531200.0"), switching to exponent form for very large or
// very small magnitudes ("1e+16").
func FormatSeconds(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
