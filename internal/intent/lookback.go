package intent

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLookback is used whenever the extracted lookback value or unit
// cannot be interpreted.
const DefaultLookback = 24 * time.Hour

var unitSeconds = map[string]int64{
	"minutes": 60,
	"hours":   3600,
	"days":    86400,
}

// LookbackSeconds converts an extracted (value, unit) pair into seconds.
// It never fails: a value that does not parse as an integer, or a unit
// outside {minutes, hours, days}, yields one day. This is the safety net
// beneath a possibly-imperfect extractor.
func LookbackSeconds(value, unit string) int64 {
	val, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || val <= 0 {
		return int64(DefaultLookback / time.Second)
	}

	mult, ok := unitSeconds[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return int64(DefaultLookback / time.Second)
	}

	return val * mult
}

// LookbackWindow is LookbackSeconds expressed as a time.Duration.
func LookbackWindow(value, unit string) time.Duration {
	return time.Duration(LookbackSeconds(value, unit)) * time.Second
}
