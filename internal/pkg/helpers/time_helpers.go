package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{time.DateOnly, time.RFC3339Nano}

// ParseDuration parses a positive duration string and falls back to defaultDuration otherwise
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err == nil && duration <= 0 {
		err = fmt.Errorf("duration must be positive")
	}
	if err != nil {
		// Global logger: this can run before the configured logger exists.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp and returns it in UTC
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
}
