package helpers

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultExpiryMs is the fallback token lifetime: 15 minutes.
const DefaultExpiryMs int64 = 15 * 60 * 1000

var expiryPattern = regexp.MustCompile(`(?i)^(\d+)\s*(s|m|h|d)$`)

// ParseExpiresInToMs converts common expiry formats (e.g. "15m", "1h",
// "3600s", bare seconds as a number or numeric string) to milliseconds.
// Total function: any input it cannot make sense of, including negatives,
// yields the 15 minute default. The token TTL and the cookie max-age are
// both derived from this one value so they can never drift apart.
func ParseExpiresInToMs(expiresIn any) int64 {
	switch v := expiresIn.(type) {
	case nil:
		return DefaultExpiryMs
	case int:
		return secondsToMs(int64(v))
	case int64:
		return secondsToMs(v)
	case float64:
		return secondsToMs(int64(v))
	case string:
		return parseExpiryString(v)
	default:
		return DefaultExpiryMs
	}
}

// ExpiresInDuration is ParseExpiresInToMs as a time.Duration, for the
// token issuer side of the contract.
func ExpiresInDuration(expiresIn string) time.Duration {
	return time.Duration(parseExpiryString(expiresIn)) * time.Millisecond
}

func parseExpiryString(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultExpiryMs
	}
	if m := expiryPattern.FindStringSubmatch(s); m != nil {
		val, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			// digits too large for int64
			return DefaultExpiryMs
		}
		switch strings.ToLower(m[2]) {
		case "s":
			return val * 1000
		case "m":
			return val * 60 * 1000
		case "h":
			return val * 60 * 60 * 1000
		case "d":
			return val * 24 * 60 * 60 * 1000
		}
	}
	// fallback: a bare integer string is taken as seconds
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return secondsToMs(n)
	}
	return DefaultExpiryMs
}

func secondsToMs(n int64) int64 {
	if n < 0 {
		return DefaultExpiryMs
	}
	return n * 1000
}
