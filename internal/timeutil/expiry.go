// Package timeutil parses the short relative durations used for token expiry.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mrz1836/sigil/internal/errors"
)

// ParseDuration parses "<n><unit>" where unit is s, m, h or d.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", errors.ErrInvalidDuration)
	}

	numPart, unit := s[:len(s)-1], s[len(s)-1]
	var scale time.Duration
	switch unit {
	case 's':
		scale = time.Second
	case 'm':
		scale = time.Minute
	case 'h':
		scale = time.Hour
	case 'd':
		scale = 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: unsupported format: %c", errors.ErrInvalidDuration, unit)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid number %q in %s", errors.ErrInvalidDuration, numPart, s)
	}
	if n > math.MaxInt64/int64(scale) {
		return 0, fmt.Errorf("%w: out of range: %s", errors.ErrInvalidDuration, s)
	}
	return time.Duration(n) * scale, nil
}

// ParseExpiry returns now plus the duration described by s.
func ParseExpiry(now time.Time, s string) (time.Time, error) {
	d, err := ParseDuration(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}
