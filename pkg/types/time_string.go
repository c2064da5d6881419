package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay number of minutes in a calendar day
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString is returned by the strict parser for values that are not HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString time of day in "HH:MM" format
type TimeString string

// NewTimeStringFromString strictly parses "HH:MM" (00:00..23:59).
// Used on write paths where bad input must be rejected instead of degraded.
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, ok := splitTime(s)
	if !ok || hours > 23 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// String returns the raw value
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight, 0 for malformed values
func (t TimeString) Minutes() int {
	return TimeToMinutes(string(t))
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Malformed input (missing separator, non-numeric or negative parts) yields 0.
// Hours are not range checked, "25:00" gives 1500.
func TimeToMinutes(s string) int {
	hours, minutes, ok := splitTime(s)
	if !ok {
		return 0
	}
	return hours*60 + minutes
}

// MinutesToTime renders minutes as "HH:MM" modulo one day, so 1500 becomes "01:00".
// The next-day distinction is lost.
func MinutesToTime(minutes int) TimeString {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// EffectiveCloseMinutes moves a close time that is not after the open time to the next day
func EffectiveCloseMinutes(openMinutes, closeMinutes int) int {
	if closeMinutes <= openMinutes {
		return closeMinutes + MinutesPerDay
	}
	return closeMinutes
}

func splitTime(s string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}

	return hours, minutes, true
}
