package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the wire format for entry_time and exit_time.
// The fractional part (1 to 6 digits) is mandatory; see ParseTimestamp.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// timestampPattern enforces the shape that time.Parse alone would accept too
// loosely: time.Parse tolerates a missing fractional second.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}$`)

// ParseTimestamp parses a naive "YYYY-MM-DDTHH:MM:SS.ffffff" timestamp in loc.
// Any other shape (space separator, missing fraction, zone suffix) is an
// ErrValidation.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if !timestampPattern.MatchString(value) {
		return time.Time{}, invalidTimestamp()
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	if err != nil {
		return time.Time{}, invalidTimestamp()
	}
	return t, nil
}

func invalidTimestamp() error {
	return fmt.Errorf("%w: incorrect format or timezone, please provide datetime in 'YYYY-MM-DDTHH:MM:SS.ssssss' format", ErrValidation)
}
