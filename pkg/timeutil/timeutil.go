package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone is returned when a timezone name is not a known
// IANA identifier.
var ErrInvalidTimezone = errors.New("invalid timezone")

const ymdLayout = "2006-01-02"

// Parts holds the calendar date and wall-clock time of an instant as
// seen in a particular timezone.
type Parts struct {
	YMD    string // YYYY-MM-DD
	Hour   int    // 0-23
	Minute int    // 0-59
}

// ZonedParts converts an instant into the local date and time for the
// given IANA timezone. An empty timezone falls back to UTC; an unknown
// one fails with ErrInvalidTimezone.
func ZonedParts(t time.Time, timezone string) (Parts, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Parts{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	local := t.In(loc)
	return Parts{
		YMD:    local.Format(ymdLayout),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}, nil
}

// TodayYMD returns the current calendar date in the given timezone.
func TodayYMD(timezone string) (string, error) {
	parts, err := ZonedParts(time.Now(), timezone)
	if err != nil {
		return "", err
	}
	return parts.YMD, nil
}

// NextDate returns the calendar day after the given YMD date. The
// arithmetic is done on the date itself in UTC, not on an instant, so
// DST transitions cannot shift the result.
func NextDate(ymd string) (string, error) {
	d, err := time.ParseInLocation(ymdLayout, ymd, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", ymd, err)
	}
	return d.AddDate(0, 0, 1).Format(ymdLayout), nil
}

// IsValidYMD reports whether s is a well-formed YYYY-MM-DD date.
func IsValidYMD(s string) bool {
	_, err := time.ParseInLocation(ymdLayout, s, time.UTC)
	return err == nil
}
