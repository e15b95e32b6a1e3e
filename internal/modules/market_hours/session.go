// Package market_hours evaluates whether an equity market session is open.
package market_hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnsupportedTimezone is returned when the runtime has no zone data for a location.
	ErrUnsupportedTimezone = errors.New("unsupported timezone")
	// ErrInvalidClock is returned for a time of day that is not HH:MM.
	ErrInvalidClock = errors.New("invalid clock time")
)

// displayLayout renders the en-IN short time: two-digit hour and minute, 12-hour clock.
const displayLayout = "03:04 pm"

// ParseClock parses an "HH:MM" 24-hour time of day.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// String formats the clock time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// on returns the clock time on the calendar date of local, in local's zone.
func (c ClockTime) on(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), c.Hour, c.Minute, 0, 0, local.Location())
}

// NewSession resolves the timezone and parses the open and close times.
// A zone the runtime cannot load is a configuration error; callers should
// treat it as fatal at startup.
func NewSession(timezone, open, close string) (Session, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Session{}, fmt.Errorf("%w %q: %v", ErrUnsupportedTimezone, timezone, err)
	}
	openAt, err := ParseClock(open)
	if err != nil {
		return Session{}, fmt.Errorf("session open: %w", err)
	}
	closeAt, err := ParseClock(close)
	if err != nil {
		return Session{}, fmt.Errorf("session close: %w", err)
	}
	return Session{Location: loc, Open: openAt, Close: closeAt}, nil
}

// MustSession is like NewSession but panics on error.
func MustSession(timezone, open, close string) Session {
	s, err := NewSession(timezone, open, close)
	if err != nil {
		panic(err)
	}
	return s
}

// isWeekday reports whether t falls Monday through Friday.
func isWeekday(t time.Time) bool {
	return t.Weekday() >= time.Monday && t.Weekday() <= time.Friday
}

// Contains reports whether t is inside the session. Both bounds are inclusive.
func (s Session) Contains(t time.Time) bool {
	local := t.In(s.Location)
	if !isWeekday(local) {
		return false
	}
	return !local.Before(s.Open.on(local)) && !local.After(s.Close.on(local))
}

// EvaluateMarketStatus computes the open flag and display time of a session at now.
func EvaluateMarketStatus(now time.Time, s Session) MarketStatus {
	local := now.In(s.Location)
	return MarketStatus{
		Open:        s.Contains(now),
		DisplayTime: local.Format(displayLayout),
		Timezone:    s.Location.String(),
	}
}
