package leagueweek

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const daysPerWeek = 7

var ErrInvalidWeek = errors.New("invalid week")

// Calendar maps dates onto league weeks. Week 1 starts on Start; every week
// spans seven calendar days in UTC.
type Calendar struct {
	start time.Time
}

func NewCalendar(start time.Time) Calendar {
	return Calendar{start: truncateDay(start)}
}

func (c Calendar) Start() time.Time {
	return c.start
}

// WeekNumber returns floor(days since start / 7) + 1, or 0 for dates before
// the start.
func (c Calendar) WeekNumber(at time.Time) int {
	day := truncateDay(at)
	if day.Before(c.start) {
		return 0
	}
	days := int(day.Sub(c.start).Hours() / 24)
	return days/daysPerWeek + 1
}

// Range returns the half-open [from, to) interval covering week.
func (c Calendar) Range(week int) (time.Time, time.Time, error) {
	if week < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	from := c.start.AddDate(0, 0, (week-1)*daysPerWeek)
	return from, from.AddDate(0, 0, daysPerWeek), nil
}

// Current is the week containing now, never below 1.
func (c Calendar) Current(now time.Time) int {
	return max(1, c.WeekNumber(now))
}

// Weeks lists 1..Current(now) for selectors.
func (c Calendar) Weeks(now time.Time) []int {
	current := c.Current(now)
	out := make([]int, 0, current)
	for w := 1; w <= current; w++ {
		out = append(out, w)
	}
	return out
}

// ParseWeek reads a week query value. Empty selects Current(now).
func (c Calendar) ParseWeek(raw string, now time.Time) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return c.Current(now), nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeek, raw)
	}
	if week < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	return week, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
