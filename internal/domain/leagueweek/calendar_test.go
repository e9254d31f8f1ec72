package leagueweek

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumber(t *testing.T) {
	cal := NewCalendar(date(2024, time.November, 1))

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{name: "start day", at: date(2024, time.November, 1), want: 1},
		{name: "last day of week one", at: date(2024, time.November, 7), want: 1},
		{name: "seven days later", at: date(2024, time.November, 8), want: 2},
		{name: "late in the day", at: time.Date(2024, time.November, 14, 23, 59, 0, 0, time.UTC), want: 2},
		{name: "before start", at: date(2024, time.October, 31), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.WeekNumber(tt.at); got != tt.want {
				t.Fatalf("WeekNumber(%s)=%d want=%d", tt.at, got, tt.want)
			}
		})
	}
}

func TestWeekNumber_UsesUTC(t *testing.T) {
	cal := NewCalendar(date(2024, time.November, 1))
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2024-11-08 03:00 in UTC+9 is still 2024-11-07 in UTC.
	at := time.Date(2024, time.November, 8, 3, 0, 0, 0, loc)
	if got := cal.WeekNumber(at); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
}

func TestRange(t *testing.T) {
	cal := NewCalendar(date(2024, time.October, 22))

	from, to, err := cal.Range(3)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if !from.Equal(date(2024, time.November, 5)) || !to.Equal(date(2024, time.November, 12)) {
		t.Fatalf("unexpected range %s..%s", from, to)
	}
	if cal.WeekNumber(from) != 3 || cal.WeekNumber(to) != 4 {
		t.Fatalf("range bounds disagree with WeekNumber")
	}

	if _, _, err := cal.Range(0); !errors.Is(err, ErrInvalidWeek) {
		t.Fatalf("expected ErrInvalidWeek, got %v", err)
	}
}

func TestCurrentAndWeeks(t *testing.T) {
	cal := NewCalendar(date(2024, time.October, 22))

	if got := cal.Current(date(2024, time.October, 1)); got != 1 {
		t.Fatalf("expected current week to clamp to 1, got %d", got)
	}
	weeks := cal.Weeks(date(2024, time.November, 5))
	if len(weeks) != 3 || weeks[0] != 1 || weeks[2] != 3 {
		t.Fatalf("unexpected weeks: %v", weeks)
	}
}

func TestParseWeek(t *testing.T) {
	cal := NewCalendar(date(2024, time.October, 22))
	now := date(2024, time.November, 5)

	if got, err := cal.ParseWeek("", now); err != nil || got != 3 {
		t.Fatalf("ParseWeek(empty)=(%d,%v)", got, err)
	}
	if got, err := cal.ParseWeek("2", now); err != nil || got != 2 {
		t.Fatalf("ParseWeek(2)=(%d,%v)", got, err)
	}
	for _, raw := range []string{"abc", "0", "-1", "1.5"} {
		if _, err := cal.ParseWeek(raw, now); !errors.Is(err, ErrInvalidWeek) {
			t.Fatalf("ParseWeek(%q) expected ErrInvalidWeek, got %v", raw, err)
		}
	}
}
