package modweek

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay

	DaysPerWeek = 7
)

var (
	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")
	ErrInvalidHour    = errors.New("hour must be between 0 and 23")
	ErrInvalidMinute  = errors.New("minute must be between 0 and 59")
)

// Weekday indices. The week starts on Monday.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayAbbr = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ModWeek is a point in a repeating 7-day cycle, stored as seconds since
// Monday 00:00. The value is always in [0, SecondsPerWeek).
//
// Plain comparison of two ModWeek values is not cyclic; use Contains to
// check whether a point lies within an interval that may wrap.
type ModWeek int64

const (
	Day  = ModWeek(SecondsPerDay)
	Hour = ModWeek(SecondsPerHour)
)

func New(seconds int64) ModWeek {
	r := seconds % SecondsPerWeek
	if r < 0 {
		r += SecondsPerWeek
	}
	return ModWeek(r)
}

func FromParts(weekday, hour, minute int) (ModWeek, error) {
	if weekday < 0 || weekday >= DaysPerWeek {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidWeekday, weekday)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidHour, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidMinute, minute)
	}
	return New(int64(weekday)*SecondsPerDay + int64(hour)*SecondsPerHour + int64(minute)*SecondsPerMinute), nil
}

func MustFromParts(weekday, hour, minute int) ModWeek {
	m, err := FromParts(weekday, hour, minute)
	if err != nil {
		panic(err)
	}
	return m
}

// FromTime maps the wall clock of t in loc onto the weekly cycle.
// Seconds are truncated.
func FromTime(t time.Time, loc *time.Location) ModWeek {
	if loc == nil {
		loc = time.UTC
	}
	c := carbon.Time2Carbon(t.In(loc))
	// DayOfWeek counts from Sunday; Sunday may come back as 0 or 7.
	weekday := (c.DayOfWeek() + DaysPerWeek - 1) % DaysPerWeek
	return MustFromParts(weekday, c.Hour(), c.Minute())
}

func (m ModWeek) Add(other ModWeek) ModWeek {
	return New(int64(m) + int64(other))
}

func (m ModWeek) Sub(other ModWeek) ModWeek {
	return New(int64(m) - int64(other))
}

func (m ModWeek) Seconds() int64 {
	return int64(m)
}

func (m ModWeek) Weekday() int {
	return int(m.Seconds() / SecondsPerDay)
}

func (m ModWeek) Hour() int {
	return int(m.Seconds() % SecondsPerDay / SecondsPerHour)
}

func (m ModWeek) Minute() int {
	return int(m.Seconds() % SecondsPerHour / SecondsPerMinute)
}

// TimeOfDay drops the weekday part.
func (m ModWeek) TimeOfDay() ModWeek {
	return New(m.Seconds() % SecondsPerDay)
}

func (m ModWeek) String() string {
	return fmt.Sprintf("%s %02d:%02d", WeekdayAbbr(m.Weekday()), m.Hour(), m.Minute())
}

func WeekdayAbbr(weekday int) string {
	if weekday < 0 || weekday >= DaysPerWeek {
		return "???"
	}
	return weekdayAbbr[weekday]
}

// Contains reports whether now lies in the half-open interval [openAt, closeAt)
// measured forward around the cycle. An interval with openAt == closeAt is empty.
func Contains(openAt, closeAt, now ModWeek) bool {
	return now.Sub(openAt) < closeAt.Sub(openAt)
}
