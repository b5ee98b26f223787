package modweek

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPartsInvalid(t *testing.T) {
	cases := []struct {
		weekday, hour, minute int
		err                   error
	}{
		{-1, 10, 10, ErrInvalidWeekday},
		{7, 23, 12, ErrInvalidWeekday},
		{4, -1, 23, ErrInvalidHour},
		{6, 24, 56, ErrInvalidHour},
		{2, 13, -1, ErrInvalidMinute},
		{1, 7, 60, ErrInvalidMinute},
	}

	for _, testcase := range cases {
		_, err := FromParts(testcase.weekday, testcase.hour, testcase.minute)
		assert.ErrorIs(t, err, testcase.err)
		assert.Panics(t, func() { MustFromParts(testcase.weekday, testcase.hour, testcase.minute) })
	}
}

func TestFromParts(t *testing.T) {
	assert := require.New(t)

	m, err := FromParts(Tuesday, 9, 4)
	assert.Nil(err)
	assert.Equal(int64(SecondsPerDay+9*SecondsPerHour+4*SecondsPerMinute), m.Seconds())
	assert.Equal(Tuesday, m.Weekday())
	assert.Equal(9, m.Hour())
	assert.Equal(4, m.Minute())
	assert.Equal("Tue 09:04", m.String())
	assert.Equal(MustFromParts(Monday, 9, 4), m.TimeOfDay())
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, ModWeek(0), New(SecondsPerWeek))
	assert.Equal(t, ModWeek(SecondsPerWeek-1), New(-1))
	assert.Equal(t, ModWeek(5), New(3*SecondsPerWeek+5))
	assert.Equal(t, ModWeek(SecondsPerWeek-5), New(-3*SecondsPerWeek-5))
}

func TestArithmetic(t *testing.T) {
	oneDay := MustFromParts(Tuesday, 0, 0)
	oneHour := MustFromParts(Monday, 1, 0)
	monday904 := MustFromParts(Monday, 9, 4)
	sunday2311 := MustFromParts(Sunday, 23, 11)

	assert.Equal(t, MustFromParts(Monday, 10, 4), monday904.Add(oneHour))
	assert.Equal(t, MustFromParts(Monday, 8, 4), monday904.Sub(oneHour))
	assert.Equal(t, MustFromParts(Monday, 23, 11), sunday2311.Add(oneDay))
	assert.Equal(t, MustFromParts(Sunday, 9, 4), monday904.Sub(oneDay))
	assert.Equal(t, oneDay, Day)
	assert.Equal(t, oneHour, Hour)
}

func TestContains(t *testing.T) {
	cases := []struct {
		name    string
		openAt  ModWeek
		closeAt ModWeek
	}{
		{"no overflow", MustFromParts(Tuesday, 0, 0), MustFromParts(Thursday, 0, 0)},
		{"overflow", MustFromParts(Sunday, 0, 0), MustFromParts(Wednesday, 0, 0)},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			assert := require.New(t)
			assert.False(Contains(testcase.openAt, testcase.closeAt, testcase.openAt.Sub(Day)), "just before")
			assert.True(Contains(testcase.openAt, testcase.closeAt, testcase.openAt), "open")
			assert.True(Contains(testcase.openAt, testcase.closeAt, testcase.openAt.Add(Day)), "midway")
			assert.False(Contains(testcase.openAt, testcase.closeAt, testcase.closeAt), "close")
		})
	}
}

func TestContainsEmptyInterval(t *testing.T) {
	at := MustFromParts(Friday, 9, 0)
	assert.False(t, Contains(at, at, at))
	assert.False(t, Contains(at, at, at.Add(Hour)))
}

func TestContainsHalfOpenLaw(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10_000; i++ {
		openAt := New(rnd.Int63n(SecondsPerWeek))
		closeAt := New(rnd.Int63n(SecondsPerWeek))
		if openAt == closeAt {
			continue
		}
		require.True(t, Contains(openAt, closeAt, openAt), "open=%v close=%v", openAt, closeAt)
		require.False(t, Contains(openAt, closeAt, closeAt), "open=%v close=%v", openAt, closeAt)
	}
}

func TestContainsShiftInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 10_000; i++ {
		openAt := New(rnd.Int63n(SecondsPerWeek))
		closeAt := New(rnd.Int63n(SecondsPerWeek))
		now := New(rnd.Int63n(SecondsPerWeek))
		k := New(rnd.Int63n(SecondsPerWeek))
		require.Equal(
			t,
			Contains(openAt, closeAt, now),
			Contains(openAt.Add(k), closeAt.Add(k), now.Add(k)),
			"open=%v close=%v now=%v k=%v", openAt, closeAt, now, k,
		)
	}
}

func TestFromTime(t *testing.T) {
	kaliningrad, err := time.LoadLocation("Europe/Kaliningrad")
	require.Nil(t, err)

	cases := []struct {
		at       time.Time
		loc      *time.Location
		expected ModWeek
	}{
		{time.Date(2020, 11, 14, 13, 45, 59, 0, time.UTC), time.UTC, MustFromParts(Saturday, 13, 45)},
		{time.Date(2020, 11, 15, 23, 59, 0, 0, time.UTC), time.UTC, MustFromParts(Sunday, 23, 59)},
		{time.Date(2020, 11, 16, 0, 0, 0, 0, time.UTC), nil, MustFromParts(Monday, 0, 0)},
		{time.Date(2020, 11, 15, 23, 30, 0, 0, time.UTC), kaliningrad, MustFromParts(Monday, 1, 30)},
	}

	for _, testcase := range cases {
		t.Run(testcase.at.String(), func(t *testing.T) {
			assert.Equal(t, testcase.expected, FromTime(testcase.at, testcase.loc))
		})
	}
}

func TestFromTimeEveryWeekday(t *testing.T) {
	// 2020-11-16 is a Monday.
	monday := time.Date(2020, 11, 16, 9, 30, 0, 0, time.UTC)
	for day := 0; day < DaysPerWeek; day++ {
		at := monday.AddDate(0, 0, day)
		t.Run(at.Weekday().String(), func(t *testing.T) {
			got := FromTime(at, time.UTC)
			assert.Equal(t, day, got.Weekday())
			assert.Equal(t, MustFromParts(day, 9, 30), got)
		})
	}
}
