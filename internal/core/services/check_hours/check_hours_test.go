package checkhours

import (
	"context"
	"errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/modweek"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2022-11-14 is a Monday.
var Monday = time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC)

func TestCheckHours(t *testing.T) {
	parser := hours.NewFakeParser()
	parser.Intervals = []hours.Interval{
		{Open: modweek.MustFromParts(modweek.Monday, 9, 0), Close: modweek.MustFromParts(modweek.Monday, 17, 0)},
	}
	parser.Rest = " (closed on holidays)"
	service := New(logging.NewFakeLogger(), parser, time.UTC)

	cases := []struct {
		id     string
		at     time.Time
		isOpen bool
	}{
		{id: "before opening", at: Monday.Add(8*time.Hour + 59*time.Minute), isOpen: false},
		{id: "at opening", at: Monday.Add(9 * time.Hour), isOpen: true},
		{id: "before closing", at: Monday.Add(16*time.Hour + 59*time.Minute), isOpen: true},
		{id: "at closing", at: Monday.Add(17 * time.Hour), isOpen: false},
		{id: "next week", at: Monday.AddDate(0, 0, 7).Add(10 * time.Hour), isOpen: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			result, err := service.Run(context.Background(), Input{Hours: "Mon 9 am - 5 pm", At: testcase.at})

			require.Nil(t, err)
			require.Equal(t, testcase.isOpen, result.IsOpen)
			require.Equal(t, parser.Intervals, result.Intervals)
			require.Equal(t, " (closed on holidays)", result.Rest)
			require.Equal(t, modweek.FromTime(testcase.at, time.UTC), result.At)
		})
	}
}

func TestCheckHoursParseError(t *testing.T) {
	logger := logging.NewFakeLogger()
	parser := hours.NewFakeParser()
	parser.Err = &hours.ParseError{Rest: "whenever"}

	_, err := New(logger, parser, time.UTC).Run(context.Background(), Input{Hours: "whenever", At: Monday})

	require.ErrorIs(t, err, hours.ErrParsing)
	require.Equal(t, 0, logger.CountLevel(logging.ERROR))
}

func TestCheckHoursUnexpectedError(t *testing.T) {
	logger := logging.NewFakeLogger()
	parser := hours.NewFakeParser()
	parser.Err = errors.New("cache exploded")

	_, err := New(logger, parser, time.UTC).Run(context.Background(), Input{Hours: "Mon 9 am - 5 pm", At: Monday})

	require.ErrorIs(t, err, parser.Err)
	require.Equal(t, 1, logger.CountLevel(logging.ERROR))
}
