package hours

import (
	"context"
	"errors"
	"openhours/internal/core/domain/modweek"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpen(t *testing.T) {
	intervals := []Interval{
		{Open: modweek.MustFromParts(modweek.Monday, 9, 0), Close: modweek.MustFromParts(modweek.Monday, 17, 0)},
		{Open: modweek.MustFromParts(modweek.Sunday, 22, 0), Close: modweek.MustFromParts(modweek.Monday, 2, 0)},
	}

	cases := []struct {
		now      modweek.ModWeek
		expected bool
	}{
		{modweek.MustFromParts(modweek.Monday, 9, 0), true},
		{modweek.MustFromParts(modweek.Monday, 16, 59), true},
		{modweek.MustFromParts(modweek.Monday, 17, 0), false},
		{modweek.MustFromParts(modweek.Monday, 1, 59), true},
		{modweek.MustFromParts(modweek.Monday, 2, 0), false},
		{modweek.MustFromParts(modweek.Sunday, 23, 0), true},
		{modweek.MustFromParts(modweek.Sunday, 21, 59), false},
		{modweek.MustFromParts(modweek.Wednesday, 12, 0), false},
	}

	for _, testcase := range cases {
		t.Run(testcase.now.String(), func(t *testing.T) {
			assert.Equal(t, testcase.expected, IsOpen(intervals, testcase.now))
		})
	}
}

func TestIsOpenWithoutIntervals(t *testing.T) {
	assert.False(t, IsOpen(nil, modweek.MustFromParts(modweek.Monday, 12, 0)))
}

func TestParseError(t *testing.T) {
	var err error = &ParseError{Rest: "asdf"}
	assert.ErrorIs(t, err, ErrParsing)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "asdf", parseErr.Rest)
}

func TestParseStrict(t *testing.T) {
	ctx := context.Background()
	interval := Interval{Open: modweek.MustFromParts(modweek.Monday, 9, 0), Close: modweek.MustFromParts(modweek.Monday, 17, 0)}

	parser := NewFakeParser()
	parser.Intervals = []Interval{interval}
	intervals, err := ParseStrict(ctx, parser, "Mon 9 am - 5 pm")
	require.Nil(t, err)
	assert.Equal(t, []Interval{interval}, intervals)

	parser.Rest = " junk"
	_, err = ParseStrict(ctx, parser, "Mon 9 am - 5 pm junk")
	assert.ErrorIs(t, err, ErrTrailingInput)

	parser.Err = &ParseError{Rest: "asdf"}
	_, err = ParseStrict(ctx, parser, "asdf")
	assert.ErrorIs(t, err, ErrParsing)
}
