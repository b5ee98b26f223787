package hours

import (
	"context"
	"errors"
	"fmt"
	"openhours/internal/core/domain/modweek"
)

var (
	ErrParsing       = errors.New("could not parse opening hours")
	ErrTrailingInput = errors.New("unexpected input after opening hours")
)

// ParseError carries the input that was left unconsumed when the grammar
// stopped matching.
type ParseError struct {
	Rest string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %q", ErrParsing.Error(), e.Rest)
}

func (e *ParseError) Unwrap() error {
	return ErrParsing
}

type Interval struct {
	Open  modweek.ModWeek
	Close modweek.ModWeek
}

func (i Interval) Contains(now modweek.ModWeek) bool {
	return modweek.Contains(i.Open, i.Close, now)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Open, i.Close)
}

func IsOpen(intervals []Interval, now modweek.ModWeek) bool {
	for _, interval := range intervals {
		if interval.Contains(now) {
			return true
		}
	}
	return false
}

type Parser interface {
	Parse(ctx context.Context, text string) (intervals []Interval, rest string, err error)
}

// ParseStrict requires the whole text to be consumed.
func ParseStrict(ctx context.Context, parser Parser, text string) ([]Interval, error) {
	intervals, rest, err := parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, rest)
	}
	return intervals, nil
}
