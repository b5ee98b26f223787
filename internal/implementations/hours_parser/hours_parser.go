package hoursparser

import (
	"context"
	"openhours/internal/core/domain/hours"
)

type Parser struct{}

func New() hours.Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, text string) ([]hours.Interval, string, error) {
	return Parse(text)
}

// Parse reads a weekly-hours string such as
// "Mon-Wed, Fri 8:00 am - 4:30 pm  / Sat 10 am - 2:30 pm" and returns one
// interval per listed weekday, in order, together with any input that follows
// the last segment.
func Parse(text string) ([]hours.Interval, string, error) {
	result := hoursExpr(text)
	if !result.Ok() {
		return nil, text, &hours.ParseError{Rest: result.Rest()}
	}
	s := stack(result.Fragments())
	sch, ok := pop[schedule](&s)
	if !ok {
		return nil, text, &hours.ParseError{Rest: text}
	}
	return sch.intervals, result.Rest(), nil
}
