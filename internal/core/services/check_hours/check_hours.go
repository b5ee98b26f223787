package checkhours

import (
	"context"
	"errors"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/modweek"
	"openhours/internal/core/services"
	"time"
)

type Input struct {
	Hours     string
	At        time.Time
	ClientKey string
}

func (i Input) GetRateLimitKey() string {
	return "check-hours::" + i.ClientKey
}

type Result struct {
	Intervals []hours.Interval
	Rest      string
	At        modweek.ModWeek
	IsOpen    bool
}

type service struct {
	log      logging.Logger
	parser   hours.Parser
	location *time.Location
}

func New(
	log logging.Logger,
	parser hours.Parser,
	location *time.Location,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if location == nil {
		panic(e.NewNilArgumentError("location"))
	}
	return &service{log: log, parser: parser, location: location}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	intervals, rest, err := s.parser.Parse(ctx, input.Hours)
	if err != nil {
		if !errors.Is(err, hours.ErrParsing) {
			logging.Error(s.log, ctx, err, logging.Entry("hours", input.Hours))
		}
		return result, err
	}

	result.Intervals = intervals
	result.Rest = rest
	result.At = modweek.FromTime(input.At, s.location)
	result.IsOpen = hours.IsOpen(intervals, result.At)
	return result, nil
}
