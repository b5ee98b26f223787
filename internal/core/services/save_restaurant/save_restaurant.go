package saverestaurant

import (
	"context"
	"errors"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/restaurant"
	uow "openhours/internal/core/domain/unit_of_work"
	"openhours/internal/core/services"
	"time"
)

type Input struct {
	Record restaurant.Record
}

type Result struct {
	Restaurant restaurant.RestaurantWithIntervals
}

type service struct {
	log        logging.Logger
	parser     hours.Parser
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	parser hours.Parser,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		parser:     parser,
		unitOfWork: unitOfWork,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	record := restaurant.NewRecord(input.Record.Name, input.Record.Hours)
	if err := record.Validate(); err != nil {
		return result, err
	}

	intervals, err := hours.ParseStrict(ctx, s.parser, record.Hours)
	if err != nil {
		if errors.Is(err, hours.ErrParsing) || errors.Is(err, hours.ErrTrailingInput) {
			s.log.Warning(
				ctx,
				"Could not parse restaurant hours.",
				logging.Entry("name", record.Name),
				logging.Entry("hours", record.Hours),
				logging.Entry("err", err),
			)
			return result, err
		}
		logging.Error(s.log, ctx, err, logging.Entry("record", record))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("record", record))
		return result, err
	}
	defer uow.Rollback(ctx)

	saved, err := uow.Restaurants().Upsert(ctx, restaurant.UpsertInput{
		Name:  record.Name,
		Hours: record.Hours,
		At:    s.now(),
	})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("record", record))
		return result, err
	}

	if err := uow.Intervals().Replace(ctx, saved.ID, intervals); err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("restaurant", saved))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("restaurant", saved))
		return result, err
	}

	s.log.Info(
		ctx,
		"Restaurant saved.",
		logging.Entry("restaurantID", saved.ID),
		logging.Entry("name", saved.Name),
		logging.Entry("intervals", len(intervals)),
	)
	result.Restaurant = restaurant.RestaurantWithIntervals{Restaurant: saved, Intervals: intervals}
	return result, nil
}
