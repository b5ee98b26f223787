package importrestaurants

import (
	"context"
	"errors"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/restaurant"
	"openhours/internal/core/services"
	saverestaurant "openhours/internal/core/services/save_restaurant"
)

type Input struct{}

type Result struct {
	Read      uint
	Published uint
	Skipped   uint
}

type service struct {
	log    logging.Logger
	reader restaurant.RecordReader
	queue  restaurant.ImportQueue
}

func New(
	log logging.Logger,
	reader restaurant.RecordReader,
	queue restaurant.ImportQueue,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reader == nil {
		panic(e.NewNilArgumentError("reader"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	return &service{log: log, reader: reader, queue: queue}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	records, err := s.reader.ReadRecords(ctx)
	if err != nil {
		logging.Error(s.log, ctx, err)
		return result, err
	}
	result.Read = uint(len(records))

	for _, record := range records {
		record = restaurant.NewRecord(record.Name, record.Hours)
		if err := record.Validate(); err != nil {
			s.log.Warning(ctx, "Restaurant record skipped.", logging.Entry("record", record), logging.Entry("err", err))
			result.Skipped++
			continue
		}
		if err := s.queue.Publish(ctx, record); err != nil {
			if isRecordError(err) {
				s.log.Warning(ctx, "Restaurant record rejected.", logging.Entry("record", record), logging.Entry("err", err))
				result.Skipped++
				continue
			}
			logging.Error(s.log, ctx, err, logging.Entry("record", record), logging.Entry("published", result.Published))
			return result, err
		}
		result.Published++
	}

	s.log.Info(
		ctx,
		"Restaurant records imported.",
		logging.Entry("read", result.Read),
		logging.Entry("published", result.Published),
		logging.Entry("skipped", result.Skipped),
	)
	return result, nil
}

func isRecordError(err error) bool {
	return errors.Is(err, restaurant.ErrInvalidRecord) ||
		errors.Is(err, hours.ErrParsing) ||
		errors.Is(err, hours.ErrTrailingInput)
}

// directQueue saves records in-process instead of handing them to a broker.
type directQueue struct {
	save services.Service[saverestaurant.Input, saverestaurant.Result]
}

func NewDirectQueue(save services.Service[saverestaurant.Input, saverestaurant.Result]) restaurant.ImportQueue {
	if save == nil {
		panic(e.NewNilArgumentError("save"))
	}
	return &directQueue{save: save}
}

func (q *directQueue) Publish(ctx context.Context, record restaurant.Record) error {
	_, err := q.save.Run(ctx, saverestaurant.Input{Record: record})
	return err
}
