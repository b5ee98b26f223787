package findopenrestaurants

import (
	"context"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/modweek"
	"openhours/internal/core/domain/restaurant"
	"openhours/internal/core/services"
	"sort"
	"time"
)

type Input struct {
	At        time.Time
	ClientKey string
}

func (i Input) GetRateLimitKey() string {
	return "find-open-restaurants::" + i.ClientKey
}

type Result struct {
	At          modweek.ModWeek
	Restaurants []restaurant.RestaurantWithIntervals
}

type service struct {
	log        logging.Logger
	repository restaurant.Repository
	location   *time.Location
}

func New(
	log logging.Logger,
	repository restaurant.Repository,
	location *time.Location,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if location == nil {
		panic(e.NewNilArgumentError("location"))
	}
	return &service{log: log, repository: repository, location: location}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.At = modweek.FromTime(input.At, s.location)

	all, err := s.repository.Read(ctx, restaurant.ReadOptions{OrderBy: restaurant.OrderByNameAsc})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("at", input.At))
		return result, err
	}

	result.Restaurants = make([]restaurant.RestaurantWithIntervals, 0)
	for _, candidate := range all {
		if candidate.IsOpenAt(result.At) {
			result.Restaurants = append(result.Restaurants, candidate)
		}
	}
	sort.SliceStable(result.Restaurants, func(i, j int) bool {
		return result.Restaurants[i].Name < result.Restaurants[j].Name
	})

	s.log.Debug(
		ctx,
		"Open restaurants found.",
		logging.Entry("at", result.At.String()),
		logging.Entry("total", len(all)),
		logging.Entry("open", len(result.Restaurants)),
	)
	return result, nil
}
