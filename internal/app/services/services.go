package services

import (
	"openhours/internal/app/deps"
	drl "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/services"
	checkhours "openhours/internal/core/services/check_hours"
	findopenrestaurants "openhours/internal/core/services/find_open_restaurants"
	importrestaurants "openhours/internal/core/services/import_restaurants"
	ratelimiting "openhours/internal/core/services/rate_limiting"
	saverestaurant "openhours/internal/core/services/save_restaurant"
)

type Services struct {
	SaveRestaurant      services.Service[saverestaurant.Input, saverestaurant.Result]
	FindOpenRestaurants services.Service[findopenrestaurants.Input, findopenrestaurants.Result]
	CheckHours          services.Service[checkhours.Input, checkhours.Result]
	// Nil when CSV_PATH is not set.
	ImportRestaurants services.Service[importrestaurants.Input, importrestaurants.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}
	limit := drl.Limit{Interval: drl.Minute, Value: deps.Config.RateLimitPerMinute}

	s.SaveRestaurant = saverestaurant.New(
		deps.Logger,
		deps.HoursParser,
		deps.UnitOfWork,
		deps.Now,
	)
	s.FindOpenRestaurants = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		findopenrestaurants.New(
			deps.Logger,
			deps.RestaurantRepository,
			deps.Location,
		),
	)
	s.CheckHours = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		checkhours.New(
			deps.Logger,
			deps.HoursParser,
			deps.Location,
		),
	)

	if deps.RecordReader != nil {
		queue := deps.ImportQueue
		if queue == nil {
			queue = importrestaurants.NewDirectQueue(s.SaveRestaurant)
		}
		s.ImportRestaurants = importrestaurants.New(deps.Logger, deps.RecordReader, queue)
	}

	return s
}
