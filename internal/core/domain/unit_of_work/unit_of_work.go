package uow

import (
	"context"
	"openhours/internal/core/domain/restaurant"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Restaurants() restaurant.Repository
	Intervals() restaurant.IntervalRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
