package restaurant

import (
	"context"
	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"time"
)

type UpsertInput struct {
	Name  string
	Hours string
	At    time.Time
}

type ReadOptions struct {
	NameEquals c.Optional[string]
	OrderBy    OrderBy
	Limit      c.Optional[uint]
	Offset     uint
}

type Repository interface {
	Upsert(ctx context.Context, input UpsertInput) (Restaurant, error)
	GetByName(ctx context.Context, name string) (RestaurantWithIntervals, error)
	Read(ctx context.Context, options ReadOptions) ([]RestaurantWithIntervals, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
}

type IntervalRepository interface {
	Replace(ctx context.Context, id ID, intervals []hours.Interval) error
}

type ImportQueue interface {
	Publish(ctx context.Context, record Record) error
}

type RecordReader interface {
	ReadRecords(ctx context.Context) ([]Record, error)
}
