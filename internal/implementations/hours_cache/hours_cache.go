package hourscache

import (
	"context"
	"errors"
	"fmt"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/modweek"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v9"
	"github.com/goccy/go-json"
)

// Redis caches successful parses of hours texts. Failed parses are never
// cached. Redis errors are logged and the inner parser is used instead.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	inner       hours.Parser
	ttl         time.Duration
}

func NewRedis(redisClient *redis.Client, log logging.Logger, inner hours.Parser, ttl time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &Redis{redisClient: redisClient, log: log, inner: inner, ttl: ttl}
}

type entry struct {
	Text      string     `json:"text"`
	Intervals [][2]int64 `json:"intervals"`
	Rest      string     `json:"rest"`
}

func newEntry(text string, intervals []hours.Interval, rest string) entry {
	encoded := make([][2]int64, 0, len(intervals))
	for _, interval := range intervals {
		encoded = append(encoded, [2]int64{interval.Open.Seconds(), interval.Close.Seconds()})
	}
	return entry{Text: text, Intervals: encoded, Rest: rest}
}

func (ce entry) decode() []hours.Interval {
	intervals := make([]hours.Interval, 0, len(ce.Intervals))
	for _, pair := range ce.Intervals {
		intervals = append(intervals, hours.Interval{Open: modweek.New(pair[0]), Close: modweek.New(pair[1])})
	}
	return intervals
}

func cacheKey(text string) string {
	return fmt.Sprintf("hours::%016x", xxhash.Sum64String(text))
}

func (r *Redis) Parse(ctx context.Context, text string) ([]hours.Interval, string, error) {
	key := cacheKey(text)

	cached, ok := r.get(ctx, key, text)
	if ok {
		return cached.decode(), cached.Rest, nil
	}

	intervals, rest, err := r.inner.Parse(ctx, text)
	if err != nil {
		return intervals, rest, err
	}
	r.set(ctx, key, newEntry(text, intervals, rest))
	return intervals, rest, nil
}

func (r *Redis) get(ctx context.Context, key string, text string) (result entry, ok bool) {
	raw, err := r.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return result, false
	}
	if err != nil {
		r.log.Warning(ctx, "Could not read hours cache.", logging.Entry("key", key), logging.Entry("err", err))
		return result, false
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		r.log.Warning(ctx, "Could not decode hours cache entry.", logging.Entry("key", key), logging.Entry("err", err))
		return result, false
	}
	// Hash collisions fall through to the parser.
	if result.Text != text {
		return result, false
	}
	return result, true
}

func (r *Redis) set(ctx context.Context, key string, value entry) {
	raw, err := json.Marshal(value)
	if err != nil {
		logging.Error(r.log, ctx, err, logging.Entry("key", key))
		return
	}
	if err := r.redisClient.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.log.Warning(ctx, "Could not write hours cache.", logging.Entry("key", key), logging.Entry("err", err))
	}
}
