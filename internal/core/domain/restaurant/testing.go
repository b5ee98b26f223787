package restaurant

import (
	"context"
	"openhours/internal/core/domain/hours"
	"sort"
	"sync"
)

// FakeRepository is an in-memory Repository and IntervalRepository.
type FakeRepository struct {
	UpsertError  error
	ReplaceError error
	ReadError    error
	ReadWith     []ReadOptions

	restaurants map[string]RestaurantWithIntervals
	nextID      ID
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{restaurants: make(map[string]RestaurantWithIntervals)}
}

func (r *FakeRepository) Upsert(ctx context.Context, input UpsertInput) (Restaurant, error) {
	if r.UpsertError != nil {
		return Restaurant{}, r.UpsertError
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.restaurants[input.Name]
	if !ok {
		r.nextID++
		existing.ID = r.nextID
		existing.Name = input.Name
		existing.CreatedAt = input.At
	}
	existing.Hours = input.Hours
	existing.UpdatedAt = input.At
	r.restaurants[input.Name] = existing
	return existing.Restaurant, nil
}

func (r *FakeRepository) Replace(ctx context.Context, id ID, intervals []hours.Interval) error {
	if r.ReplaceError != nil {
		return r.ReplaceError
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	for name, rest := range r.restaurants {
		if rest.ID == id {
			rest.Intervals = append([]hours.Interval(nil), intervals...)
			r.restaurants[name] = rest
			return nil
		}
	}
	return ErrRestaurantDoesNotExist
}

func (r *FakeRepository) GetByName(ctx context.Context, name string) (RestaurantWithIntervals, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	rest, ok := r.restaurants[name]
	if !ok {
		return rest, ErrRestaurantDoesNotExist
	}
	return rest, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]RestaurantWithIntervals, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	result := make([]RestaurantWithIntervals, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		if options.NameEquals.IsPresent && rest.Name != options.NameEquals.Value {
			continue
		}
		result = append(result, rest)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	if options.Offset >= uint(len(result)) {
		return []RestaurantWithIntervals{}, nil
	}
	result = result[options.Offset:]
	if options.Limit.IsPresent && options.Limit.Value < uint(len(result)) {
		result = result[:options.Limit.Value]
	}
	return result, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	options.Offset = 0
	options.Limit.IsPresent = false
	rests, err := r.Read(ctx, options)
	return uint(len(rests)), err
}

type FakeImportQueue struct {
	Published []Record
	Err       error
	lock      sync.Mutex
}

func NewFakeImportQueue() *FakeImportQueue {
	return &FakeImportQueue{}
}

func (q *FakeImportQueue) Publish(ctx context.Context, record Record) error {
	if q.Err != nil {
		return q.Err
	}
	q.lock.Lock()
	defer q.lock.Unlock()
	q.Published = append(q.Published, record)
	return nil
}

type FakeRecordReader struct {
	Records []Record
	Err     error
}

func NewFakeRecordReader(records ...Record) *FakeRecordReader {
	return &FakeRecordReader{Records: records}
}

func (r *FakeRecordReader) ReadRecords(ctx context.Context) ([]Record, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Records, nil
}
