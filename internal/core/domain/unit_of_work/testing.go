package uow

import (
	"context"
	"openhours/internal/core/domain/restaurant"
)

type FakeUnitOfWorkContext struct {
	Repository        *restaurant.FakeRepository
	CommitError       error
	WasRollbackCalled bool
	WasCommitCalled   bool
}

func NewFakeUnitOfWorkContext(repository *restaurant.FakeRepository) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{Repository: repository}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return c.CommitError
}

func (c *FakeUnitOfWorkContext) Restaurants() restaurant.Repository {
	return c.Repository
}

func (c *FakeUnitOfWorkContext) Intervals() restaurant.IntervalRepository {
	return c.Repository
}

type FakeUnitOfWork struct {
	Context    *FakeUnitOfWorkContext
	BeginError error
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(restaurant.NewFakeRepository()),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginError != nil {
		return nil, u.BeginError
	}
	return u.Context, nil
}
