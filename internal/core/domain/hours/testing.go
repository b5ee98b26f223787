package hours

import (
	"context"
	"sync"
)

type FakeParser struct {
	Intervals  []Interval
	Rest       string
	Err        error
	CalledWith []string
	lock       sync.Mutex
}

func NewFakeParser() *FakeParser {
	return &FakeParser{}
}

func (p *FakeParser) Parse(ctx context.Context, text string) ([]Interval, string, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.CalledWith = append(p.CalledWith, text)
	if p.Err != nil {
		return nil, text, p.Err
	}
	return p.Intervals, p.Rest, nil
}
