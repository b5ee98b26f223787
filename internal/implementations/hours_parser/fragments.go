package hoursparser

import (
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
)

// fragment is a value produced by a grammar rule. The set of fragment kinds
// is closed: only the types below implement it.
type fragment interface {
	isFragment()
}

type numeral struct {
	value int
}

type meridiem struct {
	pm bool
}

type days struct {
	indices []int
}

type timeOfDay struct {
	at modweek.ModWeek
}

type timeRange struct {
	open  modweek.ModWeek
	close modweek.ModWeek
}

type schedule struct {
	intervals []hours.Interval
}

func (numeral) isFragment()   {}
func (meridiem) isFragment()  {}
func (days) isFragment()      {}
func (timeOfDay) isFragment() {}
func (timeRange) isFragment() {}
func (schedule) isFragment()  {}

// stack holds the fragments matched by a rule's children in parse order.
// Rules pop them back in reverse.
type stack []fragment

func pop[T fragment](s *stack) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v, ok := (*s)[n-1].(T)
	if !ok {
		return zero, false
	}
	*s = (*s)[:n-1]
	return v, true
}
