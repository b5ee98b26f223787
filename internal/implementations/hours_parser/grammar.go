package hoursparser

import (
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	c "openhours/internal/implementations/combinator"
	"strings"
)

type parser = c.Parser[fragment]

const (
	daySeparator     = ", "
	rangeSeparator   = " - "
	segmentSeparator = "  / "
)

var (
	weekday  parser = matchWeekday
	dayRange        = mapTo(seq(weekday, char('-'), weekday), expandDayRange)
	dayTerm         = alt(dayRange, weekday)
	dayList         = mapTo(seq(dayTerm, many(seq(lit(daySeparator), dayTerm), 0)), collateDays)

	digit  = c.Digit(func(v int) fragment { return numeral{value: v} })
	number = alt(mapTo(seq(digit, digit), joinDigits), digit)
	hour   = bounded(number, 1, 12)
	minute = bounded(number, 0, 59)

	amPm = alt(
		mapTo(lit("am"), emit(meridiem{pm: false})),
		mapTo(lit("pm"), emit(meridiem{pm: true})),
	)

	clock     = mapTo(seq(hour, c.Optional(seq(char(':'), minute)), char(' '), amPm), toTimeOfDay)
	clockSpan = mapTo(seq(clock, lit(rangeSeparator), clock), toTimeRange)

	segment   = mapTo(seq(dayList, char(' '), clockSpan), toSchedule)
	hoursExpr = mapTo(seq(segment, many(seq(lit(segmentSeparator), segment), 0)), joinSchedules)
)

func seq(parsers ...parser) parser {
	return c.Sequence(parsers...)
}

func alt(parsers ...parser) parser {
	return c.Alternative(parsers...)
}

func many(p parser, min int) parser {
	return c.Repeat(p, min)
}

func char(ch byte) parser {
	return c.Char[fragment](ch)
}

func lit(s string) parser {
	return c.String[fragment](s)
}

func mapTo(p parser, f func(s stack) ([]fragment, bool)) parser {
	return c.Map(p, func(fragments []fragment) ([]fragment, bool) {
		return f(stack(fragments))
	})
}

func emit(f fragment) func(stack) ([]fragment, bool) {
	return func(s stack) ([]fragment, bool) {
		return []fragment{f}, len(s) == 0
	}
}

func matchWeekday(input string) c.Result[fragment] {
	for ix := 0; ix < modweek.DaysPerWeek; ix++ {
		abbr := modweek.WeekdayAbbr(ix)
		if strings.HasPrefix(input, abbr) {
			return c.Success([]fragment{days{indices: []int{ix}}}, input[len(abbr):])
		}
	}
	return c.Failure[fragment](input)
}

// expandDayRange turns "Sat-Tue" into Sat, Sun, Mon, Tue.
func expandDayRange(s stack) ([]fragment, bool) {
	end, ok := pop[days](&s)
	if !ok {
		return nil, false
	}
	start, ok := pop[days](&s)
	if !ok || len(s) != 0 {
		return nil, false
	}
	from, to := start.indices[0], end.indices[0]
	length := (to-from+modweek.DaysPerWeek)%modweek.DaysPerWeek + 1
	indices := make([]int, 0, length)
	for i := 0; i < length; i++ {
		indices = append(indices, (from+i)%modweek.DaysPerWeek)
	}
	return []fragment{days{indices: indices}}, true
}

func collateDays(s stack) ([]fragment, bool) {
	var all []int
	for _, f := range s {
		d, ok := f.(days)
		if !ok {
			return nil, false
		}
		all = append(all, d.indices...)
	}
	return []fragment{days{indices: all}}, true
}

func joinDigits(s stack) ([]fragment, bool) {
	low, ok := pop[numeral](&s)
	if !ok {
		return nil, false
	}
	high, ok := pop[numeral](&s)
	if !ok || len(s) != 0 {
		return nil, false
	}
	return []fragment{numeral{value: high.value*10 + low.value}}, true
}

func bounded(p parser, min, max int) parser {
	return mapTo(p, func(s stack) ([]fragment, bool) {
		n, ok := pop[numeral](&s)
		if !ok || len(s) != 0 || n.value < min || n.value > max {
			return nil, false
		}
		return []fragment{n}, true
	})
}

func toTimeOfDay(s stack) ([]fragment, bool) {
	m, ok := pop[meridiem](&s)
	if !ok {
		return nil, false
	}
	minutes := 0
	if len(s) == 2 {
		n, ok := pop[numeral](&s)
		if !ok {
			return nil, false
		}
		minutes = n.value
	}
	h, ok := pop[numeral](&s)
	if !ok || len(s) != 0 {
		return nil, false
	}
	hours24 := h.value % 12
	if m.pm {
		hours24 += 12
	}
	at, err := modweek.FromParts(modweek.Monday, hours24, minutes)
	if err != nil {
		return nil, false
	}
	return []fragment{timeOfDay{at: at}}, true
}

func toTimeRange(s stack) ([]fragment, bool) {
	closeAt, ok := pop[timeOfDay](&s)
	if !ok {
		return nil, false
	}
	openAt, ok := pop[timeOfDay](&s)
	if !ok || len(s) != 0 {
		return nil, false
	}
	return []fragment{timeRange{open: openAt.at, close: closeAt.at}}, true
}

// toSchedule builds one interval per listed weekday. When the closing time
// is earlier than the opening time the segment closes on the next day.
func toSchedule(s stack) ([]fragment, bool) {
	span, ok := pop[timeRange](&s)
	if !ok {
		return nil, false
	}
	d, ok := pop[days](&s)
	if !ok || len(s) != 0 {
		return nil, false
	}

	var rollover modweek.ModWeek
	if span.close < span.open {
		rollover = modweek.Day
	}

	intervals := make([]hours.Interval, 0, len(d.indices))
	for _, ix := range d.indices {
		dayStart, err := modweek.FromParts(ix, 0, 0)
		if err != nil {
			return nil, false
		}
		intervals = append(intervals, hours.Interval{
			Open:  dayStart.Add(span.open),
			Close: dayStart.Add(rollover).Add(span.close),
		})
	}
	return []fragment{schedule{intervals: intervals}}, true
}

func joinSchedules(s stack) ([]fragment, bool) {
	var all []hours.Interval
	for _, f := range s {
		sch, ok := f.(schedule)
		if !ok {
			return nil, false
		}
		all = append(all, sch.intervals...)
	}
	return []fragment{schedule{intervals: all}}, true
}
