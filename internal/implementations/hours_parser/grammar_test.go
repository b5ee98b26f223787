package hoursparser

import (
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(weekday, hour, minute int) modweek.ModWeek {
	return modweek.MustFromParts(weekday, hour, minute)
}

func TestWeekday(t *testing.T) {
	assert := require.New(t)

	fail := weekday("notaweekday")
	assert.False(fail.Ok())
	assert.Equal("notaweekday", fail.Rest())

	lower := weekday("mon")
	assert.False(lower.Ok())

	pass := weekday("Mon-Fri")
	assert.True(pass.Ok())
	assert.Equal("-Fri", pass.Rest())
	assert.Equal([]fragment{days{indices: []int{modweek.Monday}}}, pass.Fragments())

	sunday := weekday("Sun")
	assert.True(sunday.Ok())
	assert.Equal([]fragment{days{indices: []int{modweek.Sunday}}}, sunday.Fragments())

	for _, input := range []string{"", "M", "Mo", "\xffon"} {
		assert.False(weekday(input).Ok(), input)
	}
}

func TestDayRange(t *testing.T) {
	cases := []struct {
		input    string
		expected []int
		rest     string
	}{
		{"Mon-Fri ", []int{0, 1, 2, 3, 4}, " "},
		{"Sat-Tue", []int{5, 6, 0, 1}, ""},
		{"Sun-Mon", []int{6, 0}, ""},
		{"Wed-Wed", []int{2}, ""},
		{"Thu-Wed", []int{3, 4, 5, 6, 0, 1, 2}, ""},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			result := dayRange(testcase.input)
			require.True(t, result.Ok())
			assert.Equal(t, testcase.rest, result.Rest())
			assert.Equal(t, []fragment{days{indices: testcase.expected}}, result.Fragments())
		})
	}

	for _, input := range []string{"Mon-Cat", "Mon", "Mon-", "Mon Fri", "-Fri"} {
		result := dayRange(input)
		assert.False(t, result.Ok(), input)
		assert.Equal(t, input, result.Rest(), input)
	}
}

func TestDayRangeCoversEveryPair(t *testing.T) {
	for a := 0; a < modweek.DaysPerWeek; a++ {
		for b := 0; b < modweek.DaysPerWeek; b++ {
			input := modweek.WeekdayAbbr(a) + "-" + modweek.WeekdayAbbr(b)
			result := dayRange(input)
			require.True(t, result.Ok(), input)

			expectedLength := (b-a+modweek.DaysPerWeek)%modweek.DaysPerWeek + 1
			expected := make([]int, 0, expectedLength)
			for i := 0; i < expectedLength; i++ {
				expected = append(expected, (a+i)%modweek.DaysPerWeek)
			}
			require.Equal(t, []fragment{days{indices: expected}}, result.Fragments(), input)
		}
	}
}

func TestDayList(t *testing.T) {
	cases := []struct {
		input    string
		expected []int
		rest     string
	}{
		{"Mon-Tue, Thu, Sat-Sun 9:00", []int{0, 1, 3, 5, 6}, " 9:00"},
		{"Mon", []int{0}, ""},
		{"Fri, Mon-Wed", []int{4, 0, 1, 2}, ""},
		{"Mon, Mon-Tue", []int{0, 0, 1}, ""},
		{"Mon, ", []int{0}, ", "},
		{"Mon,Tue", []int{0}, ",Tue"},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			result := dayList(testcase.input)
			require.True(t, result.Ok())
			assert.Equal(t, testcase.rest, result.Rest())
			assert.Equal(t, []fragment{days{indices: testcase.expected}}, result.Fragments())
		})
	}

	fail := dayList(" Mon")
	assert.False(t, fail.Ok())
	assert.Equal(t, " Mon", fail.Rest())
}

func TestNumber(t *testing.T) {
	cases := []struct {
		input    string
		expected int
		rest     string
	}{
		{"5a", 5, "a"},
		{"55a5", 55, "a5"},
		{"555", 55, "5"},
		{"09", 9, ""},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			result := number(testcase.input)
			require.True(t, result.Ok())
			assert.Equal(t, testcase.rest, result.Rest())
			assert.Equal(t, []fragment{numeral{value: testcase.expected}}, result.Fragments())
		})
	}

	assert.False(t, number("aa").Ok())
	assert.False(t, number("").Ok())
}

func TestHourAndMinuteBounds(t *testing.T) {
	for _, input := range []string{"1", "9", "10", "12", "01"} {
		assert.True(t, hour(input).Ok(), input)
	}
	for _, input := range []string{"0", "00", "13", "99", "x"} {
		result := hour(input)
		assert.False(t, result.Ok(), input)
		assert.Equal(t, input, result.Rest(), input)
	}
	for _, input := range []string{"0", "00", "5", "30", "59"} {
		assert.True(t, minute(input).Ok(), input)
	}
	for _, input := range []string{"60", "99", ""} {
		assert.False(t, minute(input).Ok(), input)
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		input    string
		expected modweek.ModWeek
		rest     string
	}{
		{"12:00 am", at(modweek.Monday, 0, 0), ""},
		{"12:00 pm", at(modweek.Monday, 12, 0), ""},
		{"11:59 pm", at(modweek.Monday, 23, 59), ""},
		{"1:00 am", at(modweek.Monday, 1, 0), ""},
		{"12 am", at(modweek.Monday, 0, 0), ""},
		{"12:30 pm", at(modweek.Monday, 12, 30), ""},
		{"9 am - 5 pm", at(modweek.Monday, 9, 0), " - 5 pm"},
		{"4:30 pm", at(modweek.Monday, 16, 30), ""},
		{"10:5 am", at(modweek.Monday, 10, 5), ""},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			result := clock(testcase.input)
			require.True(t, result.Ok())
			assert.Equal(t, testcase.rest, result.Rest())
			assert.Equal(t, []fragment{timeOfDay{at: testcase.expected}}, result.Fragments())
		})
	}

	for _, input := range []string{"", "9", "9 ", "9am", "9 AM", "13 pm", "0 am", "9:60 am", "9: am", "9:30"} {
		result := clock(input)
		assert.False(t, result.Ok(), input)
		assert.Equal(t, input, result.Rest(), input)
	}
}

func TestClockSpan(t *testing.T) {
	result := clockSpan("8:00 am - 4:30 pm  / Sat")
	require.True(t, result.Ok())
	assert.Equal(t, "  / Sat", result.Rest())
	assert.Equal(
		t,
		[]fragment{timeRange{open: at(modweek.Monday, 8, 0), close: at(modweek.Monday, 16, 30)}},
		result.Fragments(),
	)

	for _, input := range []string{"8 am", "8 am -", "8 am-5 pm", "8 am - "} {
		assert.False(t, clockSpan(input).Ok(), input)
	}
}

func TestSegment(t *testing.T) {
	cases := []struct {
		input    string
		expected []hours.Interval
	}{
		{
			input: "Mon 11 pm - 2 am",
			expected: []hours.Interval{
				{Open: at(modweek.Monday, 23, 0), Close: at(modweek.Tuesday, 2, 0)},
			},
		},
		{
			input: "Sun 11 pm - 2 am",
			expected: []hours.Interval{
				{Open: at(modweek.Sunday, 23, 0), Close: at(modweek.Monday, 2, 0)},
			},
		},
		{
			input: "Fri-Sat 5 pm - 12:30 am",
			expected: []hours.Interval{
				{Open: at(modweek.Friday, 17, 0), Close: at(modweek.Saturday, 0, 30)},
				{Open: at(modweek.Saturday, 17, 0), Close: at(modweek.Sunday, 0, 30)},
			},
		},
		{
			input: "Tue, Thu 9 am - 9 am",
			expected: []hours.Interval{
				{Open: at(modweek.Tuesday, 9, 0), Close: at(modweek.Tuesday, 9, 0)},
				{Open: at(modweek.Thursday, 9, 0), Close: at(modweek.Thursday, 9, 0)},
			},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			result := segment(testcase.input)
			require.True(t, result.Ok())
			assert.Equal(t, "", result.Rest())
			assert.Equal(t, []fragment{schedule{intervals: testcase.expected}}, result.Fragments())
		})
	}
}

func TestToTimeOfDayRejectsMalformedStack(t *testing.T) {
	cases := []struct {
		id    string
		stack stack
	}{
		{id: "empty", stack: stack{}},
		{id: "no meridiem", stack: stack{numeral{value: 9}, numeral{value: 30}}},
		{id: "minute is not a numeral", stack: stack{numeral{value: 9}, meridiem{}, meridiem{}}},
		{id: "hour is not a numeral", stack: stack{meridiem{}, numeral{value: 30}, meridiem{}}},
		{id: "extra fragments", stack: stack{numeral{value: 1}, numeral{value: 9}, numeral{value: 30}, meridiem{}}},
		{id: "minute out of range", stack: stack{numeral{value: 9}, numeral{value: 60}, meridiem{}}},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fragments, ok := toTimeOfDay(testcase.stack)
			assert.False(t, ok)
			assert.Nil(t, fragments)
		})
	}

	fragments, ok := toTimeOfDay(stack{numeral{value: 9}, numeral{value: 30}, meridiem{pm: true}})
	require.True(t, ok)
	assert.Equal(t, []fragment{timeOfDay{at: modweek.MustFromParts(modweek.Monday, 21, 30)}}, fragments)
}

func TestPop(t *testing.T) {
	s := stack{numeral{value: 1}, meridiem{pm: true}}

	_, ok := pop[numeral](&s)
	assert.False(t, ok)
	assert.Len(t, s, 2)

	m, ok := pop[meridiem](&s)
	assert.True(t, ok)
	assert.True(t, m.pm)

	n, ok := pop[numeral](&s)
	assert.True(t, ok)
	assert.Equal(t, 1, n.value)

	_, ok = pop[numeral](&s)
	assert.False(t, ok)
}
