package response

import (
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	"openhours/internal/core/domain/restaurant"
)

type WeekPosition struct {
	Seconds int64  `json:"seconds"`
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

func (w *WeekPosition) FromDomainType(m modweek.ModWeek) {
	w.Seconds = m.Seconds()
	w.Weekday = modweek.WeekdayAbbr(m.Weekday())
	w.Hour = m.Hour()
	w.Minute = m.Minute()
}

type Interval struct {
	Open  WeekPosition `json:"open"`
	Close WeekPosition `json:"close"`
}

func (i *Interval) FromDomainType(di hours.Interval) {
	i.Open.FromDomainType(di.Open)
	i.Close.FromDomainType(di.Close)
}

func NewIntervals(intervals []hours.Interval) []Interval {
	result := make([]Interval, len(intervals))
	for ix, interval := range intervals {
		result[ix].FromDomainType(interval)
	}
	return result
}

type Restaurant struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Hours     string     `json:"hours"`
	Intervals []Interval `json:"intervals"`
}

func (r *Restaurant) FromDomainType(dr restaurant.RestaurantWithIntervals) {
	r.ID = int64(dr.ID)
	r.Name = dr.Name
	r.Hours = dr.Hours
	r.Intervals = NewIntervals(dr.Intervals)
}
