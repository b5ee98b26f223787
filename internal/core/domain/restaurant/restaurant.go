package restaurant

import (
	"fmt"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	"strings"
	"time"
)

type ID int64

type Restaurant struct {
	ID        ID
	Name      string
	Hours     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RestaurantWithIntervals struct {
	Restaurant
	Intervals []hours.Interval
}

func (r RestaurantWithIntervals) IsOpenAt(now modweek.ModWeek) bool {
	return hours.IsOpen(r.Intervals, now)
}

// Record is one raw line of the restaurant source: a name and a free-text
// weekly-hours string.
type Record struct {
	Name  string
	Hours string
}

func NewRecord(name, hours string) Record {
	return Record{Name: strings.TrimSpace(name), Hours: strings.TrimSpace(hours)}
}

func (r Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	}
	if r.Hours == "" {
		return fmt.Errorf("%w: empty hours for %q", ErrInvalidRecord, r.Name)
	}
	return nil
}
