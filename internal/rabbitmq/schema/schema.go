package schema

import (
	"errors"
	"fmt"
	"openhours/internal/core/domain/restaurant"

	"github.com/goccy/go-json"
)

var ErrInvalidMessage = errors.New("invalid restaurant message")

type Restaurant struct {
	Name  string `json:"name"`
	Hours string `json:"hours"`
}

func FromRecord(record restaurant.Record) Restaurant {
	return Restaurant{Name: record.Name, Hours: record.Hours}
}

func (r Restaurant) Record() restaurant.Record {
	return restaurant.NewRecord(r.Name, r.Hours)
}

func (r *Restaurant) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Restaurant) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}
