package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/restaurant"
	"os"
)

var ErrInvalidRow = errors.New("invalid csv row")

// Reader reads "name,hours" rows. Quoted fields may contain commas.
type Reader struct {
	open      func() (io.ReadCloser, error)
	hasHeader bool
}

func New(r io.Reader, hasHeader bool) *Reader {
	if r == nil {
		panic(e.NewNilArgumentError("r"))
	}
	return &Reader{
		open:      func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		hasHeader: hasHeader,
	}
}

func NewFile(path string, hasHeader bool) *Reader {
	if path == "" {
		panic(e.NewEmptyArgumentError("path"))
	}
	return &Reader{
		open:      func() (io.ReadCloser, error) { return os.Open(path) },
		hasHeader: hasHeader,
	}
}

func (r *Reader) ReadRecords(ctx context.Context) ([]restaurant.Record, error) {
	source, err := r.open()
	if err != nil {
		return nil, fmt.Errorf("could not open csv source: %w", err)
	}
	defer source.Close()

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	records := make([]restaurant.Record, 0)
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read csv source: %w", err)
		}
		if line == 1 && r.hasHeader {
			continue
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrInvalidRow, line, len(row))
		}
		records = append(records, restaurant.NewRecord(row[0], row[1]))
	}
	return records, nil
}
