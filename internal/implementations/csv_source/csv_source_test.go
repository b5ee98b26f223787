package csvsource

import (
	"context"
	"openhours/internal/core/domain/restaurant"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const Rows = `"The Cheesecake Factory","Mon-Thu 11 am - 11 pm  / Fri-Sat 11 am - 12:30 am  / Sun 10 am - 11 pm"
"Morris Park Bake Shop","Mon-Fri 7 am - 9 pm  / Sat-Sun 8 am - 11 pm"
Osakaya,Mon 9 am - 5 pm
`

func TestReadRecords(t *testing.T) {
	records, err := New(strings.NewReader(Rows), false).ReadRecords(context.Background())

	require.Nil(t, err)
	require.Equal(t, []restaurant.Record{
		{Name: "The Cheesecake Factory", Hours: "Mon-Thu 11 am - 11 pm  / Fri-Sat 11 am - 12:30 am  / Sun 10 am - 11 pm"},
		{Name: "Morris Park Bake Shop", Hours: "Mon-Fri 7 am - 9 pm  / Sat-Sun 8 am - 11 pm"},
		{Name: "Osakaya", Hours: "Mon 9 am - 5 pm"},
	}, records)
}

func TestReadRecordsSkipsHeader(t *testing.T) {
	records, err := New(strings.NewReader("Restaurant Name,Hours\n"+Rows), true).ReadRecords(context.Background())

	require.Nil(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "The Cheesecake Factory", records[0].Name)
}

func TestReadRecordsEmpty(t *testing.T) {
	records, err := New(strings.NewReader(""), false).ReadRecords(context.Background())

	require.Nil(t, err)
	require.Empty(t, records)
}

func TestReadRecordsInvalidRows(t *testing.T) {
	cases := []struct {
		id    string
		input string
	}{
		{id: "one field", input: "Osakaya\n"},
		{id: "three fields", input: "Osakaya,Mon 9 am - 5 pm,extra\n"},
		{id: "second row broken", input: "Osakaya,Mon 9 am - 5 pm\nBroken\n"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			_, err := New(strings.NewReader(testcase.input), false).ReadRecords(context.Background())
			require.ErrorIs(t, err, ErrInvalidRow)
		})
	}
}

func TestReadRecordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest_hours.csv")
	require.Nil(t, os.WriteFile(path, []byte(Rows), 0o600))

	records, err := NewFile(path, false).ReadRecords(context.Background())

	require.Nil(t, err)
	require.Len(t, records, 3)
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing.csv"), false).ReadRecords(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecordsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(strings.NewReader(Rows), false).ReadRecords(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
