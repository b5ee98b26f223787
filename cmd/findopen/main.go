// Command findopen prints the restaurants from a CSV file that are open at a
// given moment. It needs no database, cache or broker.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	"openhours/internal/core/domain/restaurant"
	csvsource "openhours/internal/implementations/csv_source"
	hoursparser "openhours/internal/implementations/hours_parser"
	"os"
	"time"

	"github.com/golang-module/carbon/v2"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) error {
	flags := flag.NewFlagSet("findopen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	csvPath := flags.String("csv", "rest_hours.csv", "path to a name,hours CSV file")
	rawAt := flags.String("at", "", "moment to check, e.g. \"2020-11-14 13:45\" (default now)")
	timezone := flags.String("tz", "UTC", "timezone of -at and of the restaurant hours")
	hasHeader := flags.Bool("header", false, "skip the first CSV row")
	if err := flags.Parse(args); err != nil {
		return err
	}

	location, err := time.LoadLocation(*timezone)
	if err != nil {
		return fmt.Errorf("invalid -tz: %w", err)
	}
	at, err := parseAt(*rawAt, location, now)
	if err != nil {
		return err
	}

	records, err := csvsource.NewFile(*csvPath, *hasHeader).ReadRecords(ctx)
	if err != nil {
		return err
	}
	open, err := findOpen(ctx, records, modweek.FromTime(at, location))
	if err != nil {
		return err
	}
	for _, name := range open {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

const minuteLayout = "2006-01-02 15:04"

func parseAt(raw string, location *time.Location, now func() time.Time) (time.Time, error) {
	if raw == "" {
		return now().In(location), nil
	}
	parsed := carbon.ParseByLayout(raw, minuteLayout, location.String())
	if parsed.Error != nil {
		parsed = carbon.Parse(raw, location.String())
	}
	if parsed.Error != nil {
		return time.Time{}, fmt.Errorf("invalid -at: %w", parsed.Error)
	}
	return parsed.Carbon2Time(), nil
}

// findOpen keeps the CSV order and lists each restaurant at most once.
func findOpen(ctx context.Context, records []restaurant.Record, now modweek.ModWeek) ([]string, error) {
	parser := hoursparser.New()
	open := make([]string, 0)
	seen := map[string]struct{}{}
	for line, record := range records {
		intervals, err := hours.ParseStrict(ctx, parser, record.Hours)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", line+1, record.Name, err)
		}
		if _, ok := seen[record.Name]; ok {
			continue
		}
		if hours.IsOpen(intervals, now) {
			seen[record.Name] = struct{}{}
			open = append(open, record.Name)
		}
	}
	return open, nil
}
