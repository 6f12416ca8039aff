package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dturkuler/humandesign-1/internal/chart"
	"github.com/dturkuler/humandesign-1/internal/chartstore"
)

// #region main

const dateLayout = "2006-01-02 15:04"

func main() {
	start := flag.String("start", "", "range start, \"YYYY-MM-DD HH:MM\" (UTC)")
	end := flag.String("end", "", "range end, \"YYYY-MM-DD HH:MM\" (UTC)")
	unit := flag.String("unit", "days", "step unit: years, months, days, hours or minutes")
	interval := flag.Int("interval", 1, "step size in the chosen unit")
	dbPath := flag.String("db", "", "also save computed charts to this SQLite file")
	flag.Parse()

	if *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "usage: hd-export --start \"YYYY-MM-DD HH:MM\" --end \"YYYY-MM-DD HH:MM\" [--unit days] [--interval 1] [--db charts.db]")
		os.Exit(2)
	}

	startTime, err := time.Parse(dateLayout, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse start: %v\n", err)
		os.Exit(1)
	}
	endTime, err := time.Parse(dateLayout, *end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse end: %v\n", err)
		os.Exit(1)
	}

	stamps, err := timestampRange(startTime, endTime, *unit, *interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var store *chartstore.Store
	if *dbPath != "" {
		store, err = chartstore.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open db: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	enc := json.NewEncoder(os.Stdout)
	for _, ts := range stamps {
		c, err := chart.Calculate(chart.BirthInput{
			Year: ts.Year(), Month: int(ts.Month()), Day: ts.Day(),
			Hour: ts.Hour(), Minute: ts.Minute(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ts.Format(dateLayout), err)
			os.Exit(1)
		}
		if err := enc.Encode(c); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		if store != nil {
			data, err := json.Marshal(c)
			if err != nil {
				fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
				os.Exit(1)
			}
			_, err = store.SaveChart(chartstore.ChartRecord{
				Year: ts.Year(), Month: int(ts.Month()), Day: ts.Day(),
				Hour: ts.Hour(), Minute: ts.Minute(),
				ChartJSON: string(data),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "save: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

// #endregion main

// #region range

// timestampRange steps backwards from end by interval units, covering
// the whole range. Seconds are zeroed; the range is treated as UTC.
func timestampRange(start, end time.Time, unit string, interval int) ([]time.Time, error) {
	if interval < 1 {
		return nil, fmt.Errorf("interval must be >= 1")
	}

	var unitSeconds float64
	switch unit {
	case "years":
		unitSeconds = 60 * 60 * 24 * 365.2425
	case "months":
		unitSeconds = 60 * 60 * 24 * 365.25 / 12
	case "days":
		unitSeconds = 60 * 60 * 24
	case "hours":
		unitSeconds = 60 * 60
	case "minutes":
		unitSeconds = 60
	default:
		return nil, fmt.Errorf("invalid time unit %q", unit)
	}

	steps := int(end.Sub(start).Seconds()/unitSeconds) / interval
	if steps < 1 {
		return nil, fmt.Errorf("end must exceed start by at least one interval")
	}

	out := make([]time.Time, 0, steps)
	for i := 0; i < steps; i++ {
		var ts time.Time
		switch unit {
		case "years":
			ts = end.AddDate(-i*interval, 0, 0)
		case "months":
			ts = end.AddDate(0, -i*interval, 0)
		default:
			ts = end.Add(-time.Duration(float64(i*interval)*unitSeconds) * time.Second)
		}
		out = append(out, ts.Truncate(time.Minute))
	}
	return out, nil
}

// #endregion range
