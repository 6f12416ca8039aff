package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dturkuler/humandesign-1/internal/chart"
	"github.com/dturkuler/humandesign-1/internal/chartstore"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to charts.db")
	last := flag.Int("last", 20, "show N most recent charts")
	chartID := flag.String("chart", "", "show single chart detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: hd-inspect --db path/to/charts.db [--last N] [--chart id] [--json]")
		os.Exit(2)
	}

	store, err := chartstore.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *chartID != "" {
		err = runDetailMode(store, *chartID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	ChartID    string `json:"chart_id"`
	BirthDate  string `json:"birth_date"`
	Zone       string `json:"zone,omitempty"`
	EnergyType string `json:"energy_type"`
	Profile    string `json:"profile"`
	Authority  string `json:"authority"`
	CreatedAt  string `json:"created_at"`
}

func runListMode(store *chartstore.Store, last int, jsonOut bool) error {
	records, err := store.ListCharts(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no charts found")
		return nil
	}

	rows := make([]listRow, len(records))
	for i, rec := range records {
		var c chart.Chart
		if err := json.Unmarshal([]byte(rec.ChartJSON), &c); err != nil {
			return fmt.Errorf("chart %s: %w", rec.ChartID, err)
		}
		rows[i] = listRow{
			ChartID:    rec.ChartID,
			BirthDate:  c.BirthDate,
			Zone:       rec.Zone,
			EnergyType: c.EnergyType,
			Profile:    c.Profile,
			Authority:  c.Authority,
			CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	fmt.Printf("%-36s  %-19s  %-22s  %-7s  %-10s  %s\n",
		"Chart", "Birth", "Type", "Profile", "Authority", "Stored")
	for _, row := range rows {
		fmt.Printf("%-36s  %-19s  %-22s  %-7s  %-10s  %s\n",
			row.ChartID, row.BirthDate, row.EnergyType, row.Profile, row.Authority, row.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *chartstore.Store, chartID string, jsonOut bool) error {
	rec, err := store.GetChart(chartID)
	if err != nil {
		return err
	}

	var c chart.Chart
	if err := json.Unmarshal([]byte(rec.ChartJSON), &c); err != nil {
		return fmt.Errorf("chart %s: %w", rec.ChartID, err)
	}

	if jsonOut {
		return printJSON(c)
	}

	fmt.Printf("Chart %s (stored %s)\n", rec.ChartID, rec.CreatedAt.Format("2006-01-02T15:04:05Z"))
	fmt.Printf("  Birth      %s", c.BirthDate)
	if rec.Zone != "" {
		fmt.Printf(" (%s)", rec.Zone)
	}
	fmt.Println()
	fmt.Printf("  Design     %s\n", c.DesignDate)
	fmt.Printf("  Type       %s\n", c.EnergyType)
	fmt.Printf("  Authority  %s (%s)\n", c.AuthorityName, c.Authority)
	fmt.Printf("  Profile    %s\n", c.Profile)
	fmt.Printf("  Cross      %s\n", c.IncarnationCross)
	fmt.Printf("  Centers    %v\n", c.DefinedCenters)
	fmt.Printf("  Channels   %v\n", c.ActiveChannels)
	fmt.Printf("  Gates      %v\n", c.ActiveGates)
	return nil
}

// #endregion detail-mode

// #region helpers

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
