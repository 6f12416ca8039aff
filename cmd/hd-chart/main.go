package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dturkuler/humandesign-1/internal/chart"
)

// #region main

func main() {
	year := flag.Int("year", 0, "birth year")
	month := flag.Int("month", 0, "birth month (1-12)")
	day := flag.Int("day", 0, "birth day (1-31)")
	hour := flag.Int("hour", 0, "birth hour (0-23)")
	minute := flag.Int("minute", 0, "birth minute (0-59)")
	second := flag.Int("second", 0, "birth second (0-59)")
	offset := flag.Float64("offset", 0, "UTC offset in decimal hours")
	zone := flag.String("zone", "", "IANA timezone name (overrides --offset)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *year == 0 || *month == 0 || *day == 0 {
		fmt.Fprintln(os.Stderr, "usage: hd-chart --year Y --month M --day D [--hour H] [--minute M] [--second S] [--offset H | --zone name] [--json]")
		os.Exit(2)
	}

	c, err := chart.Calculate(chart.BirthInput{
		Year: *year, Month: *month, Day: *day,
		Hour: *hour, Minute: *minute, Second: *second,
		OffsetHours: *offset, Zone: *zone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := printJSON(c); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printTable(c)
}

// #endregion main

// #region output

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(c *chart.Chart) {
	fmt.Printf("%-18s  %s\n", "Birth", c.BirthDate)
	fmt.Printf("%-18s  %s\n", "Design", c.DesignDate)
	fmt.Printf("%-18s  %s\n", "Type", c.EnergyType)
	fmt.Printf("%-18s  %s\n", "Strategy", c.Strategy)
	fmt.Printf("%-18s  %s (%s)\n", "Authority", c.AuthorityName, c.Authority)
	fmt.Printf("%-18s  %s\n", "Profile", c.Profile)
	fmt.Printf("%-18s  %s\n", "Cross", c.IncarnationCross)
	fmt.Printf("%-18s  %s\n", "Defined centers", strings.Join(c.DefinedCenters, " "))
	fmt.Printf("%-18s  %d\n", "Split", c.Split)
	fmt.Printf("%-18s  %s\n", "Channels", strings.Join(c.ActiveChannels, " "))
	fmt.Printf("%-18s  RU=%s RD=%s LU=%s LD=%s\n", "Variables",
		c.Variables.RightUp, c.Variables.RightDown, c.Variables.LeftUp, c.Variables.LeftDown)

	fmt.Println()
	fmt.Printf("%-12s  %-10s  %-10s\n", "Planet", "Personality", "Design")
	fmt.Printf("%-12s+-%-10s+-%-10s\n", "------------", "-----------", "----------")
	for i, planet := range chart.PlanetOrder {
		p := c.PersonalityGates[i]
		d := c.DesignGates[i]
		fmt.Printf("%-12s  %2d.%d         %2d.%d\n", planet, p.Gate, p.Line, d.Gate, d.Line)
	}
}

// #endregion output
