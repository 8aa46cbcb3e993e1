// Command wkparse builds WeatherKit JSON files into typed datasets and prints
// either the generic field map or a summary of what was built. It exits
// non-zero if any file fails to parse.
//
// Usage:
//
//	go run ./cmd/wkparse -dataset weather -timezone America/Chicago data/mock/weather_chicago.json
//	go run ./cmd/wkparse -dataset alertDetails -json data/mock/alert_chicago.json
//	go run ./cmd/wkparse -units °F,mph,inHg data/mock/weather_chicago.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/measure"
)

func main() {
	name := flag.String("dataset", "weather", `dataset name, "weather" or "alertDetails"`)
	tzName := flag.String("timezone", "UTC", "IANA timezone to convert timestamps to")
	asJSON := flag.Bool("json", false, "print the generic field map as JSON")
	unitList := flag.String("units", "", "comma-separated units to show current conditions in, e.g. °F,mph")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	tz, err := time.LoadLocation(*tzName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load timezone: %v\n", err)
		os.Exit(1)
	}

	units, err := parseUnits(*unitList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range flag.Args() {
		result, err := parseFile(path, *name, tz)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		if *asJSON {
			out, err := json.MarshalIndent(domain.ToFieldMap(result), "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: encode: %v\n", path, err)
				failed++
				continue
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Printf("PASS %s\n", path)
		printSummary(result, units)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, flag.NArg())
		os.Exit(1)
	}
}

func parseFile(path, name string, tz *time.Location) (domain.Fielder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	switch name {
	case "weather":
		return dataset.ParseWeather(raw, tz)
	case "alertDetails":
		return dataset.AlertDetailsOf(raw, tz)
	}
	n, ok := dataset.ParseName(name)
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	return dataset.Parse(n, raw, tz)
}

func parseUnits(list string) ([]measure.Unit, error) {
	var units []measure.Unit
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		u, ok := measure.ParseUnit(s)
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", s)
		}
		units = append(units, u)
	}
	return units, nil
}

// display renders q in the first requested unit of the same kind.
func display(q measure.Quantity, units []measure.Unit) string {
	for _, u := range units {
		if u.Kind() != q.Kind() {
			continue
		}
		if c, err := q.ConvertTo(u); err == nil {
			return c.String()
		}
	}
	return q.String()
}

func printSummary(result domain.Fielder, units []measure.Unit) {
	switch r := result.(type) {
	case *dataset.Weather:
		for _, e := range r.Datasets() {
			fmt.Printf("  %-18s ", e.Name)
			printSummary(e.Dataset, units)
		}
	case dataset.Currently:
		cond := "unknown"
		if r.Current.ConditionCode != nil {
			cond = string(*r.Current.ConditionCode)
		}
		fmt.Printf("%s, %s at %s", display(r.Current.Temperature, units), cond, r.Current.AsOf.Format(time.RFC3339))
		if r.Current.WindSpeed != nil {
			fmt.Printf(", wind %s", display(*r.Current.WindSpeed, units))
		}
		if r.Current.Pressure != nil {
			fmt.Printf(", pressure %s", display(*r.Current.Pressure, units))
		}
		fmt.Println()
	case dataset.Hourly:
		fmt.Printf("%d hours\n", len(r.Hours))
	case dataset.Daily:
		fmt.Printf("%d days\n", len(r.Days))
	case dataset.NextHour:
		fmt.Printf("%d minutes, %d summaries\n", len(r.Minutes), len(r.Summary))
	case dataset.Alerts:
		fmt.Printf("%d alerts, %d active now\n", len(r.Alerts), len(r.Active(time.Now())))
	case dataset.AlertDetails:
		fmt.Printf("  alert %s: %s (%s)\n", r.Details.ID, r.Details.Description, r.Details.Severity)
	default:
		fmt.Printf("  %d fields\n", len(result.Fields()))
	}
}
