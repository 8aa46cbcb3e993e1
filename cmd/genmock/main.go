// Command genmock writes synthetic WeatherKit responses as JSON fixtures, one
// multi-dataset response per location plus an alert details response. A
// fixed reference time makes the output reproducible.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out data/mock \
//	  -locations "chicago=41.88,-87.63,US;london=51.5,-0.13,GB" \
//	  -at 2024-04-26T15:10:00Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weatherkit-collector/internal/config"
	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/mockdata"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "directory to write fixtures to")
	locations := flag.String("locations", "chicago=41.88,-87.63,US", "locations as [name=]lat,lon[,country];...")
	at := flag.String("at", "2024-04-26T15:10:00Z", "RFC 3339 reference time")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	ref, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		return fmt.Errorf("parse -at: %w", err)
	}
	clock := clockwork.NewFakeClockAt(ref)

	locs, err := config.ParseLocations(*locations)
	if err != nil {
		return err
	}
	if len(locs) == 0 {
		return fmt.Errorf("no locations given")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, loc := range locs {
		payload := mockdata.Weather(clock.Now(), loc.Coordinate)

		// Build the payload once so a fixture that the parser would reject is
		// never written.
		decoded, err := roundTrip(payload)
		if err != nil {
			return fmt.Errorf("encode payload for %s: %w", loc.Name, err)
		}
		if _, err := dataset.ParseWeather(decoded, time.UTC); err != nil {
			return fmt.Errorf("generated payload for %s does not parse: %w", loc.Name, err)
		}

		path := filepath.Join(*outDir, fmt.Sprintf("weather_%s.json", loc.Name))
		if err := writeJSON(path, payload); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("wrote weather fixture: %s", path)

		path = filepath.Join(*outDir, fmt.Sprintf("alert_%s.json", loc.Name))
		if err := writeJSON(path, mockdata.AlertDetails(clock.Now(), loc.Coordinate)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("wrote alert fixture: %s", path)
	}
	return nil
}

// roundTrip passes payload through JSON so the parser sees what a reader of
// the written file would.
func roundTrip(payload map[string]any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return out, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
