package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bikeflip/hunter/sqlite"
)

// Run executes the seed command. The CSV format is code,lat,lon with an
// optional header row.
func (c *SeedCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", c.Path, err)
	}
	defer f.Close()

	geocoder, ok := deps.Geocoder.(*sqlite.Geocoder)
	if !ok {
		return fmt.Errorf("seed requires the SQLite geocoder backend")
	}

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", c.Path, err)
	}

	count := 0
	for i, record := range records {
		if len(record) != 3 {
			return fmt.Errorf("%s:%d: want 3 fields, got %d", c.Path, i+1, len(record))
		}
		lat, latErr := strconv.ParseFloat(record[1], 64)
		lon, lonErr := strconv.ParseFloat(record[2], 64)
		if latErr != nil || lonErr != nil {
			if i == 0 {
				continue // header row
			}
			return fmt.Errorf("%s:%d: invalid coordinates %q,%q", c.Path, i+1, record[1], record[2])
		}
		if err := geocoder.AddPostalCode(deps.Ctx, record[0], lat, lon); err != nil {
			return err
		}
		count++
	}

	fmt.Fprintf(deps.Stdout, "seeded %d postal codes\n", count)
	return nil
}
