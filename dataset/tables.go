// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"bytes"
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Demographics column names, as they appear in the source CSV.
const (
	ColCanton        = "Canton"
	ColDensity       = "Density"
	ColBedsPerCapita = "BedsPerCapita"
)

// ParseDemographics parses the demographics CSV (one row per canton with
// population density and hospital beds per capita).
func ParseDemographics(data []byte) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(bytes.NewReader(data))
	if df.Err != nil {
		return df, fmt.Errorf("parsing demographics: %w", df.Err)
	}
	for _, col := range []string{ColCanton, ColDensity, ColBedsPerCapita} {
		if !hasColumn(df, col) {
			return df, fmt.Errorf("demographics: missing column %q", col)
		}
	}
	return df, nil
}

// ParseLocations parses the standard-format case CSV and reduces it to the
// unique (canton, lat, long) triples. The source repeats the capital-city
// coordinates on every report row; conflicting coordinates for a canton keep
// the first occurrence. The canton column is renamed to Canton so it can be
// joined against the demographics table.
func ParseLocations(data []byte) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(bytes.NewReader(data))
	if df.Err != nil {
		return df, fmt.Errorf("parsing locations: %w", df.Err)
	}
	for _, col := range []string{"abbreviation_canton", "lat", "long"} {
		if !hasColumn(df, col) {
			return df, fmt.Errorf("locations: missing column %q", col)
		}
	}

	sub := df.Select([]string{"abbreviation_canton", "lat", "long"})
	if sub.Err != nil {
		return sub, fmt.Errorf("locations: %w", sub.Err)
	}

	// Records returns the header row first.
	records := sub.Records()
	unique := records[:1]
	seen := make(map[string]bool)
	for _, row := range records[1:] {
		canton := row[0]
		if canton == "" || seen[canton] {
			continue
		}
		seen[canton] = true
		unique = append(unique, row)
	}

	out := dataframe.LoadRecords(unique)
	if out.Err != nil {
		return out, fmt.Errorf("locations: %w", out.Err)
	}
	out = out.Rename(ColCanton, "abbreviation_canton")
	if out.Err != nil {
		return out, fmt.Errorf("locations: %w", out.Err)
	}
	return out, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
