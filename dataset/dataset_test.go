// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"testing"
)

const demoCSV = `Canton,Density,BedsPerCapita
AG,100,0.003
ZH,200,0.004
BE,80,0.005
`

// The standard-format file repeats the capital coordinates on every row.
const locCSV = `date,abbreviation_canton,lat,long,ncumul_conf
2020-10-29,AG,47.39,8.04,100
2020-10-30,AG,47.39,8.04,120
2020-10-29,ZH,47.37,8.54,500
2020-10-30,ZH,47.37,8.54,530
`

const caseCSV = `Date,AG,AG_diff_pc,ZH,ZH_diff_pc,CH_diff_pc
2020-10-29,10,0.0001,50,0.0002,0.00015
2020-10-30,12,,55,0.0003,0.00025
2020-10-31,15,0.0005,60,0.0004,0.00045
`

func TestParseDemographics(t *testing.T) {
	df, err := ParseDemographics([]byte(demoCSV))
	if err != nil {
		t.Fatalf("ParseDemographics failed: %v", err)
	}
	if df.Nrow() != 3 {
		t.Errorf("Expected 3 rows, got %d", df.Nrow())
	}

	densities := df.Col(ColDensity).Float()
	if densities[0] != 100 || densities[1] != 200 {
		t.Errorf("Unexpected density values: %v", densities)
	}
}

func TestParseDemographicsMissingColumn(t *testing.T) {
	_, err := ParseDemographics([]byte("Canton,Density\nAG,100\n"))
	if err == nil {
		t.Error("Expected error for missing BedsPerCapita column")
	}
}

func TestParseLocationsDeduplicates(t *testing.T) {
	df, err := ParseLocations([]byte(locCSV))
	if err != nil {
		t.Fatalf("ParseLocations failed: %v", err)
	}

	if df.Nrow() != 2 {
		t.Fatalf("Expected 2 unique cantons, got %d rows", df.Nrow())
	}
	if !hasColumn(df, ColCanton) {
		t.Errorf("Expected canton column renamed to %q, have %v", ColCanton, df.Names())
	}

	cantons := df.Col(ColCanton).Records()
	if cantons[0] != "AG" || cantons[1] != "ZH" {
		t.Errorf("Expected cantons [AG ZH], got %v", cantons)
	}
}

func TestParseCases(t *testing.T) {
	tab, err := ParseCases([]byte(caseCSV))
	if err != nil {
		t.Fatalf("ParseCases failed: %v", err)
	}

	if got := tab.Dates(); len(got) != 3 || got[0] != "2020-10-29" || got[2] != "2020-10-31" {
		t.Errorf("Unexpected dates: %v", got)
	}

	// Only the per-capita difference columns survive, minus the CH aggregate
	if got := tab.Cantons(); len(got) != 2 || got[0] != "AG" || got[1] != "ZH" {
		t.Errorf("Expected cantons [AG ZH], got %v", got)
	}
	if _, ok := tab.Value("2020-10-29", "CH"); ok {
		t.Error("Nationwide CH aggregate should be dropped")
	}

	v, ok := tab.Value("2020-10-31", "AG")
	if !ok || v != 0.0005 {
		t.Errorf("Expected AG@2020-10-31 = 0.0005, got %v (ok=%v)", v, ok)
	}

	// The empty cell is missing, not zero
	if _, ok := tab.Value("2020-10-30", "AG"); ok {
		t.Error("Expected AG@2020-10-30 to be missing")
	}
	if v, ok := tab.Value("2020-10-30", "ZH"); !ok || v != 0.0003 {
		t.Errorf("Expected ZH@2020-10-30 = 0.0003, got %v (ok=%v)", v, ok)
	}
}

func TestParseCasesNoDiffColumns(t *testing.T) {
	_, err := ParseCases([]byte("Date,AG\n2020-10-29,10\n"))
	if err == nil {
		t.Error("Expected error when no _diff_pc columns are present")
	}
}
