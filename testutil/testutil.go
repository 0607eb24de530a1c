// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/danielhkuo/cantonmap/cliparse"
	"github.com/danielhkuo/cantonmap/dataset"
	"github.com/danielhkuo/cantonmap/driver"
	"github.com/danielhkuo/cantonmap/frame"
)

// Fixture: two cantons over three dates. AG has no value on 2020-10-30, and
// BE/GE/VD each appear in only one static source so the inner join drops
// them.
const (
	DemographicsCSV = `Canton,Density,BedsPerCapita
AG,100,0.003
ZH,200,0.004
BE,80,0.005
`
	LocationsCSV = `date,abbreviation_canton,lat,long
2020-10-29,AG,47.39,8.04
2020-10-29,ZH,47.37,8.54
2020-10-29,GE,46.20,6.14
`
	CasesCSV = `Date,AG_diff_pc,ZH_diff_pc,CH_diff_pc
2020-10-29,0.0001,0.0002,0.00015
2020-10-30,,0.0003,0.00025
2020-10-31,0.0005,0.0004,0.00045
`
)

// NewTestSources builds the fixture sources.
func NewTestSources(t *testing.T) *dataset.Sources {
	t.Helper()

	demo, err := dataset.ParseDemographics([]byte(DemographicsCSV))
	if err != nil {
		t.Fatalf("Failed to parse fixture demographics: %v", err)
	}
	loc, err := dataset.ParseLocations([]byte(LocationsCSV))
	if err != nil {
		t.Fatalf("Failed to parse fixture locations: %v", err)
	}
	cases, err := dataset.ParseCases([]byte(CasesCSV))
	if err != nil {
		t.Fatalf("Failed to parse fixture cases: %v", err)
	}

	square := func(x, y float64) *geojson.Geometry {
		return geojson.NewPolygonGeometry([][][]float64{{
			{x, y}, {x + 0.5, y}, {x + 0.5, y + 0.5}, {x, y + 0.5}, {x, y},
		}})
	}

	return &dataset.Sources{
		Demographics: demo,
		Locations:    loc,
		Cases:        cases,
		Boundaries: map[string]*geojson.Geometry{
			"AG": square(8.0, 47.3),
			"ZH": square(8.4, 47.2),
			"VD": square(6.5, 46.5),
		},
	}
}

// NewTestStore merges the fixture sources into a frame store.
func NewTestStore(t *testing.T) *frame.Store {
	t.Helper()

	store, err := frame.Merge(NewTestSources(t))
	if err != nil {
		t.Fatalf("Failed to merge fixture sources: %v", err)
	}
	return store
}

// NewTestDriver returns a driver over the fixture store. The tick interval
// is an hour so no timer fires during a test; transitions are exercised by
// calling Tick directly.
func NewTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.New(NewTestStore(t), time.Hour)
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	return d
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		BoundariesPath: "testdata/cantons.geojson",
		CacheTTL:       time.Hour,
		TickInterval:   time.Hour,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
