// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package frame

import (
	"encoding/json"
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/danielhkuo/cantonmap/models"
)

// Marker size transform: per-capita value v renders at v*1e5/5 + 10 px.
const (
	sizeScale  = 1e5 / 5
	sizeOffset = 10.0
)

// MarkerSize is the affine size transform for the per-capita case markers.
func MarkerSize(v float64) float64 {
	return v*sizeScale + sizeOffset
}

// Record is the merged per-canton row: immutable static fields plus the two
// volatile fields recomputed on every date change.
type Record struct {
	Canton        string
	Density       float64
	BedsPerCapita float64
	Lat           float64
	Long          float64
	Geometry      *geojson.Geometry

	cases map[string]float64 // date → per-capita daily new cases

	// Volatile, owned by Publish. Nil means "no data" for the current date.
	CurrentSize *float64
	CurrentDNC  *float64
}

// Value returns the per-capita case value for date, with ok=false when the
// record has no data for that date.
func (r *Record) Value(date string) (float64, bool) {
	v, ok := r.cases[date]
	return v, ok
}

// Store holds the merged records and the published GeoJSON view document.
// Static fields never change after construction; only the per-record
// volatile fields and the document mutate, through Publish.
type Store struct {
	records []*Record
	dates   []string // ascending
	dateSet map[string]bool
	mappers map[string]ColorMapper
	doc     []byte
}

// NewStore builds a Store over records and the observed date list
// (ascending). Nothing is published until the first Publish call.
func NewStore(records []*Record, dates []string, mappers map[string]ColorMapper) (*Store, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("store: no dates")
	}
	s := &Store{
		records: records,
		dates:   dates,
		dateSet: make(map[string]bool, len(dates)),
		mappers: mappers,
	}
	for _, d := range dates {
		s.dateSet[d] = true
	}
	return s, nil
}

// Publish recomputes every record's volatile fields from the date column and
// re-serializes the view document with the metric's fill colors. A record
// with no value for the date gets nil size/dnc ("no data"), never an error;
// a date naming no known column publishes an all-no-data document.
func (s *Store) Publish(date, metric string) error {
	mapper, ok := s.mappers[metric]
	if !ok {
		return fmt.Errorf("store: unknown metric %q", metric)
	}

	fc := geojson.NewFeatureCollection()
	for _, r := range s.records {
		if v, ok := r.Value(date); ok {
			size := MarkerSize(v)
			dnc := v
			r.CurrentSize = &size
			r.CurrentDNC = &dnc
		} else {
			r.CurrentSize = nil
			r.CurrentDNC = nil
		}

		f := geojson.NewFeature(r.Geometry)
		f.SetProperty("Canton", r.Canton)
		f.SetProperty("Density", r.Density)
		f.SetProperty("BedsPerCapita", r.BedsPerCapita)
		f.SetProperty("lat", r.Lat)
		f.SetProperty("long", r.Long)
		f.SetProperty("fill", mapper.Color(s.metricValue(r, metric)))
		// json.Marshal renders the nil pointers as null, which is how the
		// renderer distinguishes "no data" from a small value.
		f.SetProperty("size", r.CurrentSize)
		f.SetProperty("dnc", r.CurrentDNC)
		fc.AddFeature(f)
	}

	doc, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("store: serializing view document: %w", err)
	}
	s.doc = doc
	return nil
}

func (s *Store) metricValue(r *Record, metric string) float64 {
	if metric == models.MetricBedsPerCapita {
		return r.BedsPerCapita
	}
	return r.Density
}

// Document returns the last published GeoJSON document.
func (s *Store) Document() []byte {
	return s.doc
}

// Records returns the merged records, sorted by canton code.
func (s *Store) Records() []*Record {
	return s.records
}

// Dates returns the observed dates in ascending order.
func (s *Store) Dates() []string {
	return s.dates
}

// HasDate reports whether d is an observed date.
func (s *Store) HasDate(d string) bool {
	return s.dateSet[d]
}

// Earliest returns the first observed date.
func (s *Store) Earliest() string {
	return s.dates[0]
}

// Latest returns the last observed date.
func (s *Store) Latest() string {
	return s.dates[len(s.dates)-1]
}

// Mapper returns the color mapper for metric.
func (s *Store) Mapper(metric string) (ColorMapper, bool) {
	m, ok := s.mappers[metric]
	return m, ok
}
