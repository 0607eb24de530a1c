// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package frame

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/danielhkuo/cantonmap/dataset"
	"github.com/danielhkuo/cantonmap/models"
)

// Merge joins the four loaded sources into a Store. The join is inner on the
// canton code across geometry, demographics, and locations: a canton missing
// from any of the three static sources is silently excluded. Case values are
// attached per record as a date-keyed map.
func Merge(src *dataset.Sources) (*Store, error) {
	static := src.Demographics.InnerJoin(src.Locations, dataset.ColCanton)
	if static.Err != nil {
		return nil, fmt.Errorf("merging demographics and locations: %w", static.Err)
	}

	var records []*Record
	for _, row := range static.Maps() {
		canton, ok := row[dataset.ColCanton].(string)
		if !ok || canton == "" {
			continue
		}
		geometry, ok := src.Boundaries[canton]
		if !ok {
			continue // not in the shapefile: excluded, by the inner-join rule
		}

		density, err := toFloat(row[dataset.ColDensity])
		if err != nil {
			return nil, fmt.Errorf("canton %s: density: %w", canton, err)
		}
		beds, err := toFloat(row[dataset.ColBedsPerCapita])
		if err != nil {
			return nil, fmt.Errorf("canton %s: beds per capita: %w", canton, err)
		}
		lat, err := toFloat(row["lat"])
		if err != nil {
			return nil, fmt.Errorf("canton %s: lat: %w", canton, err)
		}
		long, err := toFloat(row["long"])
		if err != nil {
			return nil, fmt.Errorf("canton %s: long: %w", canton, err)
		}

		cases := make(map[string]float64)
		for _, d := range src.Cases.Dates() {
			if v, ok := src.Cases.Value(d, canton); ok {
				cases[d] = v
			}
		}

		records = append(records, &Record{
			Canton:        canton,
			Density:       density,
			BedsPerCapita: beds,
			Lat:           lat,
			Long:          long,
			Geometry:      geometry,
			cases:         cases,
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("merge produced no records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Canton < records[j].Canton })

	// Color bounds come from the full static demographics column, not from
	// the joined subset and never from the per-date data.
	mappers := map[string]ColorMapper{
		models.MetricDensity:       NewColorMapper(dataset.ColDensity, src.Demographics.Col(dataset.ColDensity).Float()),
		models.MetricBedsPerCapita: NewColorMapper(dataset.ColBedsPerCapita, src.Demographics.Col(dataset.ColBedsPerCapita).Float()),
	}

	return NewStore(records, src.Cases.Dates(), mappers)
}

// toFloat converts the loosely typed values gota hands back from Maps.
func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
