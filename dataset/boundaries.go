// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	geojson "github.com/paulmach/go.geojson"
)

// hascField is the compound admin-code attribute in the GADM data; the
// canton code is its trailing substring (CH.AG → AG).
const hascField = "HASC_1"

// LoadBoundaries reads canton polygons from path, dispatching on extension:
// .shp for ESRI shapefiles, .geojson/.json for GeoJSON feature collections.
func LoadBoundaries(path string) (map[string]*geojson.Geometry, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".shp":
		return loadBoundariesShapefile(path)
	case ".geojson", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseBoundariesGeoJSON(data)
	default:
		return nil, fmt.Errorf("boundaries: unsupported extension %q", ext)
	}
}

func loadBoundariesShapefile(path string) (map[string]*geojson.Geometry, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("boundaries: opening shapefile: %w", err)
	}
	defer dec.Close()

	out := make(map[string]*geojson.Geometry)
	for {
		g, fields, more := dec.DecodeRowFields(hascField)
		if !more {
			break
		}
		hasc, ok := fields[hascField]
		if !ok || hasc == "" {
			continue
		}
		gg, err := polygonalToGeoJSON(g)
		if err != nil {
			return nil, fmt.Errorf("boundaries: %s %q: %w", hascField, hasc, err)
		}
		out[cantonFromHASC(hasc)] = gg
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("boundaries: decoding shapefile: %w", err)
	}
	return out, nil
}

// ParseBoundariesGeoJSON reads canton polygons from a GeoJSON feature
// collection whose features carry the HASC_1 property.
func ParseBoundariesGeoJSON(data []byte) (map[string]*geojson.Geometry, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("boundaries: parsing geojson: %w", err)
	}

	out := make(map[string]*geojson.Geometry)
	for _, f := range fc.Features {
		hasc, err := f.PropertyString(hascField)
		if err != nil || hasc == "" {
			continue
		}
		if f.Geometry == nil {
			continue
		}
		out[cantonFromHASC(hasc)] = f.Geometry
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("boundaries: no features with a %s property", hascField)
	}
	return out, nil
}

// cantonFromHASC extracts the canton code from a compound admin code,
// e.g. CH.AG → AG.
func cantonFromHASC(hasc string) string {
	if i := strings.LastIndex(hasc, "."); i >= 0 {
		return hasc[i+1:]
	}
	return hasc
}

// polygonalToGeoJSON converts a decoded shapefile geometry to GeoJSON.
func polygonalToGeoJSON(g geom.Geom) (*geojson.Geometry, error) {
	switch t := g.(type) {
	case geom.Polygon:
		return geojson.NewPolygonGeometry(polygonRings(t)), nil
	case geom.MultiPolygon:
		polys := make([][][][]float64, len(t))
		for i, p := range t {
			polys[i] = polygonRings(p)
		}
		return geojson.NewMultiPolygonGeometry(polys...), nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
}

func polygonRings(p geom.Polygon) [][][]float64 {
	rings := make([][][]float64, len(p))
	for i, ring := range p {
		coords := make([][]float64, len(ring))
		for j, pt := range ring {
			coords[j] = []float64{pt.X, pt.Y}
		}
		rings[i] = coords
	}
	return rings
}
