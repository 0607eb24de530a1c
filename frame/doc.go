// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package frame merges the loaded sources into the per-canton frame store and
serializes the published map view.

# Merge

Merge inner-joins demographics with canton locations (gota InnerJoin on the
Canton column) and then with the boundary polygons. A canton absent from any
of the three static sources is silently excluded; that is the documented
behavior, not a bug.

	store, err := frame.Merge(src)

# Store

The Store is immutable after Merge except for two volatile fields per record
(CurrentSize, CurrentDNC) and the serialized GeoJSON document, all owned by
Publish:

	err := store.Publish("2020-10-31", models.MetricDensity)
	doc := store.Document()

Publish recomputes size = v*1e5/5 + 10 and dnc = v for every record from the
named date column. A record with no value for the date publishes null size
and dnc ("no data"); a date naming no column at all publishes an all-null
document rather than failing. Records are kept sorted by canton code, so
publishing the same date twice yields byte-identical documents.

# Color Mapping

ColorMapper linearly interpolates a metric value onto a reversed inferno
ramp between the metric's min and max, computed once from the full static
demographics column. The selected date never affects the bounds.
*/
package frame
