// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the map API.

# Handler Types

One handler struct with the driver and config as dependencies:

	mapHandler := handlers.NewMapHandler(drv, cfg)

# Control Surface

The map driver exposes exactly three transitions, plus read endpoints:

	GET  /map/view   → GetView (current GeoJSON document)
	GET  /map/state  → GetState (date, metric, playing, bounds)
	GET  /map/dates  → GetDates (slider domain)
	GET  /map/legend → GetLegend (color ramp and bounds)
	POST /map/date   → SetDate {date: "2020-10-31"}
	POST /map/metric → SetMetric {metric: "density"|"beds_per_capita"}
	POST /map/play   → PressPlay (toggle animation)

# Validation

SetDate rejects malformed dates (not YYYY-MM-DD) with 400. Well-formed dates
outside the observed range publish an all-"no data" document: inside the
state machine, date lookups fail soft per canton rather than erroring.
SetMetric rejects unknown metrics with 400.

# Map Page

GET / serves an embedded Leaflet page that renders /map/view and drives the
control endpoints with a slider, metric radio buttons, and a play button.
*/
package handlers
