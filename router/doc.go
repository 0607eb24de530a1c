// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ routing.

NewRouter wires the map handler onto a ServeMux:

	mux := router.NewRouter(drv, cfg)

Routes:

	GET  /health      Health check
	GET  /            Embedded map page
	GET  /map/view    Current GeoJSON view document
	GET  /map/state   View state and date bounds
	GET  /map/dates   Slider domain
	GET  /map/legend  Color mapping for the selected metric
	POST /map/date    Select a date
	POST /map/metric  Select a metric
	POST /map/play    Toggle the animation

All routes except the health check are wrapped with request logging.
*/
package router
