// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the map API.

# Request Types

Types for parsing incoming JSON:

  - SetDateRequest: date (YYYY-MM-DD)
  - SetMetricRequest: metric ("density" or "beds_per_capita")

# Response Types

Types for JSON responses:

  - ViewStateResponse: date, metric, playing, earliest, latest
  - PlayResponse: playing
  - DatesResponse: dates (slider domain, ascending)
  - LegendResponse: metric, title, low, high, palette
  - ErrorResponse: error, message

# Domain Types

  - ViewState: the mutable {date, metric} pair owned by the map driver

# Constants

Metric values:

	MetricDensity       = "density"
	MetricBedsPerCapita = "beds_per_capita"

Dates are formatted with DateLayout ("2006-01-02") everywhere: slider values,
case table columns, and JSON payloads.
*/
package models
