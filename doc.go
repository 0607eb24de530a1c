// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cantonmap server.

cantonmap visualizes Covid-19 demographics and daily new cases in
Switzerland: a canton-level choropleth (fill = population density or hospital
beds per capita) with per-capita case markers at each canton capital, driven
by a date slider and a play/pause animation.

# Starting the Server

The server needs the canton boundary file; the tabular sources default to
their upstream GitHub locations:

	go run main.go -boundaries data/gadm36_CHE_1.shp

With a local data directory and a snapshot cache:

	go run main.go -boundaries data/gadm36_CHE_1.shp -data data -cache snapshots.db

# Configuration

Required settings:

  - BOUNDARIES_PATH (-boundaries): canton boundaries, .shp or .geojson

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATA_DIR (-data): local copies of the tabular sources
  - DEMOGRAPHICS_URL, LOCATIONS_URL, CASES_URL: remote source overrides
  - CACHE_PATH (-cache): SQLite snapshot cache
  - TICK_INTERVAL (-tick): animation step interval (default: 500ms)

# Architecture

One pipeline, four stages:

  - dataset: loads demographics, canton locations, the wide daily-case
    table, and canton polygons (optionally through the snapshot cache)
  - frame: inner-joins the static sources per canton, attaches the
    per-date case values, and serializes the GeoJSON view document
  - driver: the Idle/Playing state machine owning the selected date,
    selected metric, and the animation ticker
  - handlers/router/middleware: the HTTP control surface and map page

See package documentation for each component.
*/
package main
