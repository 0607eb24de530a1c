// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset loads the four heterogeneous sources into in-memory tables.

# Sources

  - Demographics CSV: Canton, Density, BedsPerCapita → gota dataframe
  - Locations CSV: one row per case report; the unique
    (abbreviation_canton, lat, long) triples → gota dataframe with the
    canton column renamed to Canton
  - Daily cases CSV: wide table with a Date column plus one <CC>_diff_pc
    per-capita difference column per canton → CaseTable (the nationwide
    CH_diff_pc aggregate is dropped; unparseable cells are missing)
  - Canton boundaries: ESRI shapefile (.shp) or GeoJSON feature collection,
    keyed by the trailing canton code of the compound HASC_1 admin field
    (e.g. CH.AG → AG) → map from canton to GeoJSON geometry

# Fetching

Load reads local files from the configured data directory when present and
otherwise fetches the tabular sources over HTTP through the snapshot cache:

	src, err := dataset.Load(ctx, cfg, snapshots)

All loading is synchronous and happens once, before the server starts.
*/
package dataset
