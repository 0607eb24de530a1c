// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DataDir: Directory with local copies of the source files (optional)
  - DemographicsURL, LocationsURL, CasesURL: remote source locations
    (defaults point at the daenuprobst/covid19-cases-switzerland repo)
  - BoundariesPath: canton boundary file, .shp or .geojson (required)
  - CachePath: SQLite snapshot cache path (empty disables caching)
  - CacheTTL: max snapshot age before refetching (default: 24h)
  - TickInterval: animation tick interval (default: 500ms)

# CLI Flags

	-p                 Server port
	-data              Local data directory
	-demographics-url  Demographics CSV URL
	-locations-url     Canton locations CSV URL
	-cases-url         Daily cases CSV URL
	-boundaries        Canton boundaries path
	-cache             SQLite snapshot cache path
	-cache-ttl         Max snapshot age
	-tick              Animation tick interval

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATA_DIR          → -data
	DEMOGRAPHICS_URL  → -demographics-url
	LOCATIONS_URL     → -locations-url
	CASES_URL         → -cases-url
	BOUNDARIES_PATH   → -boundaries
	CACHE_PATH        → -cache
	CACHE_TTL         → -cache-ttl
	TICK_INTERVAL     → -tick

CLI flags take precedence over environment variables. A .env file, if
present, is loaded into the environment by main before parsing.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - BOUNDARIES_PATH must be provided
  - durations must parse and the tick interval must be positive
*/
package cliparse
