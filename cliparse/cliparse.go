package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Default remote locations of the three tabular sources. The boundary
// shapefile ships with the data directory and has no canonical URL.
const (
	DefaultDemographicsURL = "https://raw.githubusercontent.com/daenuprobst/covid19-cases-switzerland/master/demographics.csv"
	DefaultLocationsURL    = "https://raw.githubusercontent.com/daenuprobst/covid19-cases-switzerland/master/covid_19_cases_switzerland_standard_format.csv"
	DefaultCasesURL        = "https://raw.githubusercontent.com/daenuprobst/covid19-cases-switzerland/master/covid19_cases_switzerland_openzh-phase2.csv"
)

type Config struct {
	Port            int
	DataDir         string
	DemographicsURL string
	LocationsURL    string
	CasesURL        string
	BoundariesPath  string
	CachePath       string
	CacheTTL        time.Duration
	TickInterval    time.Duration
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("cantonmap", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Data sources (prefer local files in -data, fall back to remote URLs)
	fs.StringVar(&cfg.DataDir, "data", "", "Directory with local copies of the source files")
	fs.StringVar(&cfg.DemographicsURL, "demographics-url", "", "Demographics CSV URL")
	fs.StringVar(&cfg.LocationsURL, "locations-url", "", "Canton locations CSV URL")
	fs.StringVar(&cfg.CasesURL, "cases-url", "", "Daily cases CSV URL")
	fs.StringVar(&cfg.BoundariesPath, "boundaries", "", "Canton boundaries (.shp or .geojson)")

	// Snapshot cache
	fs.StringVar(&cfg.CachePath, "cache", "", "SQLite snapshot cache path (empty disables caching)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "Max snapshot age before refetching")

	// Animation
	fs.DurationVar(&cfg.TickInterval, "tick", 0, "Animation tick interval")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DemographicsURL == "" {
		cfg.DemographicsURL = envOr("DEMOGRAPHICS_URL", DefaultDemographicsURL)
	}
	if cfg.LocationsURL == "" {
		cfg.LocationsURL = envOr("LOCATIONS_URL", DefaultLocationsURL)
	}
	if cfg.CasesURL == "" {
		cfg.CasesURL = envOr("CASES_URL", DefaultCasesURL)
	}

	// Boundaries MUST be provided: there is no remote default and the map
	// cannot render without canton geometry.
	if cfg.BoundariesPath == "" {
		cfg.BoundariesPath = os.Getenv("BOUNDARIES_PATH")
	}
	if cfg.BoundariesPath == "" {
		return Config{}, errors.New("boundaries path required (use -boundaries or BOUNDARIES_PATH env)")
	}

	if cfg.CachePath == "" {
		cfg.CachePath = os.Getenv("CACHE_PATH")
	}
	if cfg.CacheTTL == 0 {
		if s := os.Getenv("CACHE_TTL"); s != "" {
			ttl, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid CACHE_TTL env variable")
			}
			cfg.CacheTTL = ttl
		} else {
			cfg.CacheTTL = 24 * time.Hour
		}
	}

	if cfg.TickInterval == 0 {
		if s := os.Getenv("TICK_INTERVAL"); s != "" {
			tick, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid TICK_INTERVAL env variable")
			}
			cfg.TickInterval = tick
		} else {
			cfg.TickInterval = 500 * time.Millisecond
		}
	}
	if cfg.TickInterval <= 0 {
		return Config{}, errors.New("tick interval must be positive")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
