// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	geojson "github.com/paulmach/go.geojson"

	"github.com/danielhkuo/cantonmap/cache"
	"github.com/danielhkuo/cantonmap/cliparse"
)

// Sources holds the four loaded inputs, ready for merging.
type Sources struct {
	Demographics dataframe.DataFrame
	Locations    dataframe.DataFrame
	Cases        *CaseTable
	Boundaries   map[string]*geojson.Geometry
}

// Load reads all four sources. Tabular sources prefer a local copy under
// cfg.DataDir (named after the last URL path segment) and otherwise are
// fetched through the snapshot cache. Boundaries always come from a local
// file.
func Load(ctx context.Context, cfg cliparse.Config, snapshots *cache.Cache) (*Sources, error) {
	f := NewFetcher(snapshots)

	demoRaw, err := readSource(ctx, f, cfg.DataDir, cfg.DemographicsURL)
	if err != nil {
		return nil, err
	}
	locRaw, err := readSource(ctx, f, cfg.DataDir, cfg.LocationsURL)
	if err != nil {
		return nil, err
	}
	caseRaw, err := readSource(ctx, f, cfg.DataDir, cfg.CasesURL)
	if err != nil {
		return nil, err
	}

	demo, err := ParseDemographics(demoRaw)
	if err != nil {
		return nil, err
	}
	loc, err := ParseLocations(locRaw)
	if err != nil {
		return nil, err
	}
	cases, err := ParseCases(caseRaw)
	if err != nil {
		return nil, err
	}
	boundaries, err := LoadBoundaries(cfg.BoundariesPath)
	if err != nil {
		return nil, err
	}

	slog.Info("sources loaded",
		"cantons", demo.Nrow(),
		"dates", humanize.Comma(int64(len(cases.Dates()))),
		"polygons", len(boundaries),
	)

	return &Sources{
		Demographics: demo,
		Locations:    loc,
		Cases:        cases,
		Boundaries:   boundaries,
	}, nil
}

// readSource returns the local copy of a source when the data directory
// holds a file named after the URL's last path segment, and fetches the URL
// otherwise.
func readSource(ctx context.Context, f *Fetcher, dataDir, rawURL string) ([]byte, error) {
	if dataDir != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, err
		}
		local := filepath.Join(dataDir, path.Base(u.Path))
		data, err := os.ReadFile(local)
		if err == nil {
			slog.Info("using local source", "path", local,
				"size", humanize.Bytes(uint64(len(data))))
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return f.Fetch(ctx, rawURL)
}
