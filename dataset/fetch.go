// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/cantonmap/cache"
)

// Fetcher retrieves source files over HTTP through an optional snapshot cache.
type Fetcher struct {
	Client    *http.Client
	Snapshots *cache.Cache // nil disables caching
}

// NewFetcher returns a Fetcher with a 30s request timeout.
func NewFetcher(snapshots *cache.Cache) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 30 * time.Second},
		Snapshots: snapshots,
	}
}

// Fetch returns the body of url. A fresh cached snapshot short-circuits the
// request; on network failure a stale snapshot is served as a fallback.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.Snapshots != nil {
		if body, err := f.Snapshots.Get(url); err == nil {
			slog.Info("serving source from snapshot cache",
				"url", url,
				"size", humanize.Bytes(uint64(len(body))),
			)
			return body, nil
		}
	}

	body, err := f.download(ctx, url)
	if err != nil {
		if f.Snapshots != nil {
			if stale, serr := f.Snapshots.GetStale(url); serr == nil {
				slog.Warn("remote source unreachable, using stale snapshot",
					"url", url,
					"error", err,
				)
				return stale, nil
			}
		}
		return nil, err
	}

	if f.Snapshots != nil {
		if err := f.Snapshots.Put(url, body); err != nil {
			// Cache write failures are never fatal
			slog.Error("failed to store snapshot", "url", url, "error", err)
		}
	}

	slog.Info("fetched source",
		"url", url,
		"size", humanize.Bytes(uint64(len(body))),
	)
	return body, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
