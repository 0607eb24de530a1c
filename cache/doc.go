// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache stores raw snapshots of fetched source files in SQLite.

The course data lives on GitHub and changes at most daily; caching the raw
bytes makes restarts cheap and lets the service come up offline with stale
data rather than not at all.

# Usage

	c, err := cache.Open("snapshots.db", 24*time.Hour)
	body, err := c.Get(url)       // fresh snapshot or cache.ErrMiss
	body, err = c.GetStale(url)   // any snapshot, used when the remote is down
	err = c.Put(url, body)

# Schema

One table:

	snapshot(url TEXT PRIMARY KEY, fetched_at TIMESTAMP, body BLOB)

Safe to open concurrently with previous runs - schema creation uses
IF NOT EXISTS. The driver is modernc.org/sqlite (pure Go, no cgo).
*/
package cache
