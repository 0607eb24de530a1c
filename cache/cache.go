// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrMiss is returned when no fresh snapshot exists for a URL.
var ErrMiss = errors.New("cache: no fresh snapshot")

// Cache stores raw source-file snapshots keyed by URL.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens (or creates) the snapshot database at path.
func Open(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for url if its snapshot is younger than the
// configured TTL, and ErrMiss otherwise.
func (c *Cache) Get(url string) ([]byte, error) {
	var body []byte
	var fetchedAt time.Time
	err := c.db.QueryRow(`
		SELECT body, fetched_at FROM snapshot WHERE url = $1
	`, url).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if time.Since(fetchedAt) > c.ttl {
		return nil, ErrMiss
	}
	return body, nil
}

// GetStale returns the most recent snapshot for url regardless of age.
// Used as a fallback when the remote source is unreachable.
func (c *Cache) GetStale(url string) ([]byte, error) {
	var body []byte
	err := c.db.QueryRow(`
		SELECT body FROM snapshot WHERE url = $1
	`, url).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	return body, err
}

// Put stores body as the current snapshot for url, replacing any previous one.
func (c *Cache) Put(url string, body []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO snapshot (url, fetched_at, body)
		VALUES ($1, $2, $3)
		ON CONFLICT (url) DO UPDATE SET fetched_at = excluded.fetched_at, body = excluded.body
	`, url, time.Now(), body)
	return err
}

// createSchema creates the snapshot table.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Source snapshots
CREATE TABLE IF NOT EXISTS snapshot (
    url TEXT PRIMARY KEY,
    fetched_at TIMESTAMP NOT NULL,
    body BLOB NOT NULL
);
`
