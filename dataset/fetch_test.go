// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/cantonmap/cache"
)

func TestFetchUsesSnapshotCache(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("Canton,Density,BedsPerCapita\nAG,100,0.003\n"))
	}))
	defer srv.Close()

	snapshots, err := cache.Open(filepath.Join(t.TempDir(), "snap.db"), time.Hour)
	if err != nil {
		t.Fatalf("Failed to open cache: %v", err)
	}
	defer snapshots.Close()

	f := NewFetcher(snapshots)

	first, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}
	second, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Second fetch failed: %v", err)
	}

	if string(first) != string(second) {
		t.Error("Cached body differs from fetched body")
	}
	if hits.Load() != 1 {
		t.Errorf("Expected 1 remote hit, got %d", hits.Load())
	}
}

func TestFetchStaleFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Zero TTL: the stored snapshot is immediately stale.
	snapshots, err := cache.Open(filepath.Join(t.TempDir(), "snap.db"), 0)
	if err != nil {
		t.Fatalf("Failed to open cache: %v", err)
	}
	defer snapshots.Close()

	if err := snapshots.Put(srv.URL, []byte("old body")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	f := NewFetcher(snapshots)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Expected stale fallback, got error: %v", err)
	}
	if string(body) != "old body" {
		t.Errorf("Expected stale body, got %q", body)
	}
}

func TestFetchWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("Expected payload, got %q", body)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for non-200 status")
	}
}
