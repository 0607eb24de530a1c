// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package driver

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/cantonmap/frame"
	"github.com/danielhkuo/cantonmap/models"
)

// Driver is the map view state machine: Idle or Playing. It owns the
// ViewState and, while Playing, the recurring animation timer. A mutex
// serializes all transitions, so Tick and SetDate never interleave.
type Driver struct {
	mu       sync.Mutex
	store    *frame.Store
	interval time.Duration

	view    models.ViewState
	playing bool
	ticker  *time.Ticker
	done    chan struct{}
}

// New returns an Idle driver positioned on the latest known date with the
// density metric, and publishes the initial view document.
func New(store *frame.Store, interval time.Duration) (*Driver, error) {
	d := &Driver{
		store:    store,
		interval: interval,
		view: models.ViewState{
			Date:   store.Latest(),
			Metric: models.MetricDensity,
		},
	}
	if err := store.Publish(d.view.Date, d.view.Metric); err != nil {
		return nil, err
	}
	return d, nil
}

// SetDate republishes the view from the date column d and records it as the
// selected date. Allowed in any state. Dates naming no known column publish
// an all-no-data document (fail-soft), so SetDate only errors on internal
// serialization failure.
func (d *Driver) SetDate(date string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setDateLocked(date)
}

func (d *Driver) setDateLocked(date string) error {
	if err := d.store.Publish(date, d.view.Metric); err != nil {
		return err
	}
	d.view.Date = date
	return nil
}

// SetMetric swaps which demographic field drives the fill color and legend.
// The selected date and marker sizes are unchanged.
func (d *Driver) SetMetric(metric string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !models.ValidMetric(metric) {
		return fmt.Errorf("unknown metric %q", metric)
	}
	if err := d.store.Publish(d.view.Date, metric); err != nil {
		return err
	}
	d.view.Metric = metric
	return nil
}

// PressPlay toggles between Idle and Playing and returns the new playing
// state. Stopping cancels the recurring timer synchronously: no Tick runs
// after PressPlay returns.
func (d *Driver) PressPlay() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.playing {
		d.ticker.Stop()
		close(d.done)
		d.ticker = nil
		d.done = nil
		d.playing = false
		slog.Info("animation paused", "date", d.view.Date)
		return false
	}

	d.ticker = time.NewTicker(d.interval)
	d.done = make(chan struct{})
	go d.animate(d.ticker, d.done)
	d.playing = true
	slog.Info("animation playing", "date", d.view.Date, "interval", d.interval)
	return true
}

func (d *Driver) animate(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Tick steps the selected date backward by one calendar day. A step landing
// outside the known dates wraps to the latest known date. Ticks delivered
// after the machine left Playing are dropped.
func (d *Driver) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.playing {
		return
	}
	if err := d.setDateLocked(d.prevDate(d.view.Date)); err != nil {
		slog.Error("animation step failed", "error", err)
	}
}

func (d *Driver) prevDate(cur string) string {
	t, err := time.Parse(models.DateLayout, cur)
	if err != nil {
		return d.store.Latest()
	}
	next := t.AddDate(0, 0, -1).Format(models.DateLayout)
	if !d.store.HasDate(next) {
		return d.store.Latest()
	}
	return next
}

// State returns the current view state and date bounds.
func (d *Driver) State() models.ViewStateResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	return models.ViewStateResponse{
		Date:     d.view.Date,
		Metric:   d.view.Metric,
		Playing:  d.playing,
		Earliest: d.store.Earliest(),
		Latest:   d.store.Latest(),
	}
}

// Document returns the last published GeoJSON view document.
func (d *Driver) Document() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Document()
}

// Dates returns the slider domain (immutable after load).
func (d *Driver) Dates() []string {
	return d.store.Dates()
}

// Legend describes the color mapping for the currently selected metric.
func (d *Driver) Legend() models.LegendResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, _ := d.store.Mapper(d.view.Metric)
	return models.LegendResponse{
		Metric:  d.view.Metric,
		Title:   models.MetricTitle(d.view.Metric),
		Low:     m.Low,
		High:    m.High,
		Palette: m.Palette(),
	}
}
