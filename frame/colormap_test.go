// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package frame

import (
	"math"
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorMapperBounds(t *testing.T) {
	m := NewColorMapper("Density", []float64{100, 200, 80})

	if m.Low != 80 {
		t.Errorf("Expected low 80, got %v", m.Low)
	}
	if m.High != 200 {
		t.Errorf("Expected high 200, got %v", m.High)
	}
}

func TestColorMapperIgnoresNaN(t *testing.T) {
	m := NewColorMapper("Density", []float64{math.NaN(), 50, 150, math.NaN()})

	if m.Low != 50 || m.High != 150 {
		t.Errorf("Expected bounds [50, 150], got [%v, %v]", m.Low, m.High)
	}
}

func TestColorRampEnds(t *testing.T) {
	m := NewColorMapper("Density", []float64{0, 100})
	palette := m.Palette()

	if len(palette) != paletteSize {
		t.Fatalf("Expected %d palette entries, got %d", paletteSize, len(palette))
	}
	for _, c := range palette {
		if !hexColor.MatchString(c) {
			t.Fatalf("Palette entry %q is not a #rrggbb color", c)
		}
	}

	// Reversed ramp: the low end is the light inferno end, the high end dark
	if got := m.Color(0); got != palette[0] {
		t.Errorf("Expected low value to map to palette[0] (%s), got %s", palette[0], got)
	}
	if got := m.Color(100); got != palette[len(palette)-1] {
		t.Errorf("Expected high value to map to last palette entry, got %s", got)
	}
	if palette[0] != "#fcffa4" {
		t.Errorf("Expected light inferno end #fcffa4 at the low end, got %s", palette[0])
	}
	if palette[len(palette)-1] != "#000004" {
		t.Errorf("Expected dark inferno end #000004 at the high end, got %s", palette[len(palette)-1])
	}
}

func TestColorClampsOutOfRange(t *testing.T) {
	m := NewColorMapper("Density", []float64{10, 20})

	if m.Color(-5) != m.Color(10) {
		t.Error("Values below the low bound should clamp to the low color")
	}
	if m.Color(999) != m.Color(20) {
		t.Error("Values above the high bound should clamp to the high color")
	}
}

func TestColorDegenerateRange(t *testing.T) {
	m := NewColorMapper("Density", []float64{42})

	// Must not divide by zero; any ramp color is acceptable, but it must be
	// well-formed and stable.
	c1, c2 := m.Color(42), m.Color(42)
	if c1 != c2 || !hexColor.MatchString(c1) {
		t.Errorf("Degenerate range produced unstable or malformed color: %q, %q", c1, c2)
	}
}
