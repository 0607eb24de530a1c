// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// infernoStops are the anchor colors of the inferno ramp, dark to light.
// The map uses the reversed ramp so high metric values render dark.
var infernoStops = []string{
	"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
	"#cf4446", "#ed6925", "#fb9b06", "#f7d03c", "#fcffa4",
}

const paletteSize = 256

// ColorMapper maps a scalar metric value onto a fixed ordered color ramp by
// linear interpolation between the metric's observed minimum and maximum.
// Bounds are computed once from the full static column, never per frame.
type ColorMapper struct {
	Field   string
	Low     float64
	High    float64
	palette []string
}

// NewColorMapper builds a mapper for field over the reversed inferno ramp,
// with low/high taken from the min/max of values.
func NewColorMapper(field string, values []float64) ColorMapper {
	low, high := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		low = math.Min(low, v)
		high = math.Max(high, v)
	}
	if math.IsInf(low, 1) {
		low, high = 0, 0
	}
	return ColorMapper{
		Field:   field,
		Low:     low,
		High:    high,
		palette: infernoReversed(paletteSize),
	}
}

// Color returns the ramp color for v as a #rrggbb string. Values outside
// [Low, High] clamp to the ramp ends.
func (m ColorMapper) Color(v float64) string {
	if len(m.palette) == 0 {
		return infernoStops[len(infernoStops)-1]
	}
	if m.High == m.Low {
		return m.palette[0]
	}
	t := (v - m.Low) / (m.High - m.Low)
	t = math.Max(0, math.Min(1, t))
	i := int(math.Round(t * float64(len(m.palette)-1)))
	return m.palette[i]
}

// Palette returns the full ramp, low to high.
func (m ColorMapper) Palette() []string {
	return m.palette
}

// infernoReversed returns n colors sampled across the inferno ramp from
// light to dark.
func infernoReversed(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = lerpStops(1 - t) // reversed
	}
	return out
}

// lerpStops interpolates the anchor colors at position t in [0, 1].
func lerpStops(t float64) string {
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(infernoStops)-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= len(infernoStops) {
		return infernoStops[len(infernoStops)-1]
	}
	frac := pos - float64(lo)

	a := drawing.ColorFromHex(strings.TrimPrefix(infernoStops[lo], "#"))
	b := drawing.ColorFromHex(strings.TrimPrefix(infernoStops[hi], "#"))
	return fmt.Sprintf("#%02x%02x%02x",
		lerpChannel(a.R, b.R, frac),
		lerpChannel(a.G, b.G, frac),
		lerpChannel(a.B, b.B, frac),
	)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
