// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package driver holds the map view state machine.

# States

Two states, Idle and Playing. The driver owns the ViewState (selected date
and metric) and, while Playing, a recurring time.Ticker. The external control
surface is exactly three calls plus the internal Tick:

  - SetDate(d): republish from date column d (any state)
  - SetMetric(m): swap the fill-color field and legend (any state)
  - PressPlay(): Idle↔Playing toggle; starting registers the ticker,
    stopping cancels it synchronously and exactly once
  - Tick: Playing only; steps the date backward one calendar day, wrapping
    to the latest known date when the step leaves the observed range

The original visualization animates backward in time and wraps from the
earliest date to the latest; both behaviors are kept.

# Concurrency

HTTP handlers and the ticker goroutine call into the driver concurrently; a
single mutex serializes every transition, so Tick and SetDate run to
completion without interleaving. Stray ticks that were already queued when
PressPlay stopped the animation are dropped by the playing check.
*/
package driver
