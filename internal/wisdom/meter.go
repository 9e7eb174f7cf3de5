// Package wisdom owns the central wisdom meter and the truth-generation
// state machine: every production source feeds the meter, and threshold
// crossings convert accumulated wisdom into discrete truths.
package wisdom

import (
	"log/slog"

	"github.com/talgya/arcanum/internal/tuning"
)

// Meter is the central wisdom accumulator. Current always sits below
// MaxWisdom between resolutions; overflow is drained exactly at
// resolution time so click bursts never lose progress.
type Meter struct {
	Current         float64
	MaxWisdom       float64
	TruthsGenerated uint32
}

// NewMeter returns a meter at the start-of-run baseline.
func NewMeter() Meter {
	return Meter{Current: 0, MaxWisdom: tuning.BaseMaxWisdom}
}

// Add feeds wisdom into the meter. Negative contributions are sanitized
// to zero — no source may drain the meter through this path.
func (m *Meter) Add(amount float64) {
	if amount <= 0 {
		return
	}
	m.Current += amount
}

// Drain removes wisdom without affecting truth accounting. Used by the
// shadow siphon. Clamped so Current never goes negative.
func (m *Meter) Drain(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if amount > m.Current {
		amount = m.Current
	}
	m.Current -= amount
	return amount
}

// Fraction reports the fill level in [0, 1] for display. A degenerate
// MaxWisdom reads as full rather than dividing by zero.
func (m *Meter) Fraction() float64 {
	if m.MaxWisdom <= 0 {
		return 1
	}
	f := m.Current / m.MaxWisdom
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Resolve fires truth-generation transitions while Current has reached
// MaxWisdom. Each transition drains exactly the pre-transition threshold
// (overflow carries over), bumps the truth count, and grows the
// threshold by scaling. The returned slice holds the pre-transition
// threshold of every truth fired, in order — the prestige controller
// accumulates these into run wisdom.
//
// The loop is capped: pathological inputs cannot spin forever, and
// progress beyond the cap is dropped with a warning rather than
// silently.
func (m *Meter) Resolve(scaling float64) []float64 {
	if scaling <= 1.0 {
		scaling = tuning.DefaultScaling
	}
	var fired []float64
	for m.Current >= m.MaxWisdom {
		if len(fired) >= tuning.TruthLoopCap {
			slog.Warn("truth resolution hit iteration cap, dropping overflow",
				"cap", tuning.TruthLoopCap, "dropped", m.Current)
			m.Current = 0
			break
		}
		pre := m.MaxWisdom
		m.Current -= pre
		m.TruthsGenerated++
		m.MaxWisdom *= scaling
		fired = append(fired, pre)
	}
	return fired
}

// ResetRun returns the meter to the start-of-run baseline. Called on
// prestige; TruthsGenerated is run-scoped and resets with it.
func (m *Meter) ResetRun() {
	m.Current = 0
	m.MaxWisdom = tuning.BaseMaxWisdom
	m.TruthsGenerated = 0
}
