// Package acolytes is the linear passive-income sub-economy: each
// summoned acolyte adds a fixed wisdom rate, with an exponential summon
// cost curve.
package acolytes

import (
	"math"

	"github.com/talgya/arcanum/internal/tuning"
)

// State tracks summoned acolytes for the current run.
type State struct {
	Count int
}

// NextCost is the focus-point price of the next summon.
func (s *State) NextCost() uint64 {
	cost := math.Ceil(tuning.AcolyteBaseCost * math.Pow(tuning.AcolyteCostGrowth, float64(s.Count)))
	return uint64(cost)
}

// PassiveRate is the base wisdom per second from all acolytes, before
// global pipeline multipliers.
func (s *State) PassiveRate() float64 {
	return float64(s.Count) * tuning.AcolyteBaseRate
}

// Reset dismisses every acolyte. Prestige only.
func (s *State) Reset() {
	s.Count = 0
}
