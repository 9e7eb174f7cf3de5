// Package generators owns the eight passive-production tiers: static
// tier attributes, owned counts, purchase cost curves, and the
// synergy/milestone multiplier cache.
package generators

import (
	"math"

	"github.com/talgya/arcanum/internal/tuning"
)

// Type is one of the eight fixed generator tiers. The enumeration is
// closed: TierCount bounds every per-tier array and loop.
type Type int

const (
	Candle Type = iota
	CrystalBall
	AncientTome
	LeyLineTap
	AstralMirror
	DreamLoom
	VoidGate
	CosmicEye

	TierCount
)

// All lists the tiers in ascending order.
func All() []Type {
	out := make([]Type, TierCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

func (t Type) Valid() bool { return t >= 0 && t < TierCount }

func (t Type) Name() string {
	switch t {
	case Candle:
		return "Enchanted Candle"
	case CrystalBall:
		return "Crystal Ball"
	case AncientTome:
		return "Ancient Tome"
	case LeyLineTap:
		return "Ley Line Tap"
	case AstralMirror:
		return "Astral Mirror"
	case DreamLoom:
		return "Dream Loom"
	case VoidGate:
		return "Void Gate"
	case CosmicEye:
		return "Cosmic Eye"
	}
	return "Unknown"
}

func (t Type) Description() string {
	switch t {
	case Candle:
		return "A flickering flame that whispers forgotten truths."
	case CrystalBall:
		return "Gazes into the probable and the improbable alike."
	case AncientTome:
		return "Pages filled with wisdom that rewrites itself nightly."
	case LeyLineTap:
		return "Channels the ambient arcane energy flowing beneath the tower."
	case AstralMirror:
		return "Reflects thoughts from other planes of consciousness."
	case DreamLoom:
		return "Weaves subconscious threads into tangible insight."
	case VoidGate:
		return "A controlled aperture into the space between spaces."
	case CosmicEye:
		return "Perceives the universal pattern underlying all wisdom."
	}
	return ""
}

// BaseCost is the focus-point price of the first unit.
func (t Type) BaseCost() uint64 {
	switch t {
	case Candle:
		return 50
	case CrystalBall:
		return 500
	case AncientTome:
		return 5_000
	case LeyLineTap:
		return 50_000
	case AstralMirror:
		return 500_000
	case DreamLoom:
		return 5_000_000
	case VoidGate:
		return 50_000_000
	case CosmicEye:
		return 500_000_000
	}
	return 0
}

// BaseProduction is wisdom per second per unit, before multipliers.
func (t Type) BaseProduction() float64 {
	switch t {
	case Candle:
		return 0.1
	case CrystalBall:
		return 1.0
	case AncientTome:
		return 8.0
	case LeyLineTap:
		return 47.0
	case AstralMirror:
		return 260.0
	case DreamLoom:
		return 1_400.0
	case VoidGate:
		return 7_800.0
	case CosmicEye:
		return 44_000.0
	}
	return 0
}

// UnlockThreshold is the lifetime truth count required before the tier
// appears in the shop.
func (t Type) UnlockThreshold() uint32 {
	switch t {
	case Candle:
		return 0
	case CrystalBall:
		return 3
	case AncientTome:
		return 10
	case LeyLineTap:
		return 25
	case AstralMirror:
		return 50
	case DreamLoom:
		return 100
	case VoidGate:
		return 200
	case CosmicEye:
		return 400
	}
	return math.MaxUint32
}

// SerenityCost is the secondary-resource gate on the highest tiers, or
// 0 when the tier has none. Consumed atomically with the purchase.
func (t Type) SerenityCost() float64 {
	switch t {
	case AstralMirror:
		return 10
	case DreamLoom:
		return 25
	case VoidGate:
		return 60
	case CosmicEye:
		return 150
	}
	return 0
}

// NextCost is the price of the next unit at the given owned count, with
// a prestige discount applied (0.1 = 10% off). Floored at 1.
func (t Type) NextCost(owned int, discount float64) uint64 {
	base := float64(t.BaseCost()) * math.Pow(tuning.GeneratorCostGrowth, float64(owned))
	cost := math.Ceil(base * (1 - discount))
	if cost < 1 {
		return 1
	}
	return uint64(cost)
}

// State holds the owned count per tier. Counts only change via purchase
// and the prestige reset.
type State struct {
	Owned [TierCount]int
}

func (s *State) Count(t Type) int {
	if !t.Valid() {
		return 0
	}
	return s.Owned[t]
}

// Add records a purchased unit. The caller is responsible for
// recalculating the synergy cache afterwards.
func (s *State) Add(t Type) {
	if t.Valid() {
		s.Owned[t]++
	}
}

// Total is the number of units owned across all tiers.
func (s *State) Total() int {
	total := 0
	for _, n := range s.Owned {
		total += n
	}
	return total
}

// OwnsAll reports whether at least one of every tier is owned.
func (s *State) OwnsAll() bool {
	for _, n := range s.Owned {
		if n == 0 {
			return false
		}
	}
	return true
}

// Reset zeroes every owned count. Prestige only.
func (s *State) Reset() {
	s.Owned = [TierCount]int{}
}
