package generators

import (
	"fmt"
	"strings"

	"github.com/talgya/arcanum/internal/tuning"
)

// synergyLink is a directed production bonus: owning units of Source
// boosts Target by BonusPerUnit each.
type synergyLink struct {
	Source       Type
	Target       Type
	BonusPerUnit float64
}

// synergyTable holds reciprocal adjacent-tier pairs and one-way
// skip-tier links. The asymmetry of the skip links is designed, not an
// oversight: the lower tier feeds the higher, never the reverse.
var synergyTable = func() []synergyLink {
	var links []synergyLink
	// Adjacent pairs, both directions.
	for t := Candle; t < CosmicEye; t++ {
		links = append(links,
			synergyLink{t, t + 1, tuning.SynergyAdjacentBonus},
			synergyLink{t + 1, t, tuning.SynergyAdjacentBonus},
		)
	}
	// Skip-tier links, one direction only.
	for _, pair := range [][2]Type{
		{Candle, AncientTome},
		{CrystalBall, AstralMirror},
		{LeyLineTap, VoidGate},
		{DreamLoom, CosmicEye},
	} {
		links = append(links, synergyLink{pair[0], pair[1], tuning.SynergySkipBonus})
	}
	return links
}()

// MilestoneMultiplier is the step-function bonus for a single tier's
// owned count. Breakpoints are cumulative thresholds scanned in
// ascending order; the scan stops at the first unmet one.
func MilestoneMultiplier(owned int) float64 {
	mult := 1.0
	for _, bp := range tuning.MilestoneBreakpoints {
		if owned < bp.Owned {
			break
		}
		mult = bp.Mult
	}
	return mult
}

// Synergy caches the per-tier synergy and milestone multipliers derived
// from a State. It is never mutated directly: Recalculate must run
// after every owned-count change, before any production or display
// read.
type Synergy struct {
	SynergyMult   [TierCount]float64
	MilestoneMult [TierCount]float64
}

// NewSynergy returns a cache with all multipliers at 1.0.
func NewSynergy() Synergy {
	var s Synergy
	for i := range s.SynergyMult {
		s.SynergyMult[i] = 1.0
		s.MilestoneMult[i] = 1.0
	}
	return s
}

// Recalculate rebuilds the cache from scratch for the given counts.
func (sy *Synergy) Recalculate(state *State) {
	for i := range sy.SynergyMult {
		sy.SynergyMult[i] = 1.0
		sy.MilestoneMult[i] = MilestoneMultiplier(state.Owned[i])
	}
	for _, link := range synergyTable {
		if n := state.Count(link.Source); n > 0 {
			sy.SynergyMult[link.Target] += link.BonusPerUnit * float64(n)
		}
	}
}

// TotalMult is the combined synergy and milestone multiplier for one
// tier.
func (sy *Synergy) TotalMult(t Type) float64 {
	if !t.Valid() {
		return 1.0
	}
	return sy.SynergyMult[t] * sy.MilestoneMult[t]
}

// TotalProduction is the wisdom-per-second from all owned generators
// with per-tier synergy and milestone multipliers applied, before any
// global pipeline multipliers.
func (sy *Synergy) TotalProduction(state *State) float64 {
	total := 0.0
	for _, t := range All() {
		if n := state.Owned[t]; n > 0 {
			total += t.BaseProduction() * float64(n) * sy.SynergyMult[t] * sy.MilestoneMult[t]
		}
	}
	return total
}

// Describe summarizes a tier's active bonuses for display, or "" when
// none apply.
func (sy *Synergy) Describe(t Type, state *State) string {
	var parts []string
	for _, link := range synergyTable {
		if link.Target != t {
			continue
		}
		n := state.Count(link.Source)
		if n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("+%.0f%% from %s",
			link.BonusPerUnit*float64(n)*100, link.Source.Name()))
	}
	if sy.MilestoneMult[t] > 1.0 {
		parts = append(parts, fmt.Sprintf("x%.1f milestone", sy.MilestoneMult[t]))
	}
	return strings.Join(parts, ", ")
}
