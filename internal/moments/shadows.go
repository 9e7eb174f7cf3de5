package moments

import (
	"math"
	"math/rand"

	"github.com/talgya/arcanum/internal/tuning"
)

// Shadows are dark wisps that attach to the orb over time. Each one
// siphons a share of gross wisdom gains into hidden storage; dispelling
// returns the storage with a compounding bonus per shadow.
type Shadows struct {
	rng     *rand.Rand
	Count   int
	SpawnIn float64
	Stored  float64
}

// NewShadows seeds the spawner with the long first-spawn delay.
func NewShadows(rng *rand.Rand) *Shadows {
	s := &Shadows{rng: rng}
	s.SpawnIn = uniform(rng, tuning.ShadowFirstSpawnMin, tuning.ShadowFirstSpawnMax)
	return s
}

func (s *Shadows) rearm() {
	s.SpawnIn = uniform(s.rng, tuning.ShadowSpawnMin, tuning.ShadowSpawnMax)
}

// Tick spawns a shadow when the timer lapses. The timer holds while at
// capacity.
func (s *Shadows) Tick(dt float64) {
	if s.Count >= tuning.ShadowMax {
		return
	}
	s.SpawnIn -= dt
	if s.SpawnIn <= 0 {
		s.Count++
		s.rearm()
	}
}

// DrainFraction is the share of gross wisdom gains being siphoned.
func (s *Shadows) DrainFraction() float64 {
	f := float64(s.Count) * tuning.ShadowDrainPerShadow
	if f > tuning.ShadowDrainCap {
		f = tuning.ShadowDrainCap
	}
	return f
}

// Siphon diverts the drained share of a gross gain into storage and
// returns the amount taken.
func (s *Shadows) Siphon(gained float64) float64 {
	if s.Count == 0 || gained <= 0 {
		return 0
	}
	drain := gained * s.DrainFraction()
	s.Stored += drain
	return drain
}

// DispelMultiplier is the payout bonus for the current shadow count.
func (s *Shadows) DispelMultiplier() float64 {
	return math.Pow(tuning.ShadowDispelMult, float64(s.Count))
}

// Dispel clears all shadows and returns the stored wisdom with the
// dispel bonus applied. Returns false when no shadows are attached.
func (s *Shadows) Dispel() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}
	payout := s.Stored * s.DispelMultiplier()
	s.Count = 0
	s.Stored = 0
	s.rearm()
	return payout, true
}

// ResetRun clears shadows and storage and rearms the long first delay.
func (s *Shadows) ResetRun() {
	s.Count = 0
	s.Stored = 0
	s.SpawnIn = uniform(s.rng, tuning.ShadowFirstSpawnMin, tuning.ShadowFirstSpawnMax)
}
