// Package moments runs the random-event layer: moments of clarity that
// appear and wait to be claimed, and shadow thoughts that siphon wisdom
// until dispelled.
package moments

import (
	"math/rand"

	"github.com/talgya/arcanum/internal/tuning"
)

// Effect is the reward a moment of clarity grants when claimed.
type Effect int

const (
	// WisdomBurst adds an instant lump of wisdom.
	WisdomBurst Effect = iota
	// WisdomSurge doubles all wisdom generation for a duration.
	WisdomSurge
	// AFPWindfall grants focus points instantly.
	AFPWindfall
	// ClickFrenzy triples click power for a duration.
	ClickFrenzy

	effectCount
)

func (e Effect) Label() string {
	switch e {
	case WisdomBurst:
		return "Sudden Insight"
	case WisdomSurge:
		return "Heightened Awareness"
	case AFPWindfall:
		return "Arcane Windfall"
	case ClickFrenzy:
		return "Pondering Frenzy"
	}
	return "Unknown"
}

func (e Effect) Description() string {
	switch e {
	case WisdomBurst:
		return "A flash of pure wisdom floods your mind."
	case WisdomSurge:
		return "All wisdom flows twice as fast for 30 seconds."
	case AFPWindfall:
		return "The arcane currents deliver a gift of focus points."
	case ClickFrenzy:
		return "Your pondering intensifies threefold for 20 seconds."
	}
	return ""
}

// Pending is a spawned moment waiting to be claimed. It expires
// unclaimed when Remaining runs out.
type Pending struct {
	Effect    Effect
	Remaining float64
}

// Buff is a running timed effect from a claimed moment.
type Buff struct {
	Effect    Effect
	Remaining float64
}

// Modifiers are the external adjustments to moment behavior: spawn
// frequency (enlightenment × school), lifetime/buff duration, burst
// reward scale, and the ambience interval jitter.
type Modifiers struct {
	Frequency float64
	Duration  float64
	Burst     float64
	Jitter    float64
}

// DefaultModifiers leaves everything at 1.
func DefaultModifiers() Modifiers {
	return Modifiers{Frequency: 1, Duration: 1, Burst: 1, Jitter: 1}
}

// Moments is the clarity spawner state.
type Moments struct {
	rng     *rand.Rand
	SpawnIn float64
	Pending *Pending
	Buff    *Buff
}

// NewMoments seeds the spawner with the long first-spawn delay.
func NewMoments(rng *rand.Rand) *Moments {
	m := &Moments{rng: rng}
	m.SpawnIn = uniform(rng, tuning.MomentFirstSpawnMin, tuning.MomentFirstSpawnMax)
	return m
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (m *Moments) rearm(mods Modifiers) {
	freq := mods.Frequency
	if freq <= 0 {
		freq = 1
	}
	jitter := mods.Jitter
	if jitter <= 0 {
		jitter = 1
	}
	m.SpawnIn = uniform(m.rng, tuning.MomentSpawnMin, tuning.MomentSpawnMax) / freq * jitter
}

// Tick advances the spawn timer, the pending lifetime, and the active
// buff. An unclaimed moment that expires rearms the spawn timer.
func (m *Moments) Tick(dt float64, mods Modifiers) {
	if m.Pending == nil {
		m.SpawnIn -= dt
		if m.SpawnIn <= 0 {
			m.Pending = &Pending{
				Effect:    Effect(m.rng.Intn(int(effectCount))),
				Remaining: tuning.MomentLifetime * mods.Duration,
			}
		}
	} else {
		m.Pending.Remaining -= dt
		if m.Pending.Remaining <= 0 {
			m.Pending = nil
			m.rearm(mods)
		}
	}

	if m.Buff != nil {
		m.Buff.Remaining -= dt
		if m.Buff.Remaining <= 0 {
			m.Buff = nil
		}
	}
}

// Outcome reports what a claim granted. Instant effects carry a gain;
// timed effects install the buff.
type Outcome struct {
	Effect     Effect
	WisdomGain float64
	AFPGain    uint64
}

// Claim consumes the pending moment. passiveRate is the current
// per-second wisdom rate (feeds the burst); focusPoints feeds the
// windfall. Returns false when nothing is pending.
func (m *Moments) Claim(passiveRate float64, focusPoints uint64, mods Modifiers) (Outcome, bool) {
	if m.Pending == nil {
		return Outcome{}, false
	}
	burst := mods.Burst
	if burst <= 0 {
		burst = 1
	}
	out := Outcome{Effect: m.Pending.Effect}
	switch m.Pending.Effect {
	case WisdomBurst:
		gain := passiveRate * tuning.MomentBurstRateFactor
		if gain < tuning.MomentBurstFloor {
			gain = tuning.MomentBurstFloor
		}
		out.WisdomGain = gain * burst
	case WisdomSurge:
		m.Buff = &Buff{Effect: WisdomSurge, Remaining: tuning.MomentBuffWisdomSecs * mods.Duration}
	case AFPWindfall:
		gain := focusPoints / tuning.MomentAFPFraction
		if gain < tuning.MomentAFPFloor {
			gain = tuning.MomentAFPFloor
		}
		out.AFPGain = uint64(float64(gain) * burst)
	case ClickFrenzy:
		m.Buff = &Buff{Effect: ClickFrenzy, Remaining: tuning.MomentBuffClickSecs * mods.Duration}
	}
	m.Pending = nil
	m.rearm(mods)
	return out, true
}

// WisdomMultiplier is the buff contribution to all wisdom generation.
func (m *Moments) WisdomMultiplier() float64 {
	if m.Buff != nil && m.Buff.Effect == WisdomSurge {
		return tuning.MomentBuffWisdomMult
	}
	return 1.0
}

// ClickMultiplier is the buff contribution to click wisdom.
func (m *Moments) ClickMultiplier() float64 {
	if m.Buff != nil && m.Buff.Effect == ClickFrenzy {
		return tuning.MomentBuffClickMult
	}
	return 1.0
}

// ResetRun clears pending moments and buffs and rearms the long first
// delay.
func (m *Moments) ResetRun() {
	m.Pending = nil
	m.Buff = nil
	m.SpawnIn = uniform(m.rng, tuning.MomentFirstSpawnMin, tuning.MomentFirstSpawnMax)
}
