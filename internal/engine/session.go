// Session ties together every economy system and advances them each tick.
package engine

import (
	"log/slog"
	"math/rand"

	"github.com/talgya/arcanum/internal/achievements"
	"github.com/talgya/arcanum/internal/acolytes"
	"github.com/talgya/arcanum/internal/ambience"
	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/codex"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/moments"
	"github.com/talgya/arcanum/internal/resources"
	"github.com/talgya/arcanum/internal/shop"
	"github.com/talgya/arcanum/internal/transcend"
	"github.com/talgya/arcanum/internal/tuning"
	"github.com/talgya/arcanum/internal/wisdom"
)

// Session owns the complete economy state. Every record lives here as
// an explicit field; nothing is global. All mutation happens on the
// caller's single goroutine — actions between ticks, systems within
// Tick, in a fixed serial order.
type Session struct {
	rng *rand.Rand

	Meter      wisdom.Meter
	Generators generators.State
	Synergy    generators.Synergy
	Shop       *shop.Tracker
	Acolytes   acolytes.State
	Resources  resources.State
	Prestige   *transcend.State
	School     transcend.RunSchool
	Achieve    *achievements.Tracker
	Codex      *codex.Codex
	Challenges *challenges.State
	Moments    *moments.Moments
	Shadows    *moments.Shadows
	Ambience   *ambience.State

	// FocusPoints is the spendable currency (AFP). TotalTruths is the
	// lifetime truth count gating generator unlocks; it survives
	// prestige.
	FocusPoints uint64
	TotalTruths uint32

	DeepFocusActive   bool
	DeepFocusTimer    float64
	DeepFocusCooldown float64

	// clickedOrb covers orb clicks since the previous tick, read by the
	// challenge constraint checks.
	clickedOrb bool

	// events is the per-tick truth broadcast list. Every in-tick
	// consumer reads it during resolution; at end of tick it rolls into
	// outbox, which external observers drain by copy.
	events []wisdom.Truth
	outbox []wisdom.Truth
}

// NewSession builds a fresh session. The seed drives every random
// element (truth selection, event spawns, aether flux).
func NewSession(seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		rng:        rng,
		Meter:      wisdom.NewMeter(),
		Synergy:    generators.NewSynergy(),
		Shop:       shop.NewTracker(),
		Prestige:   transcend.NewState(),
		Achieve:    achievements.NewTracker(),
		Codex:      codex.New(),
		Challenges: challenges.NewState(),
		Moments:    moments.NewMoments(rng),
		Shadows:    moments.NewShadows(rng),
		Ambience:   ambience.New(seed),
	}
	s.Synergy.Recalculate(&s.Generators)
	return s
}

// ActiveScaling resolves the truth-threshold scaling factor. Exactly
// one source wins: an active challenge override beats the school
// override, which beats the purchased/default factor.
func (s *Session) ActiveScaling() float64 {
	if f, ok := s.Challenges.ScalingOverride(); ok {
		return f
	}
	if f, ok := s.School.ScalingOverride(); ok {
		return f
	}
	return s.Shop.ScalingFactor
}

func (s *Session) deepFocusMult() float64 {
	if s.DeepFocusActive {
		return tuning.DeepFocusMultiplier
	}
	return 1.0
}

// ClickMultiplier composes every bonus source that scales click wisdom.
// Each factor comes from exactly one source; the surge buff and the
// click-frenzy buff are distinct moment factors.
func (s *Session) ClickMultiplier() float64 {
	return (1.0 + s.Shop.EfficiencyBonus) *
		s.Shop.WisdomSpeedBonus *
		s.deepFocusMult() *
		s.Moments.WisdomMultiplier() *
		s.Moments.ClickMultiplier() *
		s.School.ClickMultiplier() *
		s.Prestige.ClickMultiplier() *
		s.Achieve.WisdomMultiplier() *
		s.Codex.WisdomMultiplier() *
		s.Challenges.ClickMultiplier() *
		s.Resources.FocusMult()
}

// PassiveMultiplier composes every bonus source that scales passive
// wisdom. The dream-plane night bonus applies only here, never to
// clicks: dreams deepen meditation, not pondering.
func (s *Session) PassiveMultiplier() float64 {
	return (1.0 + s.Shop.EfficiencyBonus) *
		s.Shop.WisdomSpeedBonus *
		s.deepFocusMult() *
		s.Moments.WisdomMultiplier() *
		s.School.PassiveMultiplier() *
		s.Prestige.PassiveMultiplier() *
		s.Achieve.WisdomMultiplier() *
		s.Codex.WisdomMultiplier() *
		s.Challenges.PassiveMultiplier() *
		s.Resources.FocusMult() *
		s.Ambience.DreamMultiplier()
}

// PassiveRate is the current wisdom-per-second rate: generators and
// acolytes summed, scaled by the passive pipeline, plus the astral
// plane's flat trickle.
func (s *Session) PassiveRate() float64 {
	base := s.Synergy.TotalProduction(&s.Generators) + s.Acolytes.PassiveRate()
	return base*s.PassiveMultiplier() + s.Ambience.AstralTrickle()
}

// gainWisdom adds wisdom through the shadow siphon. Dispel payouts and
// other shadow-exempt gains call Meter.Add directly.
func (s *Session) gainWisdom(amount float64) {
	if amount <= 0 {
		return
	}
	amount -= s.Shadows.Siphon(amount)
	s.Meter.Add(amount)
}

func (s *Session) momentModifiers() moments.Modifiers {
	return moments.Modifiers{
		Frequency: s.Prestige.MomentFrequencyMultiplier() * s.School.MomentFrequencyMultiplier(),
		Duration:  s.School.MomentDurationMultiplier(),
		Burst:     s.School.MomentBurstMultiplier(),
		Jitter:    s.Ambience.FluxJitter(),
	}
}

// Tick advances the session by dt seconds. Order is fixed: timers and
// buffs, production, ambience, secondary resources, truth resolution,
// reward and meta consumers, challenge checks, then the event rollover.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	// Timers and buffs.
	s.Moments.Tick(dt, s.momentModifiers())
	s.Shadows.Tick(dt)
	if s.DeepFocusActive {
		s.DeepFocusTimer -= dt
		if s.DeepFocusTimer <= 0 {
			s.DeepFocusActive = false
			s.DeepFocusTimer = 0
		}
	}
	if s.DeepFocusCooldown > 0 {
		s.DeepFocusCooldown -= dt
		if s.DeepFocusCooldown < 0 {
			s.DeepFocusCooldown = 0
		}
	}

	// Passive production, through the siphon.
	s.gainWisdom(s.PassiveRate() * dt)

	// Ambience: day/night advance and dream truths.
	if t, gift, ok := s.Ambience.Tick(dt); ok {
		s.Meter.Add(gift)
		s.events = append(s.events, t)
	}

	// Secondary resources.
	s.Resources.AccumulateSerenity(dt, s.Acolytes.Count, s.Generators.Total())
	s.Resources.TickFocus(dt)

	// Truth resolution and its consumers.
	fired := s.Meter.Resolve(s.ActiveScaling())
	for _, preMax := range fired {
		s.Prestige.AccumulateRunWisdom(preMax)
		s.School.RecordTruth()
		s.TotalTruths++
		s.awardTruthAFP()

		t := wisdom.CatalogTruth(s.rng.Intn(wisdom.CatalogSize))
		s.Codex.Record(t.Index)
		s.events = append(s.events, t)
	}
	s.Achieve.RecordTruths(len(fired))
	s.Achieve.Advance(dt, s.FocusPoints)
	for _, id := range s.Achieve.Check(s.achievementStats()) {
		if d, ok := achievements.Find(id); ok {
			slog.Info("achievement unlocked", "name", d.Name)
		}
	}

	// Challenge constraints and completion.
	if id, done := s.Challenges.Tick(dt, challenges.Observations{
		TotalGenerators: s.Generators.Total(),
		AcolyteCount:    s.Acolytes.Count,
		ClickedOrb:      s.clickedOrb,
		TruthsThisTick:  uint32(len(fired)),
	}); done {
		if d, ok := challenges.Find(id); ok {
			slog.Info("challenge completed", "name", d.Name, "reward", d.Reward)
		}
	}

	for _, l := range s.Ambience.CheckUnlocks(s.Prestige.TotalTranscendences) {
		slog.Info("layer unlocked", "layer", l.Name())
	}

	// End of tick: roll events into the drainable outbox.
	s.clickedOrb = false
	if len(s.events) > 0 {
		s.outbox = append(s.outbox, s.events...)
		s.events = s.events[:0]
	}
}

// awardTruthAFP credits one truth's focus points: base plus flat shop
// and school bonuses, scaled by the challenge AFP multiplier.
func (s *Session) awardTruthAFP() {
	flat := uint64(tuning.BaseAFPPerTruth) + s.Shop.AFPBonus + s.School.BonusAFPPerTruth()
	s.FocusPoints += uint64(float64(flat) * s.Challenges.AFPMultiplier())
}

func (s *Session) achievementStats() achievements.Stats {
	return achievements.Stats{
		FocusPoints:         s.FocusPoints,
		TotalTranscendences: s.Prestige.TotalTranscendences,
		TotalGenerators:     s.Generators.Total(),
		CandleCount:         s.Generators.Count(generators.Candle),
		OwnsAllGenerators:   s.Generators.OwnsAll(),
		AcolyteCount:        s.Acolytes.Count,
	}
}

// DrainEvents returns all truths broadcast since the previous drain and
// clears the outbox.
func (s *Session) DrainEvents() []wisdom.Truth {
	if len(s.outbox) == 0 {
		return nil
	}
	out := make([]wisdom.Truth, len(s.outbox))
	copy(out, s.outbox)
	s.outbox = s.outbox[:0]
	return out
}
