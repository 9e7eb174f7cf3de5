package engine

import (
	"log/slog"

	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/moments"
	"github.com/talgya/arcanum/internal/shop"
	"github.com/talgya/arcanum/internal/transcend"
	"github.com/talgya/arcanum/internal/tuning"
)

// Player actions. Each method revalidates its own preconditions; a
// rejected action is a silent no-op returning false.

// Ponder is an orb click: one unit of wisdom through the click
// pipeline, one point of curiosity, and a mark for the blindfold
// constraint.
func (s *Session) Ponder() float64 {
	gain := tuning.BaseClickWisdom * s.ClickMultiplier()
	s.gainWisdom(gain)
	s.Resources.RecordClick()
	s.clickedOrb = true
	return gain
}

// DeepFocus engages the short burst multiplier. Rejected while active
// or cooling down.
func (s *Session) DeepFocus() bool {
	if s.DeepFocusActive || s.DeepFocusCooldown > 0 {
		return false
	}
	s.DeepFocusActive = true
	s.DeepFocusTimer = tuning.DeepFocusDuration
	s.DeepFocusCooldown = tuning.DeepFocusCooldown
	s.Achieve.RecordDeepFocus()
	return true
}

// ToggleFocus flips the focus drain on or off.
func (s *Session) ToggleFocus() bool {
	return s.Resources.ToggleFocus()
}

// SummonAcolyte buys one acolyte with focus points.
func (s *Session) SummonAcolyte() bool {
	cost := s.Acolytes.NextCost()
	if s.FocusPoints < cost {
		return false
	}
	s.FocusPoints -= cost
	s.Acolytes.Count++
	return true
}

// DispelShadows clears attached shadows and returns the stored wisdom
// with its bonus. The payout bypasses the siphon: the shadows are
// already gone.
func (s *Session) DispelShadows() (float64, bool) {
	payout, ok := s.Shadows.Dispel()
	if !ok {
		return 0, false
	}
	s.Meter.Add(payout)
	return payout, true
}

// ClaimMoment consumes the pending moment of clarity.
func (s *Session) ClaimMoment() (moments.Outcome, bool) {
	out, ok := s.Moments.Claim(s.PassiveRate(), s.FocusPoints, s.momentModifiers())
	if !ok {
		return moments.Outcome{}, false
	}
	s.gainWisdom(out.WisdomGain)
	s.FocusPoints += out.AFPGain
	slog.Info("moment claimed", "effect", out.Effect.Label())
	return out, true
}

// GeneratorUnlocked reports whether the tier's lifetime-truth threshold
// has been reached.
func (s *Session) GeneratorUnlocked(t generators.Type) bool {
	return t.Valid() && s.TotalTruths >= t.UnlockThreshold()
}

// BuyGenerator purchases one unit of a tier. Focus points and, for
// gated tiers, serenity are spent atomically: both balances are checked
// before either is touched. Recalculates the synergy cache before
// returning.
func (s *Session) BuyGenerator(t generators.Type) bool {
	if !s.GeneratorUnlocked(t) {
		return false
	}
	cost := t.NextCost(s.Generators.Count(t), s.Prestige.GeneratorDiscount())
	if s.FocusPoints < cost {
		return false
	}
	if gate := t.SerenityCost(); gate > 0 {
		if !s.Resources.SpendSerenity(gate) {
			return false
		}
	}
	s.FocusPoints -= cost
	s.Generators.Add(t)
	s.Synergy.Recalculate(&s.Generators)
	return true
}

// BuyShopItem purchases a one-time catalog item with focus points.
// Owned items are rejected. Orb items also unlock their orb; the
// purchase does not auto-equip it.
func (s *Session) BuyShopItem(id shop.ItemID) bool {
	it, ok := shop.Find(id)
	if !ok || s.Shop.Owns(id) || s.FocusPoints < it.Cost {
		return false
	}
	s.FocusPoints -= it.Cost
	s.Shop.Purchased[id] = true
	s.Shop.Recalculate()
	return true
}

// EquipOrb swaps the equipped orb. Crystal is always available; the
// rest require their shop purchase.
func (s *Session) EquipOrb(orb shop.OrbType) bool {
	if orb != shop.Crystal {
		owned := false
		for _, it := range shop.Catalog {
			if o, isOrb := shop.OrbForItem(it.ID); isOrb && o == orb && s.Shop.Owns(it.ID) {
				owned = true
				break
			}
		}
		if !owned {
			return false
		}
	}
	s.Shop.Equipped = orb
	s.Shop.Recalculate()
	return true
}

// BuyEnlightenment spends permanent insight on a permanent upgrade.
func (s *Session) BuyEnlightenment(id transcend.EnlightenmentID) bool {
	return s.Prestige.BuyEnlightenment(id)
}

// Transcend banks pending insight and enters school selection. The run
// keeps playing untouched until ChooseSchool commits the reset.
func (s *Session) Transcend() (uint32, bool) {
	gained, ok := s.Prestige.Begin()
	if ok {
		slog.Info("transcended", "insight_gained", gained,
			"total", s.Prestige.TotalTranscendences)
	}
	return gained, ok
}

// ChooseSchool commits the pending transcendence: the chosen school is
// installed and the full run-scope reset runs. Permanent state
// (insight, enlightenments, achievements, codex, challenge completions,
// serenity, lifetime truths) is untouched.
func (s *Session) ChooseSchool(id transcend.SchoolID) bool {
	if s.Prestige.Phase != transcend.PhaseSchoolSelection || !transcend.ValidSchool(id) {
		return false
	}

	s.Meter.ResetRun()
	s.Generators.Reset()
	s.Synergy.Recalculate(&s.Generators)
	s.Shop.ResetRun()
	s.Acolytes.Reset()
	s.Resources.ResetRun()
	s.Achieve.ResetRun()
	s.Challenges.ResetRun()
	s.Moments.ResetRun()
	s.Shadows.ResetRun()
	s.FocusPoints = s.Prestige.StartingAFP()
	s.DeepFocusActive = false
	s.DeepFocusTimer = 0
	s.DeepFocusCooldown = 0

	s.School.ResetRun()
	s.School.Choose(id)
	s.Prestige.Commit()
	slog.Info("school chosen", "school", string(id))
	return true
}

// StartChallenge attaches a challenge attempt.
func (s *Session) StartChallenge(id challenges.ID) bool {
	return s.Challenges.Start(id)
}

// CancelChallenge detaches the active challenge, failed or not.
func (s *Session) CancelChallenge() bool {
	return s.Challenges.Cancel()
}
