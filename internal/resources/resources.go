// Package resources holds the three secondary resources: serenity (a
// patience-gated purchase currency), curiosity (click-generated), and
// focus (a depletable toggled production boost).
package resources

import "github.com/talgya/arcanum/internal/tuning"

// State is the secondary-resource record. Serenity survives prestige;
// curiosity and focus are run-scoped.
type State struct {
	Serenity    float64
	Curiosity   float64
	Focus       float64
	FocusActive bool
}

// AccumulateSerenity advances the monotonic serenity meter. The rate
// scales with acolyte and generator counts; serenity only ever
// decreases when spent as a purchase gate.
func (s *State) AccumulateSerenity(dt float64, acolyteCount, generatorCount int) {
	rate := tuning.SerenityBaseRate +
		tuning.SerenityPerAcolyte*float64(acolyteCount) +
		tuning.SerenityPerGenerator*float64(generatorCount)
	s.Serenity += rate * dt
}

// SpendSerenity consumes serenity for a gated purchase. Returns false
// without spending when the balance is short.
func (s *State) SpendSerenity(amount float64) bool {
	if amount <= 0 {
		return true
	}
	if s.Serenity < amount {
		return false
	}
	s.Serenity -= amount
	return true
}

// RecordClick credits curiosity for an orb click.
func (s *State) RecordClick() {
	s.Curiosity += tuning.CuriosityPerClick
}

// ToggleFocus flips the focus boost. Engaging requires a minimum
// balance; disengaging is always allowed. Returns the resulting active
// state.
func (s *State) ToggleFocus() bool {
	if s.FocusActive {
		s.FocusActive = false
	} else if s.Focus >= tuning.FocusActivationFloor {
		s.FocusActive = true
	}
	return s.FocusActive
}

// TickFocus advances the focus meter: regen toward the cap while
// inactive, drain while active with a forced shutoff at zero. The
// activation floor gates starting only, never continuing.
func (s *State) TickFocus(dt float64) {
	if s.FocusActive {
		s.Focus -= tuning.FocusDrainRate * dt
		if s.Focus <= 0 {
			s.Focus = 0
			s.FocusActive = false
		}
		return
	}
	s.Focus += tuning.FocusRegenRate * dt
	if s.Focus > tuning.FocusMax {
		s.Focus = tuning.FocusMax
	}
}

// FocusMult is the wisdom multiplier contributed to the pipeline: the
// boost value while active, otherwise neutral.
func (s *State) FocusMult() float64 {
	if s.FocusActive {
		return tuning.FocusMultiplier
	}
	return 1.0
}

// ResetRun clears the run-scoped resources. Serenity is permanent and
// survives.
func (s *State) ResetRun() {
	s.Curiosity = 0
	s.Focus = 0
	s.FocusActive = false
}
