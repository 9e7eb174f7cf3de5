package transcend

// SchoolID identifies a run-scoped school of thought.
type SchoolID string

const (
	SchoolNone       SchoolID = ""
	SchoolStoicism   SchoolID = "stoicism"
	SchoolMysticism  SchoolID = "mysticism"
	SchoolEmpiricism SchoolID = "empiricism"
	SchoolNihilism   SchoolID = "nihilism"
)

// School is a static catalog entry.
type School struct {
	ID          SchoolID
	Name        string
	Description string
}

// Schools lists the four choices offered after a transcendence.
var Schools = []School{
	{SchoolStoicism, "Stoicism", "Endure and accumulate. +50% passive wisdom; truth thresholds grow gently."},
	{SchoolMysticism, "Mysticism", "Court the ineffable. Moments of Clarity come twice as often, linger longer, and burst brighter."},
	{SchoolEmpiricism, "Empiricism", "Measure everything. +75% click wisdom and +3 focus points per truth."},
	{SchoolNihilism, "Nihilism", "Nothing matters, so everything compounds. Passive wisdom starts halved but grows with every truth."},
}

// ValidSchool reports whether id names a real school.
func ValidSchool(id SchoolID) bool {
	for _, s := range Schools {
		if s.ID == id {
			return true
		}
	}
	return false
}

// RunSchool is the run-scoped school state. TruthsThisRun feeds the
// nihilism ramp and resets with the run.
type RunSchool struct {
	Chosen        SchoolID
	TruthsThisRun uint32
}

// Choose commits a school for the new run.
func (r *RunSchool) Choose(id SchoolID) bool {
	if !ValidSchool(id) {
		return false
	}
	r.Chosen = id
	return true
}

// RecordTruth advances the nihilism ramp.
func (r *RunSchool) RecordTruth() { r.TruthsThisRun++ }

// ResetRun clears the school and its truth counter.
func (r *RunSchool) ResetRun() {
	r.Chosen = SchoolNone
	r.TruthsThisRun = 0
}

// PassiveMultiplier is the school's contribution to passive wisdom.
func (r *RunSchool) PassiveMultiplier() float64 {
	switch r.Chosen {
	case SchoolStoicism:
		return 1.5
	case SchoolNihilism:
		return 0.5 + 0.05*float64(r.TruthsThisRun)
	default:
		return 1.0
	}
}

// ClickMultiplier is the school's contribution to click wisdom.
func (r *RunSchool) ClickMultiplier() float64 {
	if r.Chosen == SchoolEmpiricism {
		return 1.75
	}
	return 1.0
}

// BonusAFPPerTruth is the school's flat focus-point bonus per truth.
func (r *RunSchool) BonusAFPPerTruth() uint64 {
	if r.Chosen == SchoolEmpiricism {
		return 3
	}
	return 0
}

// ScalingOverride returns a replacement truth-threshold scaling factor,
// or false when the school leaves scaling alone.
func (r *RunSchool) ScalingOverride() (float64, bool) {
	if r.Chosen == SchoolStoicism {
		return 1.07, true
	}
	return 0, false
}

// MomentFrequencyMultiplier doubles moment spawns under mysticism.
func (r *RunSchool) MomentFrequencyMultiplier() float64 {
	if r.Chosen == SchoolMysticism {
		return 2.0
	}
	return 1.0
}

// MomentDurationMultiplier lengthens moment lifetimes and buffs under
// mysticism.
func (r *RunSchool) MomentDurationMultiplier() float64 {
	if r.Chosen == SchoolMysticism {
		return 1.5
	}
	return 1.0
}

// MomentBurstMultiplier amplifies clarity burst rewards under mysticism.
func (r *RunSchool) MomentBurstMultiplier() float64 {
	if r.Chosen == SchoolMysticism {
		return 2.0
	}
	return 1.0
}
