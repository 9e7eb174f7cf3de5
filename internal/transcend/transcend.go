// Package transcend is the prestige controller: lifetime insight,
// permanent enlightenment purchases, and the per-run school of thought
// chosen after each transcendence.
package transcend

import (
	"math"

	"github.com/talgya/arcanum/internal/tuning"
)

// EnlightenmentID identifies a one-time permanent purchase priced in
// insight.
type EnlightenmentID string

const (
	DeepRoots         EnlightenmentID = "deep_roots"
	EternalFlow       EnlightenmentID = "eternal_flow"
	HeadStart         EnlightenmentID = "head_start"
	CosmicResonance   EnlightenmentID = "cosmic_resonance"
	ArcaneInheritance EnlightenmentID = "arcane_inheritance"
	ClarityAffinity   EnlightenmentID = "clarity_affinity"
	Transcendent      EnlightenmentID = "transcendent"
	EfficientDesign   EnlightenmentID = "efficient_design"
)

// Enlightenment is a static catalog entry.
type Enlightenment struct {
	ID          EnlightenmentID
	Name        string
	Description string
	Cost        uint32
}

// Enlightenments lists the catalog in display order.
var Enlightenments = []Enlightenment{
	{DeepRoots, "Deep Roots", "Your pondering echoes across lifetimes. (+10% click wisdom)", 1},
	{EternalFlow, "Eternal Flow", "Passive wisdom flows more freely. (+25% passive generation)", 2},
	{HeadStart, "Head Start", "Begin each journey with arcane reserves. (Start with 50 AFP)", 3},
	{EfficientDesign, "Efficient Design", "Generators cost less to construct. (-10% generator costs)", 4},
	{CosmicResonance, "Cosmic Resonance", "The cosmos amplifies your meditation. (+50% passive generation)", 5},
	{ArcaneInheritance, "Arcane Inheritance", "Greater reserves carry over. (Start with 200 AFP)", 5},
	{ClarityAffinity, "Clarity Affinity", "Moments of Clarity find you more easily. (2x frequency)", 8},
	{Transcendent, "Transcendent Mind", "Your mind operates on a higher plane. (+100% all wisdom)", 15},
}

// FindEnlightenment returns the catalog entry for an id.
func FindEnlightenment(id EnlightenmentID) (Enlightenment, bool) {
	for _, e := range Enlightenments {
		if e.ID == id {
			return e, true
		}
	}
	return Enlightenment{}, false
}

// Phase is the position within the two-phase prestige transaction.
type Phase int

const (
	// PhasePlaying: normal play, no transcendence in flight.
	PhasePlaying Phase = iota
	// PhaseSchoolSelection: insight has been banked; the run reset is
	// pending until a school is committed.
	PhaseSchoolSelection
)

// State is the prestige record. Insight, transcendence count, and
// enlightenments are permanent; RunWisdom is run-scoped.
type State struct {
	Insight             uint32
	TotalTranscendences uint32
	Purchased           map[EnlightenmentID]bool

	// RunWisdom is the total wisdom converted into truths this run:
	// each truth adds its pre-transition threshold, independent of the
	// meter's own reset-per-truth rule.
	RunWisdom float64

	Phase Phase
}

// NewState returns an empty prestige record.
func NewState() *State {
	return &State{Purchased: make(map[EnlightenmentID]bool)}
}

func (s *State) Has(id EnlightenmentID) bool { return s.Purchased[id] }

// PendingInsight is the insight a transcendence would bank right now.
func (s *State) PendingInsight() uint32 {
	return uint32(math.Floor(math.Sqrt(s.RunWisdom / tuning.InsightDivisor)))
}

// AccumulateRunWisdom records a truth's pre-transition threshold.
func (s *State) AccumulateRunWisdom(preMax float64) {
	if preMax > 0 {
		s.RunWisdom += preMax
	}
}

// BuyEnlightenment spends insight on a one-time purchase. Already-owned
// and unaffordable attempts are silent no-ops.
func (s *State) BuyEnlightenment(id EnlightenmentID) bool {
	if s.Has(id) {
		return false
	}
	e, ok := FindEnlightenment(id)
	if !ok || s.Insight < e.Cost {
		return false
	}
	s.Insight -= e.Cost
	s.Purchased[id] = true
	return true
}

// Begin banks pending insight and enters school selection. The caller
// performs the actual run reset only once a school is committed.
// Returns the insight banked, or false when nothing is pending or a
// transcendence is already in flight.
func (s *State) Begin() (uint32, bool) {
	if s.Phase != PhasePlaying {
		return 0, false
	}
	gained := s.PendingInsight()
	if gained == 0 {
		return 0, false
	}
	s.Insight += gained
	s.TotalTranscendences++
	s.RunWisdom = 0
	s.Phase = PhaseSchoolSelection
	return gained, true
}

// Commit closes the school-selection phase. The caller resets run
// state before calling.
func (s *State) Commit() {
	s.Phase = PhasePlaying
}

// ClickMultiplier is the permanent click bonus from enlightenments.
// Same-category bonuses stack additively before entering the pipeline.
func (s *State) ClickMultiplier() float64 {
	mult := 1.0
	if s.Has(DeepRoots) {
		mult += 0.1
	}
	if s.Has(Transcendent) {
		mult += 1.0
	}
	return mult
}

// PassiveMultiplier is the permanent passive bonus from enlightenments.
func (s *State) PassiveMultiplier() float64 {
	mult := 1.0
	if s.Has(EternalFlow) {
		mult += 0.25
	}
	if s.Has(CosmicResonance) {
		mult += 0.5
	}
	if s.Has(Transcendent) {
		mult += 1.0
	}
	return mult
}

// StartingAFP is the focus-point balance each run begins with.
func (s *State) StartingAFP() uint64 {
	var afp uint64
	if s.Has(HeadStart) {
		afp += 50
	}
	if s.Has(ArcaneInheritance) {
		afp += 200
	}
	return afp
}

// GeneratorDiscount is the prestige-purchased cost discount.
func (s *State) GeneratorDiscount() float64 {
	if s.Has(EfficientDesign) {
		return 0.1
	}
	return 0
}

// MomentFrequencyMultiplier raises how often moments of clarity spawn.
func (s *State) MomentFrequencyMultiplier() float64 {
	if s.Has(ClarityAffinity) {
		return 2.0
	}
	return 1.0
}
