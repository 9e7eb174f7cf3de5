package transcend

import (
	"math"
	"testing"
)

func TestPendingInsight(t *testing.T) {
	tests := []struct {
		runWisdom float64
		want      uint32
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{3999, 1},
		{4000, 2},
		{9000, 3},
		{1_000_000, 31},
	}
	for _, tc := range tests {
		s := NewState()
		s.RunWisdom = tc.runWisdom
		if got := s.PendingInsight(); got != tc.want {
			t.Errorf("PendingInsight(%v) = %d, want %d", tc.runWisdom, got, tc.want)
		}
	}
}

func TestAccumulateRunWisdomIgnoresNonPositive(t *testing.T) {
	s := NewState()
	s.AccumulateRunWisdom(10)
	s.AccumulateRunWisdom(0)
	s.AccumulateRunWisdom(-5)
	s.AccumulateRunWisdom(11)
	if s.RunWisdom != 21 {
		t.Errorf("RunWisdom = %v, want 21", s.RunWisdom)
	}
}

func TestBeginBanksInsightAndEntersSelection(t *testing.T) {
	s := NewState()
	s.RunWisdom = 9000

	gained, ok := s.Begin()
	if !ok || gained != 3 {
		t.Fatalf("Begin() = (%d, %v), want (3, true)", gained, ok)
	}
	if s.Insight != 3 || s.TotalTranscendences != 1 {
		t.Errorf("insight=%d transcendences=%d after begin", s.Insight, s.TotalTranscendences)
	}
	if s.RunWisdom != 0 {
		t.Errorf("RunWisdom = %v, want 0 after banking", s.RunWisdom)
	}
	if s.Phase != PhaseSchoolSelection {
		t.Errorf("Phase = %v, want school selection", s.Phase)
	}

	// A second begin while selection is pending must refuse.
	if _, ok := s.Begin(); ok {
		t.Error("Begin() succeeded mid-selection")
	}

	s.Commit()
	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v after commit, want playing", s.Phase)
	}
}

func TestBeginRefusesWithNothingPending(t *testing.T) {
	s := NewState()
	s.RunWisdom = 999
	if gained, ok := s.Begin(); ok || gained != 0 {
		t.Errorf("Begin() = (%d, %v) below threshold, want refusal", gained, ok)
	}
	if s.TotalTranscendences != 0 || s.Phase != PhasePlaying {
		t.Errorf("refused begin mutated state: %+v", s)
	}
}

func TestBuyEnlightenment(t *testing.T) {
	s := NewState()
	s.Insight = 3

	if s.BuyEnlightenment(HeadStart) != true {
		t.Fatal("affordable purchase refused")
	}
	if s.Insight != 0 || !s.Has(HeadStart) {
		t.Errorf("insight=%d has=%v after purchase", s.Insight, s.Has(HeadStart))
	}
	if s.BuyEnlightenment(HeadStart) {
		t.Error("repurchase of owned enlightenment succeeded")
	}
	if s.BuyEnlightenment(DeepRoots) {
		t.Error("unaffordable purchase succeeded")
	}
	if s.BuyEnlightenment("nonsense") {
		t.Error("unknown id purchase succeeded")
	}
}

func TestEnlightenmentMultipliersStackAdditively(t *testing.T) {
	s := NewState()
	s.Purchased[DeepRoots] = true
	s.Purchased[EternalFlow] = true
	s.Purchased[CosmicResonance] = true
	s.Purchased[Transcendent] = true

	if got := s.ClickMultiplier(); math.Abs(got-2.1) > 1e-9 {
		t.Errorf("ClickMultiplier = %v, want 2.1 (1 + 0.1 + 1.0)", got)
	}
	if got := s.PassiveMultiplier(); math.Abs(got-2.75) > 1e-9 {
		t.Errorf("PassiveMultiplier = %v, want 2.75 (1 + 0.25 + 0.5 + 1.0)", got)
	}
}

func TestStartingAFPStacks(t *testing.T) {
	s := NewState()
	if s.StartingAFP() != 0 {
		t.Errorf("bare StartingAFP = %d", s.StartingAFP())
	}
	s.Purchased[HeadStart] = true
	s.Purchased[ArcaneInheritance] = true
	if s.StartingAFP() != 250 {
		t.Errorf("StartingAFP = %d, want 250", s.StartingAFP())
	}
}

func TestSchoolModifiers(t *testing.T) {
	var r RunSchool

	if !r.Choose(SchoolNihilism) {
		t.Fatal("valid school refused")
	}
	if r.Choose("cubism") {
		t.Error("invalid school accepted")
	}

	// Nihilism starts halved and ramps per truth.
	if got := r.PassiveMultiplier(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("nihilism base passive = %v, want 0.5", got)
	}
	for i := 0; i < 20; i++ {
		r.RecordTruth()
	}
	if got := r.PassiveMultiplier(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("nihilism passive after 20 truths = %v, want 1.5", got)
	}

	r.ResetRun()
	if r.Chosen != SchoolNone || r.TruthsThisRun != 0 {
		t.Errorf("ResetRun left %+v", r)
	}

	r.Choose(SchoolStoicism)
	if got := r.PassiveMultiplier(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("stoicism passive = %v, want 1.5", got)
	}
	if f, ok := r.ScalingOverride(); !ok || f != 1.07 {
		t.Errorf("stoicism scaling override = (%v, %v), want (1.07, true)", f, ok)
	}

	r.Choose(SchoolEmpiricism)
	if _, ok := r.ScalingOverride(); ok {
		t.Error("empiricism should not override scaling")
	}
	if got := r.ClickMultiplier(); math.Abs(got-1.75) > 1e-9 {
		t.Errorf("empiricism click = %v, want 1.75", got)
	}
	if r.BonusAFPPerTruth() != 3 {
		t.Errorf("empiricism afp/truth = %d, want 3", r.BonusAFPPerTruth())
	}

	r.Choose(SchoolMysticism)
	if r.MomentFrequencyMultiplier() != 2.0 || r.MomentDurationMultiplier() != 1.5 || r.MomentBurstMultiplier() != 2.0 {
		t.Errorf("mysticism moment modifiers = %v/%v/%v",
			r.MomentFrequencyMultiplier(), r.MomentDurationMultiplier(), r.MomentBurstMultiplier())
	}
}
