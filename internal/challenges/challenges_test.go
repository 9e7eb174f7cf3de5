package challenges

import (
	"math"
	"testing"
)

func TestStartRules(t *testing.T) {
	s := NewState()
	if !s.Start(Silence) {
		t.Fatal("fresh start refused")
	}
	if s.Start(Blindfold) {
		t.Error("second start accepted while one is active")
	}

	// Fail the active challenge; the slot stays occupied until cancel.
	s.Tick(1, Observations{TotalGenerators: 1})
	if !s.Active.Failed {
		t.Fatal("owning a generator did not fail silence")
	}
	if s.Start(Blindfold) {
		t.Error("start accepted over a failed-but-attached challenge")
	}
	if !s.Cancel() {
		t.Fatal("cancel refused")
	}
	if s.Cancel() {
		t.Error("cancel succeeded with nothing attached")
	}

	s.Completed[Silence] = true
	if s.Start(Silence) {
		t.Error("completed challenge restarted")
	}
	if s.Start("impossible") {
		t.Error("unknown challenge started")
	}
}

func TestFailureIsSticky(t *testing.T) {
	s := NewState()
	s.Start(Blindfold)
	s.Tick(1, Observations{ClickedOrb: true})
	if !s.Active.Failed {
		t.Fatal("click did not fail blindfold")
	}

	// Waiting out the timer after failure must never complete it.
	for i := 0; i < 400; i++ {
		if id, done := s.Tick(1, Observations{}); done {
			t.Fatalf("failed challenge completed as %s", id)
		}
	}
	if s.HasCompleted(Blindfold) {
		t.Error("failed challenge recorded as completed")
	}
}

func TestTimedCompletion(t *testing.T) {
	s := NewState()
	s.Start(Blindfold)

	var completed ID
	for i := 0; i < 300; i++ {
		if id, done := s.Tick(1, Observations{}); done {
			completed = id
			break
		}
	}
	if completed != Blindfold {
		t.Fatalf("completed = %q, want blindfold after 300s", completed)
	}
	if s.IsActive() {
		t.Error("slot still occupied after completion")
	}
	if !s.HasCompleted(Blindfold) {
		t.Error("completion not recorded")
	}
}

func TestGoalCompletion(t *testing.T) {
	s := NewState()
	s.Start(Solitude)

	s.Tick(1, Observations{TruthsThisTick: 3})
	if id, done := s.Tick(1, Observations{TruthsThisTick: 2}); !done || id != Solitude {
		t.Fatalf("5 truths did not complete solitude: (%q, %v)", id, done)
	}

	// Summoning an acolyte mid-challenge fails it instead.
	s2 := NewState()
	s2.Start(Solitude)
	s2.Tick(1, Observations{TruthsThisTick: 4, AcolyteCount: 1})
	if !s2.Active.Failed {
		t.Error("acolyte did not fail solitude")
	}
}

func TestAusterityScalingOverride(t *testing.T) {
	s := NewState()
	if _, ok := s.ScalingOverride(); ok {
		t.Error("override present with nothing active")
	}

	s.Start(Austerity)
	if f, ok := s.ScalingOverride(); !ok || f != AusterityScaling {
		t.Errorf("override = (%v, %v), want (1.2, true)", f, ok)
	}

	// The harsher scaling lifts the moment the challenge fails or ends.
	s.Active.Failed = true
	if _, ok := s.ScalingOverride(); ok {
		t.Error("override survived failure")
	}
}

func TestCompletionBonuses(t *testing.T) {
	s := NewState()
	s.Completed[Silence] = true
	s.Completed[Blindfold] = true
	s.Completed[Austerity] = true
	s.Completed[Solitude] = true

	if got := s.PassiveMultiplier(); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("passive = %v, want 1.15", got)
	}
	if got := s.ClickMultiplier(); math.Abs(got-1.08) > 1e-9 {
		t.Errorf("click = %v, want 1.08", got)
	}
	if got := s.AFPMultiplier(); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("afp = %v, want 1.05", got)
	}
}

func TestResetRunDetachesActive(t *testing.T) {
	s := NewState()
	s.Completed[Silence] = true
	s.Start(Austerity)

	s.ResetRun()
	if s.IsActive() {
		t.Error("active challenge survived reset")
	}
	if !s.HasCompleted(Silence) {
		t.Error("completion lost on reset")
	}
}
