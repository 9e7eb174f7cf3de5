package autoplay

import (
	"testing"

	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/transcend"
)

func TestCycleBuysWhenFunded(t *testing.T) {
	s := engine.NewSession(1)
	p := NewPlayer(s)

	s.FocusPoints = 100
	p.Cycle()
	if s.Generators.Total() != 1 {
		t.Errorf("generators = %d, want the first candle bought", s.Generators.Total())
	}
	if s.Resources.Curiosity == 0 {
		t.Error("cycle did not click the orb")
	}
}

func TestCycleIsSafeWhenBroke(t *testing.T) {
	s := engine.NewSession(1)
	p := NewPlayer(s)

	for i := 0; i < 10; i++ {
		p.Cycle()
	}
	if s.Generators.Total() != 0 || s.Acolytes.Count != 0 {
		t.Errorf("broke player bought things: gens=%d acolytes=%d",
			s.Generators.Total(), s.Acolytes.Count)
	}
}

func TestCycleCommitsPendingSchool(t *testing.T) {
	s := engine.NewSession(1)
	p := NewPlayer(s)

	s.Prestige.RunWisdom = 1_000_000
	if _, ok := s.Transcend(); !ok {
		t.Fatal("transcend setup failed")
	}

	p.Cycle()
	if s.Prestige.Phase != transcend.PhasePlaying {
		t.Error("pending school selection not committed")
	}
	if s.School.Chosen == transcend.SchoolNone {
		t.Error("no school chosen")
	}

	// The rotation walks the catalog so each run differs.
	first := s.School.Chosen
	s.Prestige.RunWisdom = 1_000_000
	s.Transcend()
	p.Cycle()
	if s.School.Chosen == first {
		t.Errorf("rotation repeated %v", first)
	}
}

func TestStartsSolitudeWhenAcolyteFree(t *testing.T) {
	s := engine.NewSession(1)
	p := NewPlayer(s)

	p.Cycle()
	if a := s.Challenges.Active; a == nil || a.ID != challenges.Solitude {
		t.Errorf("active challenge = %+v, want solitude", s.Challenges.Active)
	}

	s2 := engine.NewSession(1)
	s2.Acolytes.Count = 1
	NewPlayer(s2).Cycle()
	if s2.Challenges.IsActive() {
		t.Error("started solitude with acolytes present")
	}
}
