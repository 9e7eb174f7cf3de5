package engine

import (
	"testing"
	"time"

	"github.com/talgya/arcanum/internal/tuning"
)

func TestStepAdvancesByInterval(t *testing.T) {
	s := newTestSession()
	e := NewEngine(s)
	e.Interval = 5 * time.Second

	var ticks int
	e.OnTick = func(*Session) { ticks++ }

	e.Step()
	e.Step()
	if ticks != 2 {
		t.Errorf("OnTick fired %d times", ticks)
	}
	if s.Achieve.RunElapsed != 10 {
		t.Errorf("run clock = %v, want 10s of simulation time", s.Achieve.RunElapsed)
	}
}

func TestAutosaveCadence(t *testing.T) {
	e := NewEngine(newTestSession())
	e.Interval = 10 * time.Second

	var saves int
	e.OnAutosave = func(*Session) { saves++ }

	steps := int(tuning.AutosaveInterval.Seconds()/e.Interval.Seconds()) * 3
	for i := 0; i < steps; i++ {
		e.Step()
	}
	if saves != 3 {
		t.Errorf("autosaved %d times over 3 intervals", saves)
	}
}

func TestStopEndsRun(t *testing.T) {
	e := NewEngine(newTestSession())
	e.Interval = time.Millisecond
	e.Speed = 1000

	done := make(chan struct{})
	e.OnTick = func(*Session) { e.Stop() }
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if e.Running {
		t.Error("Running still set")
	}
}
