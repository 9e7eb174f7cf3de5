// Package engine provides the session aggregate and the tick loop that
// drives it.
package engine

import (
	"log/slog"
	"time"

	"github.com/talgya/arcanum/internal/tuning"
)

// Engine drives a session forward in fixed simulation steps.
type Engine struct {
	Session  *Session
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Simulation seconds advanced per step
	Running  bool

	// Callbacks populated during setup.
	OnTick     func(s *Session) // After every step
	OnAutosave func(s *Session) // Every autosave interval

	sinceAutosave float64
}

// NewEngine wraps a session with default loop settings.
func NewEngine(s *Session) *Engine {
	return &Engine{
		Session:  s,
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the loop. Blocks until Stop is called. Each step advances
// the session by Interval of simulation time; Speed only compresses
// wall-clock time between steps.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("engine started", "interval", e.Interval, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			// Paused. Sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.Step()

		// Sleep for the remainder of the step, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("engine stopped")
}

// Stop halts the loop after the current step.
func (e *Engine) Stop() {
	e.Running = false
}

// Step advances the session by one interval and fires the callbacks.
func (e *Engine) Step() {
	dt := e.Interval.Seconds()
	e.Session.Tick(dt)

	if e.OnTick != nil {
		e.OnTick(e.Session)
	}

	e.sinceAutosave += dt
	if e.sinceAutosave >= tuning.AutosaveInterval.Seconds() {
		e.sinceAutosave = 0
		if e.OnAutosave != nil {
			e.OnAutosave(e.Session)
		}
	}
}
