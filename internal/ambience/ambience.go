// Package ambience models the tower's surroundings: the day/night
// cycle, the content layers that open with transcendence, and the
// aether flux that perturbs when rare events arrive.
package ambience

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/arcanum/internal/tuning"
	"github.com/talgya/arcanum/internal/wisdom"
)

// Layer is a content plane unlocked by lifetime transcendences.
type Layer int

const (
	Surface Layer = iota
	Astral
	Dream
	Void

	layerCount
)

// Layers lists every plane in unlock order.
func Layers() []Layer {
	out := make([]Layer, layerCount)
	for i := range out {
		out[i] = Layer(i)
	}
	return out
}

func (l Layer) Name() string {
	switch l {
	case Surface:
		return "The Surface"
	case Astral:
		return "The Astral Plane"
	case Dream:
		return "The Dream Realm"
	case Void:
		return "The Void"
	}
	return "Unknown"
}

func (l Layer) Description() string {
	switch l {
	case Surface:
		return "The waking world, where all pondering begins."
	case Astral:
		return "Starlight seeps into your meditations, strongest at night."
	case Dream:
		return "The sleeping tower dreams truths of its own."
	case Void:
		return "Beyond the last layer there is only listening."
	}
	return ""
}

// RequiredTranscendences is the unlock threshold for the plane.
func (l Layer) RequiredTranscendences() uint32 {
	switch l {
	case Astral:
		return 1
	case Dream:
		return 5
	case Void:
		return 20
	}
	return 0
}

// State is the full ambience record. The day/night clock and the flux
// field are cosmetic-deterministic; layers are permanent unlocks.
type State struct {
	// TimeOfDay is the fractional position in the cycle, [0, 1).
	TimeOfDay float64

	Unlocked [layerCount]bool

	// dreamTimer counts down to the next dream truth while night holds.
	dreamTimer float64
	dreamDealt int

	simTime float64
	flux    opensimplex.Noise
}

// New starts the cycle at late evening, matching a tower first entered
// by candlelight.
func New(seed int64) *State {
	s := &State{
		TimeOfDay:  0.8,
		dreamTimer: tuning.DreamTruthInterval,
		flux:       opensimplex.NewNormalized(seed),
	}
	s.Unlocked[Surface] = true
	return s
}

// Has reports whether a plane is open.
func (s *State) Has(l Layer) bool { return s.Unlocked[l] }

// Highest returns the deepest open plane.
func (s *State) Highest() Layer {
	for l := layerCount - 1; l > Surface; l-- {
		if s.Unlocked[l] {
			return l
		}
	}
	return Surface
}

// CheckUnlocks opens every plane the transcendence count has reached
// and returns the newly opened ones.
func (s *State) CheckUnlocks(transcendences uint32) []Layer {
	var newly []Layer
	for _, l := range Layers() {
		if !s.Unlocked[l] && transcendences >= l.RequiredTranscendences() {
			s.Unlocked[l] = true
			newly = append(newly, l)
		}
	}
	return newly
}

// NightFactor is 0 at day peak and 1 at night peak.
func (s *State) NightFactor() float64 {
	t := math.Sin(s.TimeOfDay*2*math.Pi)*0.5 + 0.5
	return 1.0 - t
}

// AstralTrickle is the flat passive wisdom rate the astral plane adds,
// night-scaled. Zero until the plane opens.
func (s *State) AstralTrickle() float64 {
	if !s.Has(Astral) {
		return 0
	}
	return tuning.AstralTrickleDay + s.NightFactor()*tuning.AstralTrickleNight
}

// DreamMultiplier is the dream plane's night bonus to passive wisdom.
func (s *State) DreamMultiplier() float64 {
	if !s.Has(Dream) {
		return 1.0
	}
	return 1.0 + s.NightFactor()*tuning.DreamPeakBonus
}

// FluxJitter perturbs event intervals around 1.0 by the flux amplitude.
// Deterministic in (seed, sim time).
func (s *State) FluxJitter() float64 {
	n := s.flux.Eval2(s.simTime*tuning.AetherFluxTimeScale, 0)
	return 1.0 + (n*2-1)*tuning.AetherFluxAmplitude
}

// Tick advances the cycle and, while deep night holds over the dream
// plane, emits periodic dream truths. Each carries the sentinel index
// and a small wisdom gift.
func (s *State) Tick(dt float64) (wisdom.Truth, float64, bool) {
	s.simTime += dt
	s.TimeOfDay = math.Mod(s.TimeOfDay+tuning.DayNightCycleSpeed*dt, 1.0)

	if !s.Has(Dream) || s.NightFactor() < tuning.DreamNightThreshold {
		s.dreamTimer = tuning.DreamTruthInterval
		return wisdom.Truth{}, 0, false
	}
	s.dreamTimer -= dt
	if s.dreamTimer > 0 {
		return wisdom.Truth{}, 0, false
	}
	s.dreamTimer = tuning.DreamTruthInterval
	t := wisdom.DreamTruth(s.dreamDealt)
	s.dreamDealt++
	return t, tuning.DreamTruthWisdom, true
}

// SimTime is the accumulated simulation time in seconds.
func (s *State) SimTime() float64 { return s.simTime }

// Restore reinstates persisted ambience fields.
func (s *State) Restore(timeOfDay float64, unlocked []bool, simTime float64) {
	if timeOfDay >= 0 && timeOfDay < 1 {
		s.TimeOfDay = timeOfDay
	}
	for i, u := range unlocked {
		if i < int(layerCount) && u {
			s.Unlocked[i] = true
		}
	}
	s.Unlocked[Surface] = true
	if simTime > 0 {
		s.simTime = simTime
	}
}
