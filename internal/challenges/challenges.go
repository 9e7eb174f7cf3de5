// Package challenges tracks voluntary constraint runs and the permanent
// bonuses they award.
package challenges

// ID identifies a challenge.
type ID string

const (
	Silence   ID = "silence"
	Blindfold ID = "blindfold"
	Austerity ID = "austerity"
	Solitude  ID = "solitude"
)

// Def is a static catalog entry. Duration is zero for goal-based
// challenges.
type Def struct {
	ID          ID
	Name        string
	Description string
	Reward      string
	Duration    float64
	Goal        uint32
}

// Catalog lists the four challenges.
var Catalog = []Def{
	{Silence, "Silence", "Own no generators for 10 minutes.", "+5% all wisdom production", 600, 0},
	{Blindfold, "Blindfold", "Do not click the orb for 5 minutes.", "+10% passive generation", 300, 0},
	{Austerity, "Austerity", "Endure double wisdom scaling for 15 minutes.", "+8% click wisdom", 900, 0},
	{Solitude, "Solitude", "Generate 5 truths with zero acolytes.", "+5% AFP earned per truth", 0, 5},
}

// Find returns the catalog entry for an id.
func Find(id ID) (Def, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Def{}, false
}

// AusterityScaling replaces the truth-threshold scaling while Austerity
// is active.
const AusterityScaling = 1.2

// Active is the in-flight challenge. A failed challenge stays attached,
// marked failed, until the player cancels it.
type Active struct {
	ID       ID
	Elapsed  float64
	Failed   bool
	Progress uint32
}

// State holds completed challenges (permanent) and the single active
// slot.
type State struct {
	Completed map[ID]bool
	Active    *Active
}

// NewState returns an empty challenge record.
func NewState() *State {
	return &State{Completed: make(map[ID]bool)}
}

func (s *State) HasCompleted(id ID) bool { return s.Completed[id] }
func (s *State) IsActive() bool          { return s.Active != nil }

// Start attaches a challenge. Rejected while another is attached, even
// a failed one, and for already-completed challenges.
func (s *State) Start(id ID) bool {
	if s.Active != nil || s.HasCompleted(id) {
		return false
	}
	if _, ok := Find(id); !ok {
		return false
	}
	s.Active = &Active{ID: id}
	return true
}

// Cancel detaches the active challenge with no reward.
func (s *State) Cancel() bool {
	if s.Active == nil {
		return false
	}
	s.Active = nil
	return true
}

// Observations are the facts the constraint checks read each tick.
// ClickedOrb must cover clicks since the previous tick.
type Observations struct {
	TotalGenerators int
	AcolyteCount    int
	ClickedOrb      bool
	TruthsThisTick  uint32
}

// Tick advances the active challenge: enforces constraints, accrues
// progress, and completes timed or goal challenges. Returns the id of a
// challenge completed this tick, if any. Completion is idempotent.
func (s *State) Tick(dt float64, obs Observations) (ID, bool) {
	a := s.Active
	if a == nil || a.Failed {
		s.checkFailure(obs)
		return "", false
	}
	a.Elapsed += dt
	s.checkFailure(obs)
	if a.Failed {
		return "", false
	}

	if a.ID == Solitude {
		a.Progress += obs.TruthsThisTick
	}

	d, _ := Find(a.ID)
	done := false
	if d.Duration > 0 {
		done = a.Elapsed >= d.Duration
	} else {
		done = a.Progress >= d.Goal
	}
	if !done {
		return "", false
	}
	id := a.ID
	s.Active = nil
	s.Completed[id] = true
	return id, true
}

func (s *State) checkFailure(obs Observations) {
	a := s.Active
	if a == nil || a.Failed {
		return
	}
	switch a.ID {
	case Silence:
		if obs.TotalGenerators > 0 {
			a.Failed = true
		}
	case Blindfold:
		if obs.ClickedOrb {
			a.Failed = true
		}
	case Solitude:
		if obs.AcolyteCount > 0 {
			a.Failed = true
		}
	}
}

// ScalingOverride returns the Austerity scaling replacement while it is
// active and unfailed.
func (s *State) ScalingOverride() (float64, bool) {
	if s.Active != nil && s.Active.ID == Austerity && !s.Active.Failed {
		return AusterityScaling, true
	}
	return 0, false
}

// PassiveMultiplier is the permanent passive bonus from completions.
func (s *State) PassiveMultiplier() float64 {
	mult := 1.0
	if s.HasCompleted(Silence) {
		mult += 0.05
	}
	if s.HasCompleted(Blindfold) {
		mult += 0.10
	}
	return mult
}

// ClickMultiplier is the permanent click bonus from completions.
func (s *State) ClickMultiplier() float64 {
	if s.HasCompleted(Austerity) {
		return 1.08
	}
	return 1.0
}

// AFPMultiplier scales focus-point rewards per truth.
func (s *State) AFPMultiplier() float64 {
	if s.HasCompleted(Solitude) {
		return 1.05
	}
	return 1.0
}

// ResetRun detaches any active challenge. Completions survive.
func (s *State) ResetRun() {
	s.Active = nil
}
