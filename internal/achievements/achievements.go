// Package achievements tracks permanent unlocks and their additive
// wisdom rewards.
package achievements

// ID identifies an achievement.
type ID string

const (
	FirstTruth        ID = "first_truth"
	TenTruths         ID = "ten_truths"
	FiftyTruths       ID = "fifty_truths"
	HundredTruths     ID = "hundred_truths"
	FiveHundredTruths ID = "five_hundred_truths"
	ThousandTruths    ID = "thousand_truths"

	HundredAFP  ID = "hundred_afp"
	ThousandAFP ID = "thousand_afp"
	HundredKAFP ID = "hundred_k_afp"
	MillionAFP  ID = "million_afp"

	FirstTranscendence ID = "first_transcendence"
	FiveTranscendences ID = "five_transcendences"
	TenTranscendences  ID = "ten_transcendences"

	FirstGenerator    ID = "first_generator"
	AllGeneratorTypes ID = "all_generator_types"
	FiftyCandles      ID = "fifty_candles"
	HundredGenerators ID = "hundred_generators"

	FirstAcolyte       ID = "first_acolyte"
	TenAcolytes        ID = "ten_acolytes"
	TwentyFiveAcolytes ID = "twenty_five_acolytes"

	SpeedPonderer ID = "speed_ponderer"
	DeepThinker   ID = "deep_thinker"
	TruthSeeker   ID = "truth_seeker"
)

// Def is a static catalog entry. Hidden achievements show a teaser
// description until unlocked.
type Def struct {
	ID          ID
	Name        string
	Description string
	Teaser      string
	Hidden      bool
	Reward      float64
}

// Catalog lists all achievements in display order.
var Catalog = []Def{
	{FirstTruth, "First Insight", "Generate your first truth.", "", false, 0.01},
	{TenTruths, "Apprentice Ponderer", "Generate 10 truths across all runs.", "", false, 0.02},
	{FiftyTruths, "Seasoned Thinker", "Generate 50 truths across all runs.", "", false, 0.03},
	{HundredTruths, "Centurion of Wisdom", "Generate 100 truths across all runs.", "", false, 0.05},
	{FiveHundredTruths, "Sage of the Tower", "Generate 500 truths across all runs.", "", false, 0.08},
	{ThousandTruths, "Grand Philosopher", "Generate 1,000 truths across all runs.", "", false, 0.12},
	{HundredAFP, "Arcane Dabbler", "Accumulate 100 AFP in a single run.", "", false, 0.01},
	{ThousandAFP, "Focus Adept", "Accumulate 1,000 AFP in a single run.", "", false, 0.02},
	{HundredKAFP, "Arcane Reservoir", "Accumulate 100,000 AFP in a single run.", "", false, 0.05},
	{MillionAFP, "Master of Focus", "Accumulate 1,000,000 AFP in a single run.", "", false, 0.10},
	{FirstTranscendence, "Beyond the Veil", "Transcend for the first time.", "", false, 0.05},
	{FiveTranscendences, "Cycle Walker", "Transcend 5 times.", "", false, 0.08},
	{TenTranscendences, "Eternal Return", "Transcend 10 times.", "", false, 0.12},
	{FirstGenerator, "Automated Wisdom", "Purchase your first generator.", "", false, 0.01},
	{AllGeneratorTypes, "Full Arsenal", "Own at least one of every generator type.", "", false, 0.10},
	{FiftyCandles, "Candle Hoarder", "Own 50 Enchanted Candles.", "", false, 0.03},
	{HundredGenerators, "Factory of Thought", "Own 100 generators total.", "", false, 0.05},
	{FirstAcolyte, "First Follower", "Summon your first acolyte.", "", false, 0.01},
	{TenAcolytes, "Small Gathering", "Have 10 acolytes at once.", "", false, 0.03},
	{TwentyFiveAcolytes, "Growing Order", "Have 25 acolytes at once.", "", false, 0.05},
	{SpeedPonderer, "Swift Awakening", "Generate a truth within 30 seconds of starting a run.", "Speed is its own reward. ???", true, 0.05},
	{DeepThinker, "Into the Deep", "Use Deep Focus 10 times in a single run.", "Go deeper. ???", true, 0.04},
	{TruthSeeker, "Collector of Oddities", "Generate 50 truths in a single run.", "One run to rule them all. ???", true, 0.06},
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

// Stats is the cross-system snapshot the unlock predicates read.
// Callers populate it each check; the tracker never reaches into other
// packages.
type Stats struct {
	FocusPoints         uint64
	TotalTranscendences uint32
	TotalGenerators     int
	CandleCount         int
	OwnsAllGenerators   bool
	AcolyteCount        int
}

// Tracker holds unlocked achievements (permanent) and the per-run
// counters the hidden predicates need.
type Tracker struct {
	Unlocked map[ID]bool

	LifetimeTruths uint32
	PeakAFP        uint64
	DeepFocusUses  uint32
	RunElapsed     float64
	RunTruths      uint32
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{Unlocked: make(map[ID]bool)}
}

func (t *Tracker) Has(id ID) bool { return t.Unlocked[id] }

func (t *Tracker) unlock(id ID, newly *[]ID) {
	if !t.Unlocked[id] {
		t.Unlocked[id] = true
		*newly = append(*newly, id)
	}
}

// WisdomMultiplier is 1 plus the sum of unlocked rewards.
func (t *Tracker) WisdomMultiplier() float64 {
	mult := 1.0
	for _, d := range Catalog {
		if t.Unlocked[d.ID] {
			mult += d.Reward
		}
	}
	return mult
}

// RecordTruths advances the lifetime and per-run truth counters.
func (t *Tracker) RecordTruths(n int) {
	if n <= 0 {
		return
	}
	t.LifetimeTruths += uint32(n)
	t.RunTruths += uint32(n)
}

// RecordDeepFocus counts a deep-focus activation.
func (t *Tracker) RecordDeepFocus() { t.DeepFocusUses++ }

// Advance moves the run clock and the peak-AFP watermark.
func (t *Tracker) Advance(dt float64, focusPoints uint64) {
	t.RunElapsed += dt
	if focusPoints > t.PeakAFP {
		t.PeakAFP = focusPoints
	}
}

// ResetRun zeroes the per-run counters. Unlocks and lifetime truths
// survive.
func (t *Tracker) ResetRun() {
	t.PeakAFP = 0
	t.DeepFocusUses = 0
	t.RunElapsed = 0
	t.RunTruths = 0
}

// Check evaluates every predicate against the supplied stats and
// returns the achievements newly unlocked this call. Re-checking an
// unlocked achievement is a no-op.
func (t *Tracker) Check(s Stats) []ID {
	var newly []ID

	thresholds := []struct {
		at uint32
		id ID
	}{
		{1, FirstTruth}, {10, TenTruths}, {50, FiftyTruths},
		{100, HundredTruths}, {500, FiveHundredTruths}, {1000, ThousandTruths},
	}
	for _, th := range thresholds {
		if t.LifetimeTruths >= th.at {
			t.unlock(th.id, &newly)
		}
	}

	afpThresholds := []struct {
		at uint64
		id ID
	}{
		{100, HundredAFP}, {1_000, ThousandAFP},
		{100_000, HundredKAFP}, {1_000_000, MillionAFP},
	}
	for _, th := range afpThresholds {
		if t.PeakAFP >= th.at {
			t.unlock(th.id, &newly)
		}
	}

	if s.TotalTranscendences >= 1 {
		t.unlock(FirstTranscendence, &newly)
	}
	if s.TotalTranscendences >= 5 {
		t.unlock(FiveTranscendences, &newly)
	}
	if s.TotalTranscendences >= 10 {
		t.unlock(TenTranscendences, &newly)
	}

	if s.TotalGenerators >= 1 {
		t.unlock(FirstGenerator, &newly)
	}
	if s.TotalGenerators >= 100 {
		t.unlock(HundredGenerators, &newly)
	}
	if s.OwnsAllGenerators {
		t.unlock(AllGeneratorTypes, &newly)
	}
	if s.CandleCount >= 50 {
		t.unlock(FiftyCandles, &newly)
	}

	if s.AcolyteCount >= 1 {
		t.unlock(FirstAcolyte, &newly)
	}
	if s.AcolyteCount >= 10 {
		t.unlock(TenAcolytes, &newly)
	}
	if s.AcolyteCount >= 25 {
		t.unlock(TwentyFiveAcolytes, &newly)
	}

	if t.RunTruths >= 1 && t.RunElapsed <= 30.0 {
		t.unlock(SpeedPonderer, &newly)
	}
	if t.DeepFocusUses >= 10 {
		t.unlock(DeepThinker, &newly)
	}
	if t.RunTruths >= 50 {
		t.unlock(TruthSeeker, &newly)
	}

	return newly
}
