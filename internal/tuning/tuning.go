// Package tuning collects every numeric constant of the economy in one
// place. Systems never hard-code rates or thresholds — if a number shapes
// progression, it lives here.
package tuning

import "time"

// Wisdom meter.
const (
	// BaseMaxWisdom is the truth threshold at the start of a run.
	BaseMaxWisdom = 10.0

	// DefaultScaling grows the threshold after each truth. Shop upgrades,
	// schools, and challenges may override it.
	DefaultScaling = 1.1

	// BaseClickWisdom is the wisdom granted per orb click before bonuses.
	BaseClickWisdom = 1.0

	// TruthLoopCap bounds repeated threshold crossings in a single
	// resolution. Progress beyond the cap is dropped and logged.
	TruthLoopCap = 1000
)

// Truth rewards.
const (
	// BaseAFPPerTruth is the focus-point reward per truth before bonuses.
	BaseAFPPerTruth = 10
)

// Generators.
const (
	// GeneratorCostGrowth is the geometric cost ratio per owned unit,
	// shared by every tier.
	GeneratorCostGrowth = 1.15

	// SynergyAdjacentBonus is the reciprocal per-unit bonus between
	// adjacent tiers.
	SynergyAdjacentBonus = 0.02

	// SynergySkipBonus is the one-way per-unit bonus across skip-tier
	// links.
	SynergySkipBonus = 0.01
)

// MilestoneBreakpoints maps owned-count thresholds to production
// multipliers. Scanned in ascending order; the highest met breakpoint
// applies.
var MilestoneBreakpoints = []struct {
	Owned int
	Mult  float64
}{
	{5, 1.5},
	{10, 2.0},
	{25, 3.0},
	{50, 5.0},
}

// Acolytes.
const (
	AcolyteBaseRate   = 0.2
	AcolyteBaseCost   = 20
	AcolyteCostGrowth = 1.15
)

// Secondary resources.
const (
	SerenityBaseRate      = 0.01
	SerenityPerAcolyte    = 0.005
	SerenityPerGenerator  = 0.001
	FocusMax              = 100.0
	FocusRegenRate        = 0.1
	FocusDrainRate        = 2.0
	FocusMultiplier       = 1.5
	FocusActivationFloor  = 10.0
	CuriosityPerClick     = 1.0
)

// Deep focus.
const (
	DeepFocusDuration   = 10.0
	DeepFocusCooldown   = 60.0
	DeepFocusMultiplier = 3.0
)

// Transcendence.
const (
	// InsightDivisor: pending insight = floor(sqrt(runWisdom / divisor)).
	InsightDivisor = 1000.0
)

// Moments of clarity.
const (
	MomentFirstSpawnMin   = 180.0
	MomentFirstSpawnMax   = 420.0
	MomentSpawnMin        = 300.0
	MomentSpawnMax        = 900.0
	MomentLifetime        = 30.0
	MomentBuffWisdomMult  = 2.0
	MomentBuffWisdomSecs  = 30.0
	MomentBuffClickMult   = 3.0
	MomentBuffClickSecs   = 20.0
	MomentBurstRateFactor = 10.0
	MomentBurstFloor      = 5.0
	MomentAFPFraction     = 5 // windfall = focusPoints / fraction
	MomentAFPFloor        = 15
)

// Shadow thoughts.
const (
	ShadowFirstSpawnMin  = 120.0
	ShadowFirstSpawnMax  = 300.0
	ShadowSpawnMin       = 90.0
	ShadowSpawnMax       = 240.0
	ShadowMax            = 5
	ShadowDrainPerShadow = 0.10
	ShadowDrainCap       = 0.95
	ShadowDispelMult     = 1.1
)

// Ambience.
const (
	// One full day/night cycle every four minutes. Deep night (factor
	// >= DreamNightThreshold) then lasts about 105s, room for two dream
	// truths per night.
	DayNightCycleSpeed  = 1.0 / 240.0
	AstralTrickleDay    = 0.05
	AstralTrickleNight  = 0.45 // added on top of day rate at peak night
	DreamNightThreshold = 0.6
	DreamPeakBonus      = 0.5 // +50% passive at peak night
	DreamTruthInterval  = 45.0
	DreamTruthWisdom    = 10.0
	AetherFluxAmplitude = 0.2
	AetherFluxTimeScale = 1.0 / 600.0
)

// Offline simulation.
const (
	OfflineMinSecs   = 60.0
	OfflineMaxSecs   = 12 * 60 * 60.0
	OfflineRate      = 0.5
	OfflineTruthCap  = 1000
	OfflineScaling   = 1.1 // always the default, never the live override
)

// Persistence.
const (
	AutosaveInterval = 30 * time.Second
	SaveVersion      = 1
)
