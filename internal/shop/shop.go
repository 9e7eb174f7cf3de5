// Package shop holds the one-time upgrade catalog, the equippable orb
// collection, and the purchase tracker whose aggregate bonuses feed the
// wisdom pipeline.
package shop

// ItemID identifies a one-time shop purchase.
type ItemID string

const (
	ArcaneBiscuit     ItemID = "arcane_biscuit"
	VoidTea           ItemID = "void_tea"
	CosmicPretzel     ItemID = "cosmic_pretzel"
	GlowingBerries    ItemID = "glowing_berries"
	FocusedMind       ItemID = "focused_mind"
	DeepContemplation ItemID = "deep_contemplation"
	ArcaneAmplifier   ItemID = "arcane_amplifier"
	CrystalResonance  ItemID = "crystal_resonance"
	GentleScaling     ItemID = "gentle_scaling"
	ObsidianOrb       ItemID = "obsidian_orb"
	MercuryOrb        ItemID = "mercury_orb"
	GalaxyOrb         ItemID = "galaxy_orb"
)

// OrbType is the equipped focus of the tower. Crystal is the base orb,
// always unlocked; the rest are shop purchases.
type OrbType string

const (
	Crystal  OrbType = "crystal"
	Obsidian OrbType = "obsidian"
	Mercury  OrbType = "mercury"
	Galaxy   OrbType = "galaxy"
)

// Category groups catalog items for the shop view.
type Category string

const (
	Snacks        Category = "snacks"
	Upgrades      Category = "upgrades"
	OrbCollection Category = "orbs"
)

// Item is a static catalog entry.
type Item struct {
	ID          ItemID
	Category    Category
	Name        string
	Description string
	Cost        uint64
}

// Catalog lists every one-time purchasable, in display order.
var Catalog = []Item{
	{ArcaneBiscuit, Snacks, "Arcane Biscuit", "Tastes like contemplation and oats. (+0.1 efficiency)", 20},
	{VoidTea, Snacks, "Void Tea", "Brewed from the absence of tea leaves. (+0.25 efficiency)", 50},
	{CosmicPretzel, Snacks, "Cosmic Pretzel", "Twisted by gravitational forces of pure thought. (+0.5 efficiency)", 100},
	{GlowingBerries, Snacks, "Glowing Berries", "Harvested from bushes that dream of being stars. (+1.0 efficiency)", 200},
	{FocusedMind, Upgrades, "Focused Mind", "Sharpen your mental lens. (+20% wisdom speed)", 30},
	{DeepContemplation, Upgrades, "Deep Contemplation", "Think thoughts about thoughts. (+50% wisdom speed)", 75},
	{ArcaneAmplifier, Upgrades, "Arcane Amplifier", "Focuses the arcane flow. (+5 AFP per truth)", 40},
	{CrystalResonance, Upgrades, "Crystal Resonance", "The orb hums in harmony. (+10 AFP per truth)", 80},
	{GentleScaling, Upgrades, "Gentle Scaling", "Softens the rising tide of wisdom. (Scaling 1.1x -> 1.07x)", 60},
	{ObsidianOrb, OrbCollection, "Obsidian Orb", "Forged in forgotten volcanoes. (+0.3 efficiency, +5 AFP/truth)", 150},
	{MercuryOrb, OrbCollection, "Mercury Orb", "Liquid metal in a sphere of pure intent. (+40% wisdom speed)", 300},
	{GalaxyOrb, OrbCollection, "Galaxy Orb", "Contains an entire galaxy. (Scaling -0.03)", 500},
}

// Find returns the catalog entry for an id.
func Find(id ItemID) (Item, bool) {
	for _, it := range Catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// OrbForItem maps orb-collection items to the orb they unlock.
func OrbForItem(id ItemID) (OrbType, bool) {
	switch id {
	case ObsidianOrb:
		return Obsidian, true
	case MercuryOrb:
		return Mercury, true
	case GalaxyOrb:
		return Galaxy, true
	}
	return "", false
}

// Tracker records owned one-time purchases plus the equipped orb, and
// the aggregate bonuses derived from them. Aggregates are always
// recomputed from scratch from the full purchased set — never updated
// incrementally — so purchase order can never skew them.
type Tracker struct {
	Purchased map[ItemID]bool
	Equipped  OrbType

	// Derived aggregates; read-only outside Recalculate.
	EfficiencyBonus  float64 // additive, enters pipeline as (1 + sum)
	WisdomSpeedBonus float64 // multiplicative, baseline 1.0
	AFPBonus         uint64  // flat per truth
	ScalingFactor    float64 // threshold growth, baseline 1.1
}

// NewTracker returns an empty tracker with the base crystal orb
// equipped and baseline aggregates.
func NewTracker() *Tracker {
	t := &Tracker{Purchased: make(map[ItemID]bool), Equipped: Crystal}
	t.Recalculate()
	return t
}

func (t *Tracker) Owns(id ItemID) bool { return t.Purchased[id] }

// Recalculate rebuilds every aggregate from the purchased set and the
// equipped orb. Must run after every purchase, equip, restore, and
// prestige reset.
func (t *Tracker) Recalculate() {
	t.EfficiencyBonus = 0
	t.WisdomSpeedBonus = 1.0
	t.AFPBonus = 0
	t.ScalingFactor = 1.1

	for id := range t.Purchased {
		switch id {
		case ArcaneBiscuit:
			t.EfficiencyBonus += 0.1
		case VoidTea:
			t.EfficiencyBonus += 0.25
		case CosmicPretzel:
			t.EfficiencyBonus += 0.5
		case GlowingBerries:
			t.EfficiencyBonus += 1.0
		case FocusedMind:
			t.WisdomSpeedBonus += 0.2
		case DeepContemplation:
			t.WisdomSpeedBonus += 0.5
		case ArcaneAmplifier:
			t.AFPBonus += 5
		case CrystalResonance:
			t.AFPBonus += 10
		case GentleScaling:
			t.ScalingFactor = 1.07
		}
	}

	// Equipped orb bonuses stack on top of the item aggregates.
	switch t.Equipped {
	case Obsidian:
		t.EfficiencyBonus += 0.3
		t.AFPBonus += 5
	case Mercury:
		t.WisdomSpeedBonus += 0.4
	case Galaxy:
		t.ScalingFactor -= 0.03
	}
}

// ResetRun clears purchases and reverts to the base orb. Prestige only.
func (t *Tracker) ResetRun() {
	t.Purchased = make(map[ItemID]bool)
	t.Equipped = Crystal
	t.Recalculate()
}
