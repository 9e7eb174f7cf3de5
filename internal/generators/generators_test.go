package generators

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNextCostGrowth(t *testing.T) {
	tests := []struct {
		tier     Type
		owned    int
		discount float64
		want     uint64
	}{
		{Candle, 0, 0, 50},
		{Candle, 1, 0, 58}, // ceil(50 * 1.15)
		{Candle, 2, 0, 67}, // ceil(50 * 1.3225)
		{Candle, 0, 0.1, 45},
		{CrystalBall, 0, 0, 500},
		{CosmicEye, 0, 0, 500_000_000},
	}
	for _, tc := range tests {
		if got := tc.tier.NextCost(tc.owned, tc.discount); got != tc.want {
			t.Errorf("%s NextCost(owned=%d, disc=%v) = %d, want %d",
				tc.tier.Name(), tc.owned, tc.discount, got, tc.want)
		}
	}
}

func TestNextCostFloorsAtOne(t *testing.T) {
	if got := Candle.NextCost(0, 1.0); got != 1 {
		t.Errorf("fully discounted cost = %d, want floor of 1", got)
	}
}

func TestMilestoneMultiplier(t *testing.T) {
	tests := []struct {
		owned int
		want  float64
	}{
		{0, 1.0}, {4, 1.0}, {5, 1.5}, {9, 1.5}, {10, 2.0},
		{24, 2.0}, {25, 3.0}, {49, 3.0}, {50, 5.0}, {500, 5.0},
	}
	for _, tc := range tests {
		if got := MilestoneMultiplier(tc.owned); !approx(got, tc.want) {
			t.Errorf("MilestoneMultiplier(%d) = %v, want %v", tc.owned, got, tc.want)
		}
	}
}

func TestMilestoneIsMonotonic(t *testing.T) {
	prev := 0.0
	for owned := 0; owned <= 60; owned++ {
		got := MilestoneMultiplier(owned)
		if got < prev {
			t.Fatalf("multiplier decreased at owned=%d: %v -> %v", owned, prev, got)
		}
		prev = got
	}
}

func TestAdjacentSynergyIsReciprocal(t *testing.T) {
	var st State
	var sy = NewSynergy()

	// 3 candles boost the crystal ball and vice versa.
	st.Owned[Candle] = 3
	st.Owned[CrystalBall] = 2
	sy.Recalculate(&st)

	if got := sy.SynergyMult[CrystalBall]; !approx(got, 1.0+0.02*3) {
		t.Errorf("crystal ball synergy = %v, want 1.06", got)
	}
	if got := sy.SynergyMult[Candle]; !approx(got, 1.0+0.02*2) {
		t.Errorf("candle synergy = %v, want 1.04", got)
	}
}

func TestSkipSynergyIsOneWay(t *testing.T) {
	var st State
	sy := NewSynergy()

	st.Owned[Candle] = 10
	sy.Recalculate(&st)
	// Candle -> AncientTome skip link: +1%/unit on top of nothing else.
	if got := sy.SynergyMult[AncientTome]; !approx(got, 1.0+0.01*10) {
		t.Errorf("tome synergy from candles = %v, want 1.10", got)
	}

	// The reverse direction must not exist.
	st = State{}
	st.Owned[AncientTome] = 10
	sy.Recalculate(&st)
	// Only the adjacent HerbGarden link points at Candle; tomes are two
	// tiers away.
	if got := sy.SynergyMult[Candle]; !approx(got, 1.0) {
		t.Errorf("candle synergy from tomes = %v, want 1.0 (skip links are one-way)", got)
	}
}

func TestTotalProduction(t *testing.T) {
	var st State
	sy := NewSynergy()

	st.Owned[Candle] = 5 // milestone 1.5x
	sy.Recalculate(&st)

	// 5 candles at 0.1 each, milestone 1.5, no synergy sources.
	want := 0.1 * 5 * 1.5
	if got := sy.TotalProduction(&st); !approx(got, want) {
		t.Errorf("total production = %v, want %v", got, want)
	}
}

func TestRecalculateResetsStaleState(t *testing.T) {
	var st State
	sy := NewSynergy()

	st.Owned[Candle] = 10
	sy.Recalculate(&st)
	st.Owned[Candle] = 0
	sy.Recalculate(&st)

	for _, tier := range All() {
		if !approx(sy.SynergyMult[tier], 1.0) || !approx(sy.MilestoneMult[tier], 1.0) {
			t.Fatalf("%s kept stale multipliers after recalculate", tier.Name())
		}
	}
}

func TestUnlockThresholdsAscend(t *testing.T) {
	prev := uint32(0)
	for _, tier := range All() {
		th := tier.UnlockThreshold()
		if th < prev {
			t.Fatalf("%s threshold %d below previous %d", tier.Name(), th, prev)
		}
		prev = th
	}
}

func TestOwnsAll(t *testing.T) {
	var st State
	if st.OwnsAll() {
		t.Fatal("empty state reports OwnsAll")
	}
	for _, tier := range All() {
		st.Add(tier)
	}
	if !st.OwnsAll() {
		t.Fatal("full state does not report OwnsAll")
	}
}
