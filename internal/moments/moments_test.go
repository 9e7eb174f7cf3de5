package moments

import (
	"math"
	"math/rand"
	"testing"

	"github.com/talgya/arcanum/internal/tuning"
)

func newRNG() *rand.Rand { return rand.New(rand.NewSource(7)) }

func TestSpawnAfterTimer(t *testing.T) {
	m := NewMoments(newRNG())
	if m.SpawnIn < tuning.MomentFirstSpawnMin || m.SpawnIn > tuning.MomentFirstSpawnMax {
		t.Fatalf("first spawn delay %v outside [%v, %v]",
			m.SpawnIn, tuning.MomentFirstSpawnMin, tuning.MomentFirstSpawnMax)
	}

	mods := DefaultModifiers()
	m.Tick(m.SpawnIn+0.1, mods)
	if m.Pending == nil {
		t.Fatal("no moment after the spawn timer lapsed")
	}
	if m.Pending.Remaining != tuning.MomentLifetime {
		t.Errorf("lifetime = %v, want %v", m.Pending.Remaining, tuning.MomentLifetime)
	}
}

func TestUnclaimedMomentExpires(t *testing.T) {
	m := NewMoments(newRNG())
	mods := DefaultModifiers()
	m.Tick(m.SpawnIn+0.1, mods)

	m.Tick(tuning.MomentLifetime+1, mods)
	if m.Pending != nil {
		t.Fatal("unclaimed moment never expired")
	}
	if m.SpawnIn <= 0 {
		t.Error("spawn timer not rearmed after expiry")
	}
}

func TestClaimBurstFloorAndScale(t *testing.T) {
	m := NewMoments(newRNG())
	m.Pending = &Pending{Effect: WisdomBurst, Remaining: 10}

	// A tiny passive rate falls back to the floor lump.
	out, ok := m.Claim(0.01, 0, DefaultModifiers())
	if !ok {
		t.Fatal("claim refused")
	}
	if out.WisdomGain != tuning.MomentBurstFloor {
		t.Errorf("gain = %v, want floor %v", out.WisdomGain, tuning.MomentBurstFloor)
	}

	m.Pending = &Pending{Effect: WisdomBurst, Remaining: 10}
	mods := DefaultModifiers()
	mods.Burst = 2.0
	out, _ = m.Claim(3.0, 0, mods)
	if math.Abs(out.WisdomGain-60.0) > 1e-9 {
		t.Errorf("gain = %v, want 60 (rate 3 x factor 10 x burst 2)", out.WisdomGain)
	}
}

func TestClaimWindfall(t *testing.T) {
	m := NewMoments(newRNG())
	m.Pending = &Pending{Effect: AFPWindfall, Remaining: 10}
	out, _ := m.Claim(0, 1000, DefaultModifiers())
	if out.AFPGain != 200 {
		t.Errorf("windfall = %d, want 200 (1000/5)", out.AFPGain)
	}

	m.Pending = &Pending{Effect: AFPWindfall, Remaining: 10}
	out, _ = m.Claim(0, 10, DefaultModifiers())
	if out.AFPGain != tuning.MomentAFPFloor {
		t.Errorf("windfall = %d, want floor %d", out.AFPGain, tuning.MomentAFPFloor)
	}
}

func TestClaimInstallsBuffs(t *testing.T) {
	m := NewMoments(newRNG())
	mods := DefaultModifiers()
	mods.Duration = 1.5

	m.Pending = &Pending{Effect: WisdomSurge, Remaining: 10}
	m.Claim(0, 0, mods)
	if m.Buff == nil || m.Buff.Effect != WisdomSurge {
		t.Fatal("surge claim did not install a buff")
	}
	if math.Abs(m.Buff.Remaining-tuning.MomentBuffWisdomSecs*1.5) > 1e-9 {
		t.Errorf("buff duration = %v, want %v", m.Buff.Remaining, tuning.MomentBuffWisdomSecs*1.5)
	}
	if m.WisdomMultiplier() != tuning.MomentBuffWisdomMult {
		t.Errorf("surge multiplier = %v", m.WisdomMultiplier())
	}
	if m.ClickMultiplier() != 1.0 {
		t.Errorf("surge leaked into click multiplier: %v", m.ClickMultiplier())
	}

	// The buff lapses with time.
	m.Tick(m.Buff.Remaining+0.1, mods)
	if m.Buff != nil || m.WisdomMultiplier() != 1.0 {
		t.Error("buff survived its duration")
	}

	m.Pending = &Pending{Effect: ClickFrenzy, Remaining: 10}
	m.Claim(0, 0, DefaultModifiers())
	if m.ClickMultiplier() != tuning.MomentBuffClickMult {
		t.Errorf("frenzy click multiplier = %v", m.ClickMultiplier())
	}
	if m.WisdomMultiplier() != 1.0 {
		t.Errorf("frenzy leaked into wisdom multiplier: %v", m.WisdomMultiplier())
	}
}

func TestClaimWithNothingPending(t *testing.T) {
	m := NewMoments(newRNG())
	if _, ok := m.Claim(1, 1, DefaultModifiers()); ok {
		t.Error("claim succeeded with nothing pending")
	}
}

func TestResetRun(t *testing.T) {
	m := NewMoments(newRNG())
	m.Pending = &Pending{Effect: WisdomBurst, Remaining: 10}
	m.Buff = &Buff{Effect: WisdomSurge, Remaining: 10}

	m.ResetRun()
	if m.Pending != nil || m.Buff != nil {
		t.Error("reset left pending moment or buff")
	}
	if m.SpawnIn < tuning.MomentFirstSpawnMin || m.SpawnIn > tuning.MomentFirstSpawnMax {
		t.Errorf("reset spawn delay %v outside first-spawn range", m.SpawnIn)
	}
}

func TestShadowSpawnAndCap(t *testing.T) {
	s := NewShadows(newRNG())
	for i := 0; i < 200; i++ {
		s.Tick(60)
	}
	if s.Count != tuning.ShadowMax {
		t.Errorf("count = %d, want cap %d", s.Count, tuning.ShadowMax)
	}
}

func TestDrainFraction(t *testing.T) {
	s := NewShadows(newRNG())
	if s.DrainFraction() != 0 {
		t.Errorf("drain with no shadows = %v", s.DrainFraction())
	}
	s.Count = 3
	if math.Abs(s.DrainFraction()-0.30) > 1e-9 {
		t.Errorf("drain with 3 shadows = %v, want 0.30", s.DrainFraction())
	}
	s.Count = tuning.ShadowMax
	if s.DrainFraction() > tuning.ShadowDrainCap {
		t.Errorf("drain %v exceeds cap %v", s.DrainFraction(), tuning.ShadowDrainCap)
	}
}

func TestSiphonAndDispel(t *testing.T) {
	s := NewShadows(newRNG())
	if s.Siphon(100) != 0 {
		t.Error("siphon took wisdom with no shadows")
	}

	s.Count = 2
	taken := s.Siphon(100)
	if math.Abs(taken-20) > 1e-9 {
		t.Errorf("siphon = %v, want 20", taken)
	}
	if math.Abs(s.Stored-20) > 1e-9 {
		t.Errorf("stored = %v, want 20", s.Stored)
	}

	payout, ok := s.Dispel()
	if !ok {
		t.Fatal("dispel refused with shadows attached")
	}
	want := 20 * math.Pow(tuning.ShadowDispelMult, 2)
	if math.Abs(payout-want) > 1e-9 {
		t.Errorf("payout = %v, want %v", payout, want)
	}
	if s.Count != 0 || s.Stored != 0 {
		t.Errorf("dispel left count=%d stored=%v", s.Count, s.Stored)
	}

	if _, ok := s.Dispel(); ok {
		t.Error("dispel succeeded with no shadows")
	}
}
