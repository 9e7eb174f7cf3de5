package persistence

import (
	"time"

	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/tuning"
)

// OfflineGains reports what an absence earned. ElapsedSecs is the
// clamped window actually simulated.
type OfflineGains struct {
	WisdomGained float64
	TruthsEarned uint32
	AFPEarned    uint64
	ElapsedSecs  int64
}

// CalculateOfflineGains simulates the time between a snapshot's
// timestamp and now. The rate is a deliberate approximation: saved
// generator counts at static base production plus acolytes, with no
// synergy, milestone, or upgrade bonuses — offline math never depends
// on the live caches. Truths resolve against the saved threshold with
// the default scaling, never the player's override, capped at 1000.
func CalculateOfflineGains(d *SaveData, now time.Time) *OfflineGains {
	elapsed := float64(now.Unix() - d.Timestamp)
	if elapsed < tuning.OfflineMinSecs {
		return nil
	}
	if elapsed > tuning.OfflineMaxSecs {
		elapsed = tuning.OfflineMaxSecs
	}

	base := 0.0
	for i, n := range d.GeneratorsOwned {
		t := generators.Type(i)
		if t.Valid() && n > 0 {
			base += t.BaseProduction() * float64(n)
		}
	}
	base += float64(d.AcolyteCount) * tuning.AcolyteBaseRate
	if base <= 0 {
		return nil
	}

	totalWisdom := base * tuning.OfflineRate * elapsed

	current := d.WisdomCurrent
	maxWisdom := d.WisdomMax
	if maxWisdom <= 0 {
		maxWisdom = tuning.BaseMaxWisdom
	}
	remaining := totalWisdom
	var truths uint32
	for remaining > 0 {
		needed := maxWisdom - current
		if needed <= 0 || remaining < needed {
			current += remaining
			break
		}
		remaining -= needed
		current = 0
		truths++
		maxWisdom *= tuning.OfflineScaling
		if truths >= tuning.OfflineTruthCap {
			break
		}
	}

	return &OfflineGains{
		WisdomGained: current - d.WisdomCurrent,
		TruthsEarned: truths,
		AFPEarned:    uint64(truths) * tuning.BaseAFPPerTruth,
		ElapsedSecs:  int64(elapsed),
	}
}

// ApplyOfflineGains credits a report to a restored session, once. The
// live threshold is regrown by the player's actual scaling so the meter
// lands where online play would have left it.
func ApplyOfflineGains(g *OfflineGains, s *engine.Session) {
	if g == nil {
		return
	}
	s.Meter.Add(g.WisdomGained)
	scaling := s.ActiveScaling()
	for i := uint32(0); i < g.TruthsEarned; i++ {
		s.Meter.TruthsGenerated++
		s.TotalTruths++
		s.Meter.MaxWisdom *= scaling
	}
	s.Achieve.RecordTruths(int(g.TruthsEarned))
	s.FocusPoints += g.AFPEarned
}
