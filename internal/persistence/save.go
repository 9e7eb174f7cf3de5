// Package persistence provides the JSON save snapshot, offline-progress
// simulation, and the SQLite chronicle.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/talgya/arcanum/internal/achievements"
	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/shop"
	"github.com/talgya/arcanum/internal/transcend"
	"github.com/talgya/arcanum/internal/tuning"
)

const saveFileName = "arcanum_save.json"

// SaveData is the full versioned state snapshot. Every live field that
// survives a restart appears here; fields absent from an older file
// default to their zero value on load.
type SaveData struct {
	Version   uint32 `json:"version"`
	Timestamp int64  `json:"timestamp"`

	WisdomCurrent   float64 `json:"wisdom_current"`
	WisdomMax       float64 `json:"wisdom_max"`
	TruthsGenerated uint32  `json:"truths_generated"`

	FocusPoints uint64 `json:"focus_points"`
	TotalTruths uint32 `json:"total_truths"`

	AcolyteCount int `json:"acolyte_count"`

	GeneratorsOwned []int `json:"generators_owned"`

	PurchasedItems []shop.ItemID `json:"purchased_items"`
	EquippedOrb    shop.OrbType  `json:"equipped_orb"`

	Insight                 uint32                    `json:"insight"`
	TotalTranscendences     uint32                    `json:"total_transcendences"`
	PurchasedEnlightenments []transcend.EnlightenmentID `json:"purchased_enlightenments"`
	RunWisdomAccumulated    float64                   `json:"run_wisdom_accumulated"`

	School          transcend.SchoolID `json:"school"`
	SchoolRunTruths uint32             `json:"school_run_truths"`

	UnlockedAchievements []achievements.ID `json:"unlocked_achievements"`
	LifetimeTruths       uint32            `json:"lifetime_truths"`
	PeakAFP              uint64            `json:"achievement_peak_afp"`
	DeepFocusUses        uint32            `json:"achievement_deep_focus_uses"`
	RunElapsed           float64           `json:"achievement_run_elapsed"`
	RunTruths            uint32            `json:"achievement_run_truths"`

	ShadowCount        int     `json:"shadow_count"`
	ShadowStoredWisdom float64 `json:"shadow_stored_wisdom"`

	CompletedChallenges []challenges.ID `json:"completed_challenges"`

	Serenity  float64 `json:"serenity"`
	Curiosity float64 `json:"curiosity"`
	Focus     float64 `json:"focus"`

	CodexDiscovered []int `json:"codex_discovered"`

	TimeOfDay      float64 `json:"time_of_day"`
	UnlockedLayers []bool  `json:"unlocked_layers"`
	SimTime        float64 `json:"sim_time"`
}

// Capture snapshots a session.
func Capture(s *engine.Session) *SaveData {
	owned := make([]int, generators.TierCount)
	for _, t := range generators.All() {
		owned[t] = s.Generators.Count(t)
	}

	items := make([]shop.ItemID, 0, len(s.Shop.Purchased))
	for id := range s.Shop.Purchased {
		items = append(items, id)
	}
	enl := make([]transcend.EnlightenmentID, 0, len(s.Prestige.Purchased))
	for id := range s.Prestige.Purchased {
		enl = append(enl, id)
	}
	ach := make([]achievements.ID, 0, len(s.Achieve.Unlocked))
	for id := range s.Achieve.Unlocked {
		ach = append(ach, id)
	}
	comp := make([]challenges.ID, 0, len(s.Challenges.Completed))
	for id := range s.Challenges.Completed {
		comp = append(comp, id)
	}

	layers := make([]bool, 0, 4)
	for _, l := range []int{0, 1, 2, 3} {
		layers = append(layers, s.Ambience.Unlocked[l])
	}

	return &SaveData{
		Version:   tuning.SaveVersion,
		Timestamp: time.Now().Unix(),

		WisdomCurrent:   s.Meter.Current,
		WisdomMax:       s.Meter.MaxWisdom,
		TruthsGenerated: s.Meter.TruthsGenerated,

		FocusPoints: s.FocusPoints,
		TotalTruths: s.TotalTruths,

		AcolyteCount:    s.Acolytes.Count,
		GeneratorsOwned: owned,

		PurchasedItems: items,
		EquippedOrb:    s.Shop.Equipped,

		Insight:                 s.Prestige.Insight,
		TotalTranscendences:     s.Prestige.TotalTranscendences,
		PurchasedEnlightenments: enl,
		RunWisdomAccumulated:    s.Prestige.RunWisdom,

		School:          s.School.Chosen,
		SchoolRunTruths: s.School.TruthsThisRun,

		UnlockedAchievements: ach,
		LifetimeTruths:       s.Achieve.LifetimeTruths,
		PeakAFP:              s.Achieve.PeakAFP,
		DeepFocusUses:        s.Achieve.DeepFocusUses,
		RunElapsed:           s.Achieve.RunElapsed,
		RunTruths:            s.Achieve.RunTruths,

		ShadowCount:        s.Shadows.Count,
		ShadowStoredWisdom: s.Shadows.Stored,

		CompletedChallenges: comp,

		Serenity:  s.Resources.Serenity,
		Curiosity: s.Resources.Curiosity,
		Focus:     s.Resources.Focus,

		CodexDiscovered: s.Codex.Indices(),

		TimeOfDay:      s.Ambience.TimeOfDay,
		UnlockedLayers: layers,
		SimTime:        s.Ambience.SimTime(),
	}
}

// Restore writes a snapshot into a session and forces the derived
// caches (synergy, purchase aggregates) to recompute: persisted derived
// values are never trusted. An active challenge is not persisted; a
// restore always comes back challenge-idle.
func Restore(d *SaveData, s *engine.Session) {
	s.Meter.Current = d.WisdomCurrent
	if d.WisdomMax > 0 {
		s.Meter.MaxWisdom = d.WisdomMax
	}
	s.Meter.TruthsGenerated = d.TruthsGenerated

	s.FocusPoints = d.FocusPoints
	s.TotalTruths = d.TotalTruths

	s.Acolytes.Count = d.AcolyteCount

	s.Generators.Reset()
	for i, n := range d.GeneratorsOwned {
		t := generators.Type(i)
		if t.Valid() {
			for j := 0; j < n; j++ {
				s.Generators.Add(t)
			}
		}
	}

	s.Shop.Purchased = make(map[shop.ItemID]bool, len(d.PurchasedItems))
	for _, id := range d.PurchasedItems {
		if _, ok := shop.Find(id); ok {
			s.Shop.Purchased[id] = true
		}
	}
	s.Shop.Equipped = shop.Crystal
	if d.EquippedOrb != "" {
		s.Shop.Equipped = d.EquippedOrb
	}

	s.Prestige.Insight = d.Insight
	s.Prestige.TotalTranscendences = d.TotalTranscendences
	s.Prestige.Purchased = make(map[transcend.EnlightenmentID]bool, len(d.PurchasedEnlightenments))
	for _, id := range d.PurchasedEnlightenments {
		if _, ok := transcend.FindEnlightenment(id); ok {
			s.Prestige.Purchased[id] = true
		}
	}
	s.Prestige.RunWisdom = d.RunWisdomAccumulated
	s.Prestige.Phase = transcend.PhasePlaying

	s.School.Chosen = transcend.SchoolNone
	if transcend.ValidSchool(d.School) {
		s.School.Chosen = d.School
	}
	s.School.TruthsThisRun = d.SchoolRunTruths

	s.Achieve.Unlocked = make(map[achievements.ID]bool, len(d.UnlockedAchievements))
	for _, id := range d.UnlockedAchievements {
		if _, ok := achievements.Find(id); ok {
			s.Achieve.Unlocked[id] = true
		}
	}
	s.Achieve.LifetimeTruths = d.LifetimeTruths
	s.Achieve.PeakAFP = d.PeakAFP
	s.Achieve.DeepFocusUses = d.DeepFocusUses
	s.Achieve.RunElapsed = d.RunElapsed
	s.Achieve.RunTruths = d.RunTruths

	s.Shadows.Count = d.ShadowCount
	if s.Shadows.Count > tuning.ShadowMax {
		s.Shadows.Count = tuning.ShadowMax
	}
	s.Shadows.Stored = d.ShadowStoredWisdom

	s.Challenges.Completed = make(map[challenges.ID]bool, len(d.CompletedChallenges))
	for _, id := range d.CompletedChallenges {
		if _, ok := challenges.Find(id); ok {
			s.Challenges.Completed[id] = true
		}
	}
	s.Challenges.Active = nil

	s.Resources.Serenity = d.Serenity
	s.Resources.Curiosity = d.Curiosity
	s.Resources.Focus = d.Focus

	s.Codex.Restore(d.CodexDiscovered)

	s.Ambience.Restore(d.TimeOfDay, d.UnlockedLayers, d.SimTime)

	// Derived caches are rebuilt, never restored.
	s.Shop.Recalculate()
	s.Synergy.Recalculate(&s.Generators)
}

// SavePath resolves the save file location: the per-user config dir,
// falling back to the current directory.
func SavePath() string {
	return filepath.Join(saveDir(), saveFileName)
}

func saveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(base, "arcanum")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "."
	}
	return dir
}

// WriteFile serializes a snapshot to path. A failed write is an error
// for the caller to log; in-memory state is never affected.
func WriteFile(path string, d *SaveData) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// ReadFile loads a snapshot from path. A missing or unparseable file
// returns nil: the caller starts fresh.
func ReadFile(path string) *SaveData {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var d SaveData
	if err := json.Unmarshal(raw, &d); err != nil {
		slog.Warn("save file unreadable, starting fresh", "path", path, "err", err)
		return nil
	}
	return &d
}
