// Package view builds read-only display snapshots of a session. All
// structs are copies: nothing here can mutate economy state, and a
// snapshot stays valid after the session moves on.
package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/arcanum/internal/achievements"
	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/persistence"
	"github.com/talgya/arcanum/internal/shop"
	"github.com/talgya/arcanum/internal/transcend"
	"github.com/talgya/arcanum/internal/wisdom"
)

// HUD is the top-line numbers panel.
type HUD struct {
	Wisdom         string
	MaxWisdom      string
	WisdomFraction float64
	PassiveRate    string
	FocusPoints    string
	TotalTruths    uint32
	RunTruths      uint32
	Insight        uint32
	PendingInsight uint32
	Serenity       string
	Curiosity      string
	Focus          float64
	FocusActive    bool
	DeepFocusReady bool
	ShadowCount    int
	School         string
	TimeOfDay      float64
	NightFactor    float64
	Layer          string
}

// Amount renders a large quantity for display.
func Amount(v float64) string {
	if v >= 1_000_000 {
		return humanize.SIWithDigits(v, 2, "")
	}
	return humanize.CommafWithDigits(v, 1)
}

// Count renders an integer quantity with separators.
func Count(v uint64) string {
	return humanize.Comma(int64(v))
}

// BuildHUD snapshots the headline numbers.
func BuildHUD(s *engine.Session) HUD {
	school := "None"
	if s.School.Chosen != transcend.SchoolNone {
		school = string(s.School.Chosen)
	}
	return HUD{
		Wisdom:         Amount(s.Meter.Current),
		MaxWisdom:      Amount(s.Meter.MaxWisdom),
		WisdomFraction: s.Meter.Fraction(),
		PassiveRate:    Amount(s.PassiveRate()) + "/s",
		FocusPoints:    Count(s.FocusPoints),
		TotalTruths:    s.TotalTruths,
		RunTruths:      s.Meter.TruthsGenerated,
		Insight:        s.Prestige.Insight,
		PendingInsight: s.Prestige.PendingInsight(),
		Serenity:       Amount(s.Resources.Serenity),
		Curiosity:      Amount(s.Resources.Curiosity),
		Focus:          s.Resources.Focus,
		FocusActive:    s.Resources.FocusActive,
		DeepFocusReady: !s.DeepFocusActive && s.DeepFocusCooldown <= 0,
		ShadowCount:    s.Shadows.Count,
		School:         school,
		TimeOfDay:      s.Ambience.TimeOfDay,
		NightFactor:    s.Ambience.NightFactor(),
		Layer:          s.Ambience.Highest().Name(),
	}
}

// GeneratorRow is one tier in the build panel.
type GeneratorRow struct {
	Type       generators.Type
	Name       string
	Owned      int
	NextCost   string
	Affordable bool
	Unlocked   bool
	Production string
	Synergy    string
}

// BuildGenerators snapshots every tier.
func BuildGenerators(s *engine.Session) []GeneratorRow {
	rows := make([]GeneratorRow, 0, generators.TierCount)
	for _, t := range generators.All() {
		cost := t.NextCost(s.Generators.Count(t), s.Prestige.GeneratorDiscount())
		perUnit := t.BaseProduction() * s.Synergy.TotalMult(t)
		rows = append(rows, GeneratorRow{
			Type:       t,
			Name:       t.Name(),
			Owned:      s.Generators.Count(t),
			NextCost:   Count(cost) + " AFP",
			Affordable: s.FocusPoints >= cost,
			Unlocked:   s.GeneratorUnlocked(t),
			Production: Amount(perUnit) + "/s each",
			Synergy:    s.Synergy.Describe(t, &s.Generators),
		})
	}
	return rows
}

// ShopRow is one catalog item in the shop panel.
type ShopRow struct {
	Item       shop.Item
	Owned      bool
	Affordable bool
	Cost       string
}

// BuildShop snapshots the catalog with affordability.
func BuildShop(s *engine.Session) []ShopRow {
	rows := make([]ShopRow, 0, len(shop.Catalog))
	for _, it := range shop.Catalog {
		rows = append(rows, ShopRow{
			Item:       it,
			Owned:      s.Shop.Owns(it.ID),
			Affordable: s.FocusPoints >= it.Cost,
			Cost:       Count(it.Cost) + " AFP",
		})
	}
	return rows
}

// AchievementRow is one achievement in the listing; hidden ones mask
// their name and description until unlocked.
type AchievementRow struct {
	Name        string
	Description string
	Unlocked    bool
	Reward      string
}

// BuildAchievements snapshots the full listing.
func BuildAchievements(s *engine.Session) []AchievementRow {
	rows := make([]AchievementRow, 0, len(achievements.Catalog))
	for _, d := range achievements.Catalog {
		unlocked := s.Achieve.Has(d.ID)
		name, desc := d.Name, d.Description
		if d.Hidden && !unlocked {
			name, desc = "???", d.Teaser
		}
		rows = append(rows, AchievementRow{
			Name:        name,
			Description: desc,
			Unlocked:    unlocked,
			Reward:      fmt.Sprintf("+%.0f%% wisdom", d.Reward*100),
		})
	}
	return rows
}

// CodexRow is one category's discovery progress.
type CodexRow struct {
	Category   string
	Discovered int
	Total      int
	Complete   bool
}

// BuildCodex snapshots category progress.
func BuildCodex(s *engine.Session) []CodexRow {
	var rows []CodexRow
	for _, c := range wisdom.Categories() {
		rows = append(rows, CodexRow{
			Category:   c.Name(),
			Discovered: s.Codex.CategoryProgress(c),
			Total:      c.Size(),
			Complete:   s.Codex.CategoryComplete(c),
		})
	}
	return rows
}

// ChallengeRow is one challenge with its live status.
type ChallengeRow struct {
	Def       challenges.Def
	Completed bool
	Active    bool
	Failed    bool
	Elapsed   float64
	Progress  uint32
}

// BuildChallenges snapshots the challenge board.
func BuildChallenges(s *engine.Session) []ChallengeRow {
	rows := make([]ChallengeRow, 0, len(challenges.Catalog))
	for _, d := range challenges.Catalog {
		row := ChallengeRow{Def: d, Completed: s.Challenges.HasCompleted(d.ID)}
		if a := s.Challenges.Active; a != nil && a.ID == d.ID {
			row.Active = true
			row.Failed = a.Failed
			row.Elapsed = a.Elapsed
			row.Progress = a.Progress
		}
		rows = append(rows, row)
	}
	return rows
}

// OfflineSummary renders an offline report for display.
func OfflineSummary(g *persistence.OfflineGains) string {
	if g == nil {
		return ""
	}
	away := humanize.RelTime(time.Now().Add(-time.Duration(g.ElapsedSecs)*time.Second), time.Now(), "", "")
	return fmt.Sprintf("While you were away (%s): +%s wisdom, %d truths, +%s AFP",
		away, Amount(g.WisdomGained), g.TruthsEarned, Count(g.AFPEarned))
}
