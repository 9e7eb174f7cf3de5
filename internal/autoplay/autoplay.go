// Package autoplay is an automated player: it observes a session
// through view snapshots, decides on the next action from simple
// priorities, and acts through the session's public methods. Useful as
// a soak test of the whole economy.
package autoplay

import (
	"log/slog"

	"github.com/talgya/arcanum/internal/challenges"
	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/generators"
	"github.com/talgya/arcanum/internal/shop"
	"github.com/talgya/arcanum/internal/transcend"
	"github.com/talgya/arcanum/internal/view"
)

// Player drives one session.
type Player struct {
	Session *engine.Session

	// TranscendAt is the pending-insight threshold that triggers a
	// prestige.
	TranscendAt uint32

	// ClicksPerCycle is how many orb clicks each cycle spends.
	ClicksPerCycle int

	// DispelAtShadows is the shadow count worth cashing out.
	DispelAtShadows int

	schoolRotation int
}

// NewPlayer wraps a session with default priorities.
func NewPlayer(s *engine.Session) *Player {
	return &Player{
		Session:         s,
		TranscendAt:     3,
		ClicksPerCycle:  4,
		DispelAtShadows: 3,
	}
}

// Cycle runs one observe-decide-act pass. Priorities, top first: commit
// a pending school choice, claim moments, dispel ripe shadows, prestige
// past the threshold, buy enlightenments, buy the best-value generator,
// buy cheap shop items, summon acolytes, engage deep focus, and always
// keep clicking.
func (p *Player) Cycle() {
	s := p.Session

	if s.Prestige.Phase == transcend.PhaseSchoolSelection {
		p.chooseSchool()
		return
	}

	if _, ok := s.ClaimMoment(); ok {
		slog.Debug("autoplay claimed moment")
	}

	if s.Shadows.Count >= p.DispelAtShadows {
		if payout, ok := s.DispelShadows(); ok {
			slog.Debug("autoplay dispelled shadows", "payout", payout)
		}
	}

	if s.Prestige.PendingInsight() >= p.TranscendAt {
		if gained, ok := s.Transcend(); ok {
			slog.Info("autoplay transcending", "insight", gained)
			return
		}
	}

	p.buyEnlightenment()
	p.buyBestGenerator()
	p.buyShopItem()

	if s.FocusPoints >= s.Acolytes.NextCost()*2 {
		s.SummonAcolyte()
	}

	s.DeepFocus()

	for i := 0; i < p.ClicksPerCycle; i++ {
		s.Ponder()
	}

	p.maybeStartChallenge()
}

// chooseSchool rotates through the catalog so long soaks exercise every
// school's modifiers.
func (p *Player) chooseSchool() {
	id := transcend.Schools[p.schoolRotation%len(transcend.Schools)].ID
	p.schoolRotation++
	p.Session.ChooseSchool(id)
}

// buyBestGenerator picks the affordable unlocked tier with the best
// production-per-cost ratio.
func (p *Player) buyBestGenerator() {
	s := p.Session
	best := generators.Type(-1)
	bestRatio := 0.0
	for _, row := range view.BuildGenerators(s) {
		if !row.Unlocked || !row.Affordable {
			continue
		}
		t := row.Type
		cost := t.NextCost(s.Generators.Count(t), s.Prestige.GeneratorDiscount())
		ratio := t.BaseProduction() * s.Synergy.TotalMult(t) / float64(cost)
		if ratio > bestRatio {
			bestRatio = ratio
			best = t
		}
	}
	if best.Valid() {
		s.BuyGenerator(best)
	}
}

// buyShopItem grabs the cheapest unowned item once AFP is comfortable.
func (p *Player) buyShopItem() {
	s := p.Session
	var pick shop.ItemID
	var pickCost uint64
	for _, it := range shop.Catalog {
		if s.Shop.Owns(it.ID) || s.FocusPoints < it.Cost*2 {
			continue
		}
		if pick == "" || it.Cost < pickCost {
			pick = it.ID
			pickCost = it.Cost
		}
	}
	if pick != "" && s.BuyShopItem(pick) {
		if orb, ok := shop.OrbForItem(pick); ok {
			s.EquipOrb(orb)
		}
	}
}

// buyEnlightenment spends banked insight cheapest-first.
func (p *Player) buyEnlightenment() {
	s := p.Session
	for _, e := range transcend.Enlightenments {
		if !s.Prestige.Has(e.ID) && s.Prestige.Insight >= e.Cost {
			s.BuyEnlightenment(e.ID)
			return
		}
	}
}

// maybeStartChallenge attempts Solitude when no acolytes exist yet; it
// is the only challenge an active autoplayer can win without going
// idle.
func (p *Player) maybeStartChallenge() {
	s := p.Session
	if s.Challenges.IsActive() || s.Challenges.HasCompleted(challenges.Solitude) {
		return
	}
	if s.Acolytes.Count == 0 {
		s.StartChallenge(challenges.Solitude)
	}
}
