// Package codex is the permanent discovery log: which catalog truths
// the player has ever seen, and the wisdom bonus earned by completing
// whole categories.
package codex

import (
	"log/slog"

	"github.com/talgya/arcanum/internal/wisdom"
)

// CompletionBonus is the additive wisdom bonus per fully discovered
// category.
const CompletionBonus = 0.05

// Codex records discovered catalog indices. Discovery is permanent and
// survives transcendence.
type Codex struct {
	Discovered map[int]bool
}

// New returns an empty codex.
func New() *Codex {
	return &Codex{Discovered: make(map[int]bool)}
}

// Record marks a truth's catalog index as discovered. Sentinel and
// out-of-range indices are ignored. Returns the truth's category and
// whether this discovery completed it.
func (c *Codex) Record(index int) (wisdom.Category, bool) {
	cat, ok := wisdom.CategoryForIndex(index)
	if !ok {
		return 0, false
	}
	if c.Discovered[index] {
		return cat, false
	}
	c.Discovered[index] = true
	if c.CategoryComplete(cat) {
		slog.Info("codex category completed", "category", cat.Name())
		return cat, true
	}
	return cat, false
}

// CategoryProgress is the discovered count within a category.
func (c *Codex) CategoryProgress(cat wisdom.Category) int {
	start, end := cat.IndexRange()
	n := 0
	for i := start; i <= end; i++ {
		if c.Discovered[i] {
			n++
		}
	}
	return n
}

// CategoryComplete reports whether every truth of the category has been
// discovered.
func (c *Codex) CategoryComplete(cat wisdom.Category) bool {
	return c.CategoryProgress(cat) == cat.Size()
}

// CompletedCategories counts fully discovered categories.
func (c *Codex) CompletedCategories() int {
	n := 0
	for _, cat := range wisdom.Categories() {
		if c.CategoryComplete(cat) {
			n++
		}
	}
	return n
}

// WisdomMultiplier is 1 plus the completion bonus per completed
// category.
func (c *Codex) WisdomMultiplier() float64 {
	return 1.0 + CompletionBonus*float64(c.CompletedCategories())
}

// TotalDiscovered counts all discovered truths.
func (c *Codex) TotalDiscovered() int {
	return len(c.Discovered)
}

// Indices returns the discovered indices for persistence snapshots.
func (c *Codex) Indices() []int {
	out := make([]int, 0, len(c.Discovered))
	for i := range c.Discovered {
		out = append(out, i)
	}
	return out
}

// Restore rebuilds the discovered set from a snapshot, dropping any
// index that no longer maps into the catalog.
func (c *Codex) Restore(indices []int) {
	c.Discovered = make(map[int]bool, len(indices))
	for _, i := range indices {
		if _, ok := wisdom.CategoryForIndex(i); ok {
			c.Discovered[i] = true
		}
	}
}
