package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/arcanum/internal/wisdom"
)

func openTestChronicle(t *testing.T) *Chronicle {
	t.Helper()
	c, err := OpenChronicle(filepath.Join(t.TempDir(), "chronicle.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestAppendAndReadTruths(t *testing.T) {
	c := openTestChronicle(t)

	if err := c.AppendTruths(1.0, nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}

	batch := []wisdom.Truth{
		{Text: "The candle burns at both ends of time.", Index: 3},
		{Text: "dreamt", Index: wisdom.SentinelIndex},
	}
	if err := c.AppendTruths(12.5, batch); err != nil {
		t.Fatal(err)
	}

	entries, err := c.RecentTruths(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("logbook holds %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].CatalogIndex != wisdom.SentinelIndex || entries[1].CatalogIndex != 3 {
		t.Errorf("entry order: %d, %d", entries[0].CatalogIndex, entries[1].CatalogIndex)
	}
	if entries[1].RunID != c.RunID || entries[1].SimTime != 12.5 {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestCloseRunCutsFreshID(t *testing.T) {
	c := openTestChronicle(t)
	oldID := c.RunID

	newID, err := c.CloseRun(3, 42, 3600)
	if err != nil {
		t.Fatal(err)
	}
	if newID == oldID {
		t.Error("run id not rotated")
	}

	runs, err := c.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.RunID != oldID || r.InsightEarned != 3 || r.Truths != 42 || r.DurationSecs != 3600 {
		t.Errorf("run record = %+v", r)
	}
}

func TestTruthsGroupByRun(t *testing.T) {
	c := openTestChronicle(t)
	first := c.RunID
	c.AppendTruths(1, []wisdom.Truth{{Text: "a", Index: 0}})
	c.CloseRun(1, 1, 10)
	c.AppendTruths(2, []wisdom.Truth{{Text: "b", Index: 1}})

	entries, err := c.RecentTruths(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].RunID == first || entries[1].RunID != first {
		t.Errorf("run grouping: %+v", entries)
	}
}
