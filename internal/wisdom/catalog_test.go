package wisdom

import "testing"

func TestCatalogIndexRangesAreContiguous(t *testing.T) {
	next := 0
	for _, c := range Categories() {
		start, end := c.IndexRange()
		if start != next {
			t.Errorf("%s starts at %d, want %d", c.Name(), start, next)
		}
		if end-start+1 != c.Size() {
			t.Errorf("%s range [%d,%d] disagrees with size %d", c.Name(), start, end, c.Size())
		}
		next = end + 1
	}
	if next != CatalogSize {
		t.Errorf("ranges cover %d truths, catalog has %d", next, CatalogSize)
	}
}

func TestCategoryForIndexRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		start, end := c.IndexRange()
		for i := start; i <= end; i++ {
			got, ok := CategoryForIndex(i)
			if !ok || got != c {
				t.Fatalf("CategoryForIndex(%d) = %v, %v; want %v", i, got, ok, c)
			}
		}
	}
}

func TestCategoryForIndexRejectsOutOfRange(t *testing.T) {
	for _, i := range []int{-1, SentinelIndex, CatalogSize, CatalogSize + 100} {
		if _, ok := CategoryForIndex(i); ok {
			t.Errorf("CategoryForIndex(%d) accepted, want rejected", i)
		}
	}
}

func TestCatalogTruthCarriesIndex(t *testing.T) {
	for i := 0; i < CatalogSize; i++ {
		tr := CatalogTruth(i)
		if tr.Index != i {
			t.Fatalf("CatalogTruth(%d).Index = %d", i, tr.Index)
		}
		if tr.Text == "" {
			t.Fatalf("CatalogTruth(%d) has empty text", i)
		}
	}
}

func TestDreamTruthIsSentinel(t *testing.T) {
	for n := 0; n < 25; n++ {
		tr := DreamTruth(n)
		if tr.Index != SentinelIndex {
			t.Errorf("DreamTruth(%d).Index = %d, want sentinel", n, tr.Index)
		}
		if tr.Text == "" {
			t.Errorf("DreamTruth(%d) has empty text", n)
		}
	}
}
