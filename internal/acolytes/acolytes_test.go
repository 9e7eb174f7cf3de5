package acolytes

import (
	"math"
	"testing"
)

func TestNextCostCurve(t *testing.T) {
	tests := []struct {
		count int
		want  uint64
	}{
		{0, 20},
		{1, 23}, // ceil(20 * 1.15)
		{2, 27}, // ceil(20 * 1.3225)
		{10, 81},
	}
	for _, tc := range tests {
		s := State{Count: tc.count}
		if got := s.NextCost(); got != tc.want {
			t.Errorf("NextCost at %d acolytes = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestPassiveRate(t *testing.T) {
	s := State{Count: 5}
	if got := s.PassiveRate(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("PassiveRate = %v, want 1.0", got)
	}
}

func TestReset(t *testing.T) {
	s := State{Count: 7}
	s.Reset()
	if s.Count != 0 {
		t.Errorf("Count = %d after reset", s.Count)
	}
}
