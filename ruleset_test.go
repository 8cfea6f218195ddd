package corels

import (
	"testing"

	"github.com/corels-go/corels/internal/bitvec"
)

func setFrom(n int, idx ...int) *bitvec.Set {
	s := bitvec.New(n)
	for _, i := range idx {
		s.Set(i)
	}
	return s
}

func TestRuleSetCaptureAndNotCaptured(t *testing.T) {
	n := 6
	l0 := setFrom(n, 0, 1, 2)
	l1 := setFrom(n, 3, 4, 5)
	ruleCapture := setFrom(n, 1, 2, 3)
	rs := NewRuleSet([]Rule{{ID: 0, Capture: ruleCapture}}, l0, l1)

	if rs.N() != n {
		t.Fatalf("N() = %d, want %d", rs.N(), n)
	}
	if rs.NumRules() != 1 {
		t.Fatalf("NumRules() = %d, want 1", rs.NumRules())
	}
	if rs.TotalSamples() != n {
		t.Fatalf("TotalSamples() = %d, want %d", rs.TotalSamples(), n)
	}

	parentNC := setFrom(n, 0, 1, 2, 3, 4, 5)
	cap := bitvec.New(n)
	rs.Capture(0, parentNC, cap)
	if cap.Popcount() != 3 {
		t.Fatalf("capture popcount = %d, want 3", cap.Popcount())
	}

	nc := bitvec.New(n)
	rs.NotCaptured(parentNC, cap, nc)
	if nc.Popcount() != 3 {
		t.Fatalf("not-captured popcount = %d, want 3", nc.Popcount())
	}
	for _, i := range []int{0, 4, 5} {
		if !nc.Test(i) {
			t.Fatalf("expected bit %d set in not-captured", i)
		}
	}
}

func TestRuleSetLabelCounts(t *testing.T) {
	n := 4
	l0 := setFrom(n, 0, 1)
	l1 := setFrom(n, 2, 3)
	rs := NewRuleSet(nil, l0, l1)

	mask := setFrom(n, 0, 2, 3)
	n0, n1 := rs.LabelCounts(mask)
	if n0 != 1 || n1 != 2 {
		t.Fatalf("got n0=%d n1=%d, want 1,2", n0, n1)
	}
}
