package corels

import "testing"

func TestMinCount(t *testing.T) {
	if got := minCount(3, 7); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := minCount(7, 3); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestMajorityLabelTiesToOne(t *testing.T) {
	if got := majorityLabel(5, 5); got != 1 {
		t.Fatalf("tie should break to 1, got %d", got)
	}
	if got := majorityLabel(6, 4); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := majorityLabel(4, 6); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestLowerBoundAccumulates(t *testing.T) {
	b := lowerBound(0.1, 2, 8, 10, 0.01)
	// Evaluated in float64 in the same order as lowerBound; the untyped
	// constant 0.1 + 0.2 + 0.01 rounds differently.
	parentB, c := 0.1, 0.01
	want := parentB + 2.0/10.0 + c
	if b != want {
		t.Fatalf("got %v, want %v", b, want)
	}
}

func TestObjectiveAddsDefaultError(t *testing.T) {
	o := objective(0.2, 3, 7, 10)
	want := 0.2 + 0.3
	if o != want {
		t.Fatalf("got %v, want %v", o, want)
	}
}

func TestSupportBoundReject(t *testing.T) {
	if !supportBoundReject(1, 100, 0.05) {
		t.Fatal("1/100 capture should be rejected at c=0.05")
	}
	if supportBoundReject(10, 100, 0.05) {
		t.Fatal("10/100 capture should not be rejected at c=0.05")
	}
}

func TestAccurateSupportBoundReject(t *testing.T) {
	// incremental cost 0.1 + c 0.01 = 0.11 >= bestObjective(0.1) - parentB(0.0)
	if !accurateSupportBoundReject(1, 9, 10, 0.01, 0.1, 0.0) {
		t.Fatal("expected reject")
	}
	if accurateSupportBoundReject(0, 1, 10, 0.01, 0.5, 0.0) {
		t.Fatal("expected accept")
	}
}

func TestLengthBoundReject(t *testing.T) {
	if !lengthBoundReject(0.2, 0.01, 0.2) {
		t.Fatal("parentB+c (0.21) >= bestObjective (0.2) should reject")
	}
	if lengthBoundReject(0.1, 0.01, 0.2) {
		t.Fatal("expected accept")
	}
}

func TestLookaheadBoundReject(t *testing.T) {
	if !lookaheadBoundReject(0.19, 0.01, 0.2) {
		t.Fatal("childB >= bestObjective-c should reject")
	}
	if lookaheadBoundReject(0.1, 0.01, 0.2) {
		t.Fatal("expected accept")
	}
}

func TestMinorityBoundReject(t *testing.T) {
	if !minorityBoundReject(0.15, 0.05, 0.2) {
		t.Fatal("0.15+0.05 >= 0.2 should reject")
	}
	if minorityBoundReject(0.1, 0.05, 0.2) {
		t.Fatal("expected accept")
	}
}
