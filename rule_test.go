package corels

import (
	"testing"

	"github.com/corels-go/corels/internal/bitvec"
)

func TestLiteralName(t *testing.T) {
	names := []string{"Age=18-25", "Prior-Crimes=0"}
	pos := Literal{Feature: 0}
	neg := Literal{Feature: 1, Negate: true}

	if got := pos.Name(names); got != "Age=18-25" {
		t.Fatalf("got %q", got)
	}
	if got := neg.Name(names); got != "not Prior-Crimes=0" {
		t.Fatalf("got %q", got)
	}
}

func TestRuleName(t *testing.T) {
	names := []string{"A", "B"}
	r := Rule{Literals: []Literal{{Feature: 0}, {Feature: 1, Negate: true}}}
	if got := r.Name(names); got != "A && not B" {
		t.Fatalf("got %q", got)
	}
}

func TestUsesFeature(t *testing.T) {
	lits := []Literal{{Feature: 2}, {Feature: 5, Negate: true}}
	if !usesFeature(lits, 5) {
		t.Fatal("expected feature 5 detected")
	}
	if usesFeature(lits, 1) {
		t.Fatal("feature 1 should not be detected")
	}
}

func TestRuleCaptureIndependentOfOtherFields(t *testing.T) {
	c := bitvec.New(4)
	c.Set(1)
	r := Rule{ID: 7, Capture: c}
	if r.Capture.Popcount() != 1 {
		t.Fatalf("popcount = %d, want 1", r.Capture.Popcount())
	}
	if r.ID != 7 {
		t.Fatalf("ID = %d, want 7", r.ID)
	}
}
