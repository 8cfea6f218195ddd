package corels

import "testing"

func TestIncumbentUpdateOnlyOnImprovement(t *testing.T) {
	root := &Summary{Objective: 0.5}
	inc := NewIncumbent(root)

	worse := &Summary{Objective: 0.6}
	if inc.Update(worse) {
		t.Fatal("should not update on worse objective")
	}
	if inc.Objective() != 0.5 {
		t.Fatalf("objective changed unexpectedly: %v", inc.Objective())
	}

	better := &Summary{Objective: 0.3}
	if !inc.Update(better) {
		t.Fatal("should update on strictly better objective")
	}
	if inc.Objective() != 0.3 {
		t.Fatalf("got %v, want 0.3", inc.Objective())
	}
	if inc.Summary() != better {
		t.Fatal("Summary() should return the new incumbent")
	}
}

func TestIncumbentUpdateRejectsTie(t *testing.T) {
	root := &Summary{Objective: 0.4}
	inc := NewIncumbent(root)
	tie := &Summary{Objective: 0.4}
	if inc.Update(tie) {
		t.Fatal("equal objective should not replace the incumbent")
	}
}
