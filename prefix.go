// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import "github.com/corels-go/corels/internal/bitvec"

// Clause is one position in a prefix: the antecedent placed there and the
// majority prediction within its incremental capture.
type Clause struct {
	AntecedentID int
	Prediction   int
}

// Summary is the per-prefix record stored in the PrefixCache. A Summary is
// self-sufficient for expansion -- it never needs to dereference Parent to
// be evaluated or extended, which is what makes tombstoning safe.
type Summary struct {
	Clauses     []Clause
	LowerBound  float64
	Objective   float64
	NotCaptured *bitvec.Set
	Parent      *Summary
	DefaultPred int
	Deleted     bool

	// seq is the insertion sequence number, used as the priority queue's
	// secondary (tie-break) sort key to keep search order reproducible.
	seq uint64
}

// Len is the prefix length k.
func (s *Summary) Len() int { return len(s.Clauses) }

// LastAntecedentID returns the id of the last antecedent placed, or -1 for
// the empty prefix. Used by the prefix-map canonicalization rule: a child
// antecedent must be strictly greater than this.
func (s *Summary) LastAntecedentID() int {
	if len(s.Clauses) == 0 {
		return -1
	}
	return s.Clauses[len(s.Clauses)-1].AntecedentID
}

// containsAntecedent reports whether id already appears in the prefix.
func (s *Summary) containsAntecedent(id int) bool {
	for _, c := range s.Clauses {
		if c.AntecedentID == id {
			return true
		}
	}
	return false
}

// groupConflict reports whether placing an antecedent with the given
// non-zero group id would collide with one already in the prefix (see
// Rule.GroupID).
func (s *Summary) groupConflict(rs *RuleSet, groupID int) bool {
	if groupID == 0 {
		return false
	}
	for _, c := range s.Clauses {
		if rs.Rule(c.AntecedentID).GroupID == groupID {
			return true
		}
	}
	return false
}
