// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import (
	"strings"

	"github.com/corels-go/corels/internal/bitvec"
)

// Literal is a single binary-feature test: the feature column, and whether
// the antecedent requires it to be 0 (Negate) or 1.
type Literal struct {
	Feature int
	Negate  bool
}

// Name renders a literal against the fit-time feature names, e.g.
// "Age=18-25" or, negated, "not Age=18-25".
func (l Literal) Name(featureNames []string) string {
	if l.Negate {
		return "not " + featureNames[l.Feature]
	}
	return featureNames[l.Feature]
}

// Rule is a mined antecedent: a conjunction of 1..max_card binary-feature
// literals, the stable id assigned during mining, and the capture bitset
// over all N training samples (bit i set iff sample i satisfies every
// literal). Rules are immutable once mining completes.
type Rule struct {
	ID       int
	Literals []Literal

	// GroupID, when non-zero, marks the "feature family" this rule
	// belongs to. The scheduler refuses to place two antecedents sharing
	// a non-zero GroupID in the same prefix. Cardinality-1 rules get
	// GroupID = feature+1 so that a feature and its negation are never
	// both placed in one list; multi-literal rules are left ungrouped
	// (0) since mining already guarantees their literals touch distinct
	// features.
	GroupID int

	Capture *bitvec.Set
}

// Name joins the rule's literals into a single rendered antecedent clause,
// e.g. "A && B && C".
func (r Rule) Name(featureNames []string) string {
	parts := make([]string, len(r.Literals))
	for i, l := range r.Literals {
		parts[i] = l.Name(featureNames)
	}
	return strings.Join(parts, " && ")
}

// usesFeature reports whether any literal already chosen for a candidate
// combination touches feature f, used by the miner to keep every rule's
// literals on distinct features.
func usesFeature(lits []Literal, f int) bool {
	for _, l := range lits {
		if l.Feature == f {
			return true
		}
	}
	return false
}
