// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import "github.com/corels-go/corels/internal/bitvec"

// MinorityOracle precomputes, for every antecedent, its capture intersected
// with each label, so that the identical-points lower bound over an
// arbitrary not-captured mask can be answered with R popcount-of-AND
// operations instead of materializing R intersections per query.
//
// Implements a simpler, admissible substitute for the exact identical-
// points bound: Bound(M) = sum over antecedents a of
// min(|captures[a] AND M AND L0|, |captures[a] AND M AND L1|). This is
// monotone under prefix extension (shrinking M can only shrink each term)
// and therefore a valid lower bound.
type MinorityOracle struct {
	capL0 []*bitvec.Set
	capL1 []*bitvec.Set
	n     int
}

// NewMinorityOracle builds the oracle from a RuleSet. Construction is O(R)
// intersections and is done once per Begin.
func NewMinorityOracle(rs *RuleSet) *MinorityOracle {
	o := &MinorityOracle{
		capL0: make([]*bitvec.Set, rs.NumRules()),
		capL1: make([]*bitvec.Set, rs.NumRules()),
		n:     rs.N(),
	}
	for a := 0; a < rs.NumRules(); a++ {
		c0 := bitvec.New(rs.n)
		c0.Intersection(rs.rules[a].Capture, rs.l0)
		c1 := bitvec.New(rs.n)
		c1.Intersection(rs.rules[a].Capture, rs.l1)
		o.capL0[a] = c0
		o.capL1[a] = c1
	}
	return o
}

// Bound returns the identical-points lower bound (already divided by N) for
// the given mask.
func (o *MinorityOracle) Bound(mask *bitvec.Set) float64 {
	sum := 0
	for a := range o.capL0 {
		n0 := mask.IntersectionCardinality(o.capL0[a])
		n1 := mask.IntersectionCardinality(o.capL1[a])
		sum += minCount(n0, n1)
	}
	return float64(sum) / float64(o.n)
}
