// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import "github.com/corels-go/corels/internal/bitvec"

// RuleSet owns the N-sample capture bitvector of every mined antecedent
// plus the two label bitvectors. It is immutable after construction and
// may be shared freely across concurrent readers.
//
// Grounded on the same "index -> fixed-shape payload" idea a prefix-keyed
// route table uses, generalized from "IP prefix -> route value" to
// "antecedent id -> capture bitset".
type RuleSet struct {
	rules []Rule
	l0    *bitvec.Set
	l1    *bitvec.Set
	n     int
}

// NewRuleSet wraps the given rules and label vectors. Inputs are trusted
// to already share one consistent sample count; no further validation is
// performed here.
func NewRuleSet(rules []Rule, l0, l1 *bitvec.Set) *RuleSet {
	return &RuleSet{rules: rules, l0: l0, l1: l1, n: l0.Len()}
}

// N is the number of training samples.
func (rs *RuleSet) N() int { return rs.n }

// NumRules is the number of mined antecedents, R.
func (rs *RuleSet) NumRules() int { return len(rs.rules) }

// Rule returns the antecedent with the given id.
func (rs *RuleSet) Rule(a int) Rule { return rs.rules[a] }

// Capture writes captures[a] AND parentNC into dst: the incremental
// capture of antecedent a given the parent prefix's not-captured mask.
func (rs *RuleSet) Capture(a int, parentNC, dst *bitvec.Set) {
	dst.Intersection(rs.rules[a].Capture, parentNC)
}

// NotCaptured writes parentNC AND NOT cap into dst: the child's NC_k.
func (rs *RuleSet) NotCaptured(parentNC, cap, dst *bitvec.Set) {
	dst.Difference(parentNC, cap)
}

// LabelCounts returns (|mask AND L0|, |mask AND L1|).
func (rs *RuleSet) LabelCounts(mask *bitvec.Set) (n0, n1 int) {
	return mask.IntersectionCardinality(rs.l0), mask.IntersectionCardinality(rs.l1)
}

// TotalSamples is an alias for N.
func (rs *RuleSet) TotalSamples() int { return rs.n }
