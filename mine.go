// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import "github.com/corels-go/corels/internal/bitvec"

// mineBinaryRules enumerates every conjunction of 1..maxCard binary-feature
// literals (a feature tested either positive or negated) whose support
// lies strictly between minSupport*n and (1-minSupport)*n samples (a
// rule exactly at either boundary is dropped), and assigns each a stable
// id.
//
// This mines conjunctions over already-binary columns; turning raw
// categorical data into those columns is a separate, external
// preprocessing step. A rule's literals are always drawn from distinct
// features (never generate a rule combining two literals of the same
// feature); Rule.GroupID additionally lets the scheduler exclude a
// feature's positive and negated single-literal rules from ever sharing
// one prefix.
func mineBinaryRules(x [][]uint8, n, numFeatures, maxCard int, minSupport float64, logger *Logger) []Rule {
	pos := make([]*bitvec.Set, numFeatures)
	neg := make([]*bitvec.Set, numFeatures)
	for f := 0; f < numFeatures; f++ {
		p := bitvec.New(n)
		for i := 0; i < n; i++ {
			if x[i][f] != 0 {
				p.Set(i)
			}
		}
		negSet := bitvec.New(n)
		negSet.Complement(p)
		pos[f] = p
		neg[f] = negSet
	}

	litCapture := func(l Literal) *bitvec.Set {
		if l.Negate {
			return neg[l.Feature]
		}
		return pos[l.Feature]
	}

	minThreshold := minSupport * float64(n)
	maxThreshold := (1 - minSupport) * float64(n)

	var rules []Rule
	nextID := 0

	considerCombo := func(lits []Literal) {
		combined := litCapture(lits[0])
		if len(lits) > 1 {
			acc := combined.Clone()
			for _, l := range lits[1:] {
				acc.Intersection(acc, litCapture(l))
			}
			combined = acc
		} else {
			combined = combined.Clone()
		}
		support := float64(combined.Popcount())
		if support <= minThreshold || support >= maxThreshold {
			return
		}
		groupID := 0
		if len(lits) == 1 {
			groupID = lits[0].Feature + 1
		}
		r := Rule{ID: nextID, Literals: append([]Literal(nil), lits...), GroupID: groupID, Capture: combined}
		nextID++
		rules = append(rules, r)
		logger.logf(ChanMine, "mined rule %d: cardinality=%d support=%.4f\n", r.ID, len(lits), support/float64(n))
	}

	// literal universe: feature f in positive and negated form
	universe := make([]Literal, 0, 2*numFeatures)
	for f := 0; f < numFeatures; f++ {
		universe = append(universe, Literal{Feature: f, Negate: false})
		universe = append(universe, Literal{Feature: f, Negate: true})
	}

	var chosen []Literal
	var combo func(start, card int)
	combo = func(start, card int) {
		if card > 0 {
			considerCombo(chosen)
		}
		if card == maxCard {
			return
		}
		for i := start; i < len(universe); i++ {
			l := universe[i]
			if usesFeature(chosen, l.Feature) {
				continue
			}
			chosen = append(chosen, l)
			combo(i+1, card+1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	combo(0, 0)

	return rules
}
