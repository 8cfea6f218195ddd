// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import (
	"fmt"
	"strings"
)

// RuleClause is one rendered, predict-ready position of a RuleList: the
// literals of the antecedent placed there (kept, not just its mined id, so
// Predict can re-evaluate it against a raw feature row) and the majority
// prediction within its incremental capture.
type RuleClause struct {
	AntecedentID int
	Literals     []Literal
	Prediction   int
}

// holds reports whether every literal of the clause is satisfied by row.
func (c RuleClause) holds(row []uint8) bool {
	for _, l := range c.Literals {
		v := row[l.Feature] != 0
		if l.Negate {
			v = !v
		}
		if !v {
			return false
		}
	}
	return true
}

// RuleList is the learned, ordered if-then-else list: the value
// Incumbent.Summary is converted into by Finish.
type RuleList struct {
	Features       []string
	PredictionName string
	Clauses        []RuleClause
	Default        int
}

// toRuleList converts a cache Summary -- clause ids plus predictions -- into
// a self-contained, predict-ready RuleList by resolving each antecedent id
// back to its literals.
func toRuleList(rs *RuleSet, featureNames []string, predictionName string, s *Summary) *RuleList {
	rl := &RuleList{Features: featureNames, PredictionName: predictionName, Default: s.DefaultPred}
	rl.Clauses = make([]RuleClause, len(s.Clauses))
	for i, cl := range s.Clauses {
		r := rs.Rule(cl.AntecedentID)
		rl.Clauses[i] = RuleClause{AntecedentID: r.ID, Literals: r.Literals, Prediction: cl.Prediction}
	}
	return rl
}

// PredictRow evaluates the rule list top-down on a single feature row: the
// first clause whose antecedent holds wins, otherwise the default.
func (rl *RuleList) PredictRow(row []uint8) (int, error) {
	if len(row) != len(rl.Features) {
		return 0, invalid(ErrShapeMismatch, "row width", len(row))
	}
	for _, c := range rl.Clauses {
		if c.holds(row) {
			return c.Prediction, nil
		}
	}
	return rl.Default, nil
}

// Predict evaluates every row of X.
func (rl *RuleList) Predict(x [][]uint8) ([]uint8, error) {
	out := make([]uint8, len(x))
	for i, row := range x {
		pred, err := rl.PredictRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = uint8(pred)
	}
	return out, nil
}

// Score returns the fraction of rows in x whose prediction matches y.
func (rl *RuleList) Score(x [][]uint8, y []uint8) (float64, error) {
	preds, err := rl.Predict(x)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, p := range preds {
		if p == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y)), nil
}

func boolLabel(v int) string {
	if v != 0 {
		return "True"
	}
	return "False"
}

func clauseBody(c RuleClause, featureNames []string) string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.Name(featureNames)
	}
	return strings.Join(parts, " && ")
}

// String renders the rule list as a cascade of "if [...]: name =
// True/False" / "else if [...]: ..." clauses terminated by the default
// rule, e.g.:
//
//	if [Age=24-30 && Prior-Crimes=0]: Recidivate-Within-Two-Years = False
//	else if [not Age=18-25 && not Prior-Crimes>3]: Recidivate-Within-Two-Years = False
//	else Recidivate-Within-Two-Years = True
func (rl *RuleList) String() string {
	var b strings.Builder
	for i, c := range rl.Clauses {
		if i == 0 {
			fmt.Fprintf(&b, "if [%s]: %s = %s\n", clauseBody(c, rl.Features), rl.PredictionName, boolLabel(c.Prediction))
		} else {
			fmt.Fprintf(&b, "else if [%s]: %s = %s\n", clauseBody(c, rl.Features), rl.PredictionName, boolLabel(c.Prediction))
		}
	}
	fmt.Fprintf(&b, "else %s = %s", rl.PredictionName, boolLabel(rl.Default))
	return b.String()
}
