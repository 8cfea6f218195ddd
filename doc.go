// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package corels searches for a certifiably optimal rule list: a short,
// ordered if-then-else list of antecedents over binary features that
// minimizes misclassification error plus a per-rule length penalty, with a
// branch-and-bound search that proves optimality rather than merely
// approximating it.
//
// An Engine drives the search through an explicit Begin/Step/Finish/
// Predict lifecycle so a caller controls its own pacing and can
// checkpoint between calls to Step. Begin validates the training data and
// mines binary-feature antecedents up to a configured cardinality; Step
// expands the search frontier by a bounded number of nodes per call,
// pruning with several admissible bounds; Finish converts the best prefix
// found so far into a RuleList; Predict evaluates that list against new
// rows.
//
// Antecedents, label counts and capture sets are all represented as
// fixed-length bitvectors (internal/bitvec) so that popcount and set
// operations over the sample space stay cheap regardless of search depth.
package corels
