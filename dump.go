// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import (
	bbbitset "github.com/bits-and-blooms/bitset"

	"github.com/corels-go/corels/internal/bitvec"
)

// dumpCapture converts a hot-path bitvec.Set into a general-purpose bitset
// library's type for human-readable diagnostic output. internal/bitvec is
// the pool-friendly type the search loop needs on its hot path; this
// conversion is only ever used on the cold, logging-only path
// (ChanSamples).
func dumpCapture(c *bitvec.Set) *bbbitset.BitSet {
	b := bbbitset.New(uint(c.Len()))
	for i, ok := c.NextSet(0); ok; i, ok = c.NextSet(i + 1) {
		b.Set(uint(i))
	}
	return b
}

// dumpSamples renders a rule's capture set plus its label breakdown, gated
// by ChanSamples.
func dumpSamples(logger *Logger, rs *RuleSet, r Rule) {
	if logger == nil || logger.Channels&ChanSamples == 0 {
		return
	}
	n0, n1 := rs.LabelCounts(r.Capture)
	logger.logf(ChanSamples, "rule %d capture bits: %s (n0=%d n1=%d)\n", r.ID, dumpCapture(r.Capture).String(), n0, n1)
}
