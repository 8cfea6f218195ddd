// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import (
	"encoding/binary"

	"github.com/corels-go/corels/internal/bitvec"
)

// MapType selects the PrefixCache's canonicalization variant.
type MapType int

const (
	// MapPrefix keys the cache by the sorted antecedent-id tuple. Because
	// the scheduler only ever proposes antecedents in strictly increasing
	// id order (the canonicalization prefilter), the clause list is
	// already sorted and the key is a direct encoding of it.
	MapPrefix MapType = iota
	// MapCaptured keys the cache by the NC_k bitset itself: distinct
	// antecedent sets that happen to capture the same samples collapse
	// into one entry.
	MapCaptured
	// MapNone disables canonicalization entirely; every expansion order
	// is a distinct entry. Ablation/testing only.
	MapNone
)

// PrefixCache is the canonical store of visited prefixes: one live entry
// per equivalence class. Deleted entries are tombstoned, never removed,
// so stale pointers (e.g. a child's Parent) stay valid to read.
//
// Grounded on a "index -> payload, with a pool recycling the payload's
// scarce fixed-shape storage" idiom; a plain Go map is the idiomatic
// choice here since a prefix's canonical key has no useful structural
// locality to exploit the way a routing trie's keys do.
type PrefixCache struct {
	variant MapType
	byKey   map[string]*Summary
	pool    *bitvec.Pool
	nextSeq uint64
}

// NewPrefixCache constructs an empty cache for the given variant, backed by
// pool for NotCaptured bitset recycling.
func NewPrefixCache(variant MapType, pool *bitvec.Pool) *PrefixCache {
	return &PrefixCache{variant: variant, byKey: make(map[string]*Summary), pool: pool}
}

func (c *PrefixCache) Variant() MapType { return c.variant }

// NextSeq hands out the next insertion sequence number, used as the
// priority queue's secondary (tie-break) sort key.
func (c *PrefixCache) NextSeq() uint64 {
	c.nextSeq++
	return c.nextSeq - 1
}

// Key computes the canonical key for a candidate summary under the cache's
// variant. MapNone never collides, so it encodes the (unique) seq instead.
func (c *PrefixCache) Key(cand *Summary) string {
	switch c.variant {
	case MapPrefix:
		return prefixKey(cand.Clauses)
	case MapCaptured:
		return capturedKey(cand.NotCaptured)
	default: // MapNone
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], cand.seq)
		return string(buf[:])
	}
}

func prefixKey(clauses []Clause) string {
	buf := make([]byte, 4*len(clauses))
	for i, cl := range clauses {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(cl.AntecedentID))
	}
	return string(buf)
}

func capturedKey(nc *bitvec.Set) string {
	words := nc.Words()
	b := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return string(b)
}

// TryInsert implements the cache's insertion protocol:
//
//  1. If the key is absent, store cand and accept.
//  2. If present with a worse (or equal) objective, discard cand.
//  3. If present with a better candidate, tombstone the old entry (caller
//     is responsible for returning its NotCaptured bitset to the pool) and
//     install cand.
//
// Returns whether cand was accepted, and the evicted entry if any.
func (c *PrefixCache) TryInsert(key string, cand *Summary) (accepted bool, evicted *Summary) {
	existing, ok := c.byKey[key]
	if !ok {
		c.byKey[key] = cand
		return true, nil
	}
	if cand.Objective < existing.Objective {
		existing.Deleted = true
		c.byKey[key] = cand
		return true, existing
	}
	return false, nil
}

// InsertRoot seeds the cache with the empty prefix's summary, bypassing the
// usual insertion protocol since there is nothing to compete with yet.
func (c *PrefixCache) InsertRoot(s *Summary) {
	c.byKey[c.Key(s)] = s
}

// Len is the number of live (non-deleted) entries ever inserted; tombstoned
// entries remain reachable via stale Parent pointers but are not counted
// here.
func (c *PrefixCache) Len() int {
	n := 0
	for _, s := range c.byKey {
		if !s.Deleted {
			n++
		}
	}
	return n
}
