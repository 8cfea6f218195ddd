// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import "container/heap"

// Policy selects how the scheduler orders the search frontier. Modeled as
// a tagged variant plus a single ordering function rather than dynamic
// dispatch over a Policy interface -- the same shape as a Strategy enum
// driving a single engine's dispatch.
type Policy int

const (
	Bfs Policy = iota
	Dfs
	LowerBound
	Objective
	Curious
)

// PriorityQueue orders live PrefixCache entries by the active Policy, with
// insertion order (seq) as the tie-break.
//
// Built on container/heap: this is the one place in the engine that falls
// back to the standard library outright for lack of a priority-queue
// library anywhere in the grounding corpus -- see DESIGN.md.
type PriorityQueue struct {
	policy Policy
	items  []*Summary
	n      int // total samples, needed to compute Curious's p = captured/N
}

func NewPriorityQueue(policy Policy, totalSamples int) *PriorityQueue {
	return &PriorityQueue{policy: policy, n: totalSamples}
}

func (q *PriorityQueue) Len() int { return len(q.items) }

func (q *PriorityQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	pa, pb := q.primary(a), q.primary(b)
	if pa != pb {
		return pa < pb
	}
	if q.policy == Dfs {
		// "insertion order descending": the most recently pushed node
		// among ties is explored first, the usual depth-first-search
		// stack behavior.
		return a.seq > b.seq
	}
	return a.seq < b.seq
}

func (q *PriorityQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *PriorityQueue) Push(x any) { q.items = append(q.items, x.(*Summary)) }

func (q *PriorityQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// primary computes the policy's primary ordering key; smaller sorts first.
func (q *PriorityQueue) primary(s *Summary) float64 {
	switch q.policy {
	case Bfs:
		return float64(s.Len())
	case Dfs:
		// Negate so that greater length sorts first (smaller negated
		// value is popped first); the seq tie-break is handled in Less.
		return -float64(s.Len())
	case LowerBound:
		return s.LowerBound
	case Objective:
		return s.Objective
	case Curious:
		captured := q.n - s.NotCaptured.Popcount()
		p := float64(captured) / float64(q.n)
		return s.LowerBound / (1 - p)
	default:
		return s.LowerBound
	}
}

// Add pushes a new entry onto the heap.
func (q *PriorityQueue) Add(s *Summary) { heap.Push(q, s) }

// PopNonDeleted pops entries, discarding tombstoned ones, until it finds a
// live one or the heap empties.
func (q *PriorityQueue) PopNonDeleted() (*Summary, bool) {
	for q.Len() > 0 {
		s := heap.Pop(q).(*Summary)
		if !s.Deleted {
			return s, true
		}
	}
	return nil, false
}
