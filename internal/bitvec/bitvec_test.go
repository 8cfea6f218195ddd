package bitvec

import "testing"

func fromBits(n int, idx ...int) *Set {
	s := New(n)
	for _, i := range idx {
		s.Set(i)
	}
	return s
}

func TestSetTestClear(t *testing.T) {
	s := New(10)
	s.Set(3)
	s.Set(9)
	if !s.Test(3) || !s.Test(9) {
		t.Fatal("expected bits 3 and 9 set")
	}
	if s.Test(4) {
		t.Fatal("bit 4 should be unset")
	}
	s.Clear(3)
	if s.Test(3) {
		t.Fatal("bit 3 should have been cleared")
	}
}

func TestSetAllMasksTail(t *testing.T) {
	s := New(5)
	s.SetAll()
	if s.Popcount() != 5 {
		t.Fatalf("SetAll on n=5 should set exactly 5 bits, got %d", s.Popcount())
	}
	for i := 5; i < 64; i++ {
		// words beyond the logical length must read as empty via Popcount
	}
}

func TestIntersectionDifferenceUnion(t *testing.T) {
	a := fromBits(8, 0, 1, 2, 3)
	b := fromBits(8, 2, 3, 4, 5)

	inter := New(8)
	inter.Intersection(a, b)
	if got := inter.AsSlice(); !equalInts(got, []int{2, 3}) {
		t.Fatalf("Intersection = %v", got)
	}

	diff := New(8)
	diff.Difference(a, b)
	if got := diff.AsSlice(); !equalInts(got, []int{0, 1}) {
		t.Fatalf("Difference = %v", got)
	}

	union := New(8)
	union.Union(a, b)
	if got := union.AsSlice(); !equalInts(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("Union = %v", got)
	}
}

func TestComplementMasksTail(t *testing.T) {
	a := fromBits(5, 0, 2)
	c := New(5)
	c.Complement(a)
	if got := c.AsSlice(); !equalInts(got, []int{1, 3, 4}) {
		t.Fatalf("Complement = %v", got)
	}
}

func TestIntersectionCardinality(t *testing.T) {
	a := fromBits(100, 1, 2, 63, 64, 99)
	b := fromBits(100, 2, 64, 99)
	if got := a.IntersectionCardinality(b); got != 3 {
		t.Fatalf("IntersectionCardinality = %d, want 3", got)
	}
}

func TestNextSetAcrossWords(t *testing.T) {
	s := fromBits(130, 0, 64, 129)
	var got []int
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		got = append(got, i)
	}
	if !equalInts(got, []int{0, 64, 129}) {
		t.Fatalf("NextSet iteration = %v", got)
	}
}

func TestPoolRoundTrip(t *testing.T) {
	p := NewPool(70)
	s := p.Get()
	s.Set(65)
	if s.Popcount() != 1 {
		t.Fatal("expected one bit set before Put")
	}
	p.Put(s)

	s2 := p.Get()
	if !s2.IsZero() {
		t.Fatal("Set returned from pool.Get must be zeroed")
	}
	if live, total := p.Stats(); live != 1 || total != 1 {
		t.Fatalf("Stats = live=%d total=%d, want live=1 total=1", live, total)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
