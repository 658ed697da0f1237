package indices

import (
	"errors"
	"testing"
)

func TestIntGeneratorSkipsEngaged(t *testing.T) {
	g := NewIntGenerator(2, 2, 5)
	if !g.Contains(5) {
		t.Error("5 is engaged and should be contained")
	}
	if g.Contains(3) {
		t.Error("3 has not been issued yet")
	}
	want := []int{0, 1, 3, 4, 6, 7, 8}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Fatalf("call %d: want %d, got %d", i, w, got)
		}
	}
	for _, k := range []int{0, 3, 5, 8} {
		if !g.Contains(k) {
			t.Errorf("%d should be contained after issuing up to 8", k)
		}
	}
	if g.Contains(9) {
		t.Error("9 has not been issued")
	}
}

func TestIntGeneratorCompacts(t *testing.T) {
	engaged := []int{9, 1, 1, 0, 9, 4, -3}
	g := NewIntGenerator(engaged...)
	if len(g.engaged) != 5 {
		t.Errorf("engaged set should be deduplicated, got %v", g.engaged)
	}
	if engaged[0] != 9 || engaged[6] != -3 {
		t.Errorf("caller's slice was modified: %v", engaged)
	}
	var got []int
	for i := 0; i < 6; i++ {
		got = append(got, g.Next())
	}
	want := []int{2, 3, 5, 6, 7, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
	if next := g.Next(); next != 10 {
		t.Errorf("9 is engaged, want 10, got %d", next)
	}
}

func TestIntGeneratorCloneIsIndependent(t *testing.T) {
	g := NewIntGenerator(1)
	g.Next()
	c := g.Clone()
	c.Next()
	c.Next()
	if g.Last() != 0 {
		t.Errorf("advancing a clone must not move the original, last=%d", g.Last())
	}
	if c.Last() != 3 {
		t.Errorf("clone should have issued 2 then 3, last=%d", c.Last())
	}
}

func TestIntGeneratorMerge(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewIntGenerator(3, 4, 10)
	a, b := g.Clone(), g.Clone()
	var lastA, lastB int
	for i := 0; i < 2; i++ {
		lastA = a.Next()
	}
	for i := 0; i < 6; i++ {
		lastB = b.Next()
	}
	if err := a.MergeFrom(b); err != nil {
		t.Fatal(err)
	}
	if err := g.MergeFrom(a); err != nil {
		t.Fatal(err)
	}
	next := g.Next()
	if next <= lastA || next <= lastB {
		t.Errorf("merged generator issued %d, not above %d and %d", next, lastA, lastB)
	}
	if next != 8 {
		t.Errorf("want 8 after 0,1,2,5,6,7 were issued, got %d", next)
	}
	// Merging a generator that is behind changes nothing.
	c := g.Clone()
	stale := g.Clone()
	c.Next()
	if err := c.MergeFrom(stale); err != nil {
		t.Fatal(err)
	}
	if c.Next() != 11 {
		t.Error("merging a stale clone must not rewind")
	}
}

func TestIntGeneratorMergeIncompatible(t *testing.T) {
	a := NewIntGenerator(1, 2, 3)
	b := NewIntGenerator(1, 2, 3)
	if err := a.MergeFrom(b); !errors.Is(err, ErrIncompatibleGenerators) {
		t.Errorf("independent generators must not merge, got %v", err)
	}
	if a.Compatible(b) {
		t.Error("independent generators reported compatible")
	}
}
