package indices

import (
	"slices"

	"github.com/google/uuid"
)

// IntGenerator issues non-negative integers in increasing order, skipping a
// fixed set of engaged integers.
//
// A generator and all its clones share one engaged set and one lineage. Only
// generators of the same lineage can be merged. IntGenerator is not safe for
// concurrent use; clone it per branch and merge the branches back instead.
type IntGenerator struct {
	// engaged is sorted and free of duplicates. It is never modified after
	// construction and is shared between clones.
	engaged []int
	lineage uuid.UUID
	// cursor is the last issued integer; -1 before the first Next.
	cursor int
	// match is the position in engaged of the first value above cursor.
	match int
}

// NewIntGenerator creates a generator that never issues any of the engaged
// integers. The slice is copied.
func NewIntGenerator(engaged ...int) *IntGenerator {
	return newIntGenerator(uuid.New(), engaged)
}

func newIntGenerator(lineage uuid.UUID, engaged []int) *IntGenerator {
	e := slices.Clone(engaged)
	slices.Sort(e)
	e = slices.Compact(e)
	g := &IntGenerator{
		engaged: slices.Clip(e),
		lineage: lineage,
		cursor:  -1,
	}
	g.skipBelow()
	return g
}

// skipBelow moves match past engaged values that can no longer be issued.
func (g *IntGenerator) skipBelow() {
	for g.match < len(g.engaged) && g.engaged[g.match] <= g.cursor {
		g.match++
	}
}

// Next issues the smallest integer above the last issued one that is not
// engaged.
func (g *IntGenerator) Next() int {
	g.cursor++
	for g.match < len(g.engaged) && g.engaged[g.match] == g.cursor {
		g.match++
		g.cursor++
	}
	return g.cursor
}

// Contains reports whether index can no longer be issued, either because it
// is at or below the last issued integer or because it is engaged.
func (g *IntGenerator) Contains(index int) bool {
	if index <= g.cursor {
		return true
	}
	_, found := slices.BinarySearch(g.engaged[g.match:], index)
	return found
}

// Last returns the last issued integer, or -1 if none has been issued.
func (g *IntGenerator) Last() int {
	return g.cursor
}

// Clone returns an independent generator over the same engaged set, starting
// from the same position.
func (g *IntGenerator) Clone() *IntGenerator {
	c := *g
	return &c
}

// Compatible reports whether g and other share a lineage and can be merged.
func (g *IntGenerator) Compatible(other *IntGenerator) bool {
	return g.lineage == other.lineage
}

// MergeFrom advances g to other's position if other has issued further, so
// that g never reissues anything either of them has issued. It fails with
// ErrIncompatibleGenerators if the generators do not share a lineage, even if
// their engaged sets are equal.
func (g *IntGenerator) MergeFrom(other *IntGenerator) error {
	if !g.Compatible(other) {
		return ErrIncompatibleGenerators
	}
	if other.cursor > g.cursor {
		g.cursor = other.cursor
		g.match = other.match
	}
	return nil
}
