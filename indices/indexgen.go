package indices

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// IndexGenerator issues fresh indices per type tag. It is built from the
// indices already present in an expression, and never issues an index whose
// name is engaged, or already issued, for the same tag.
//
// Like IntGenerator, an IndexGenerator and its clones form a lineage and can
// be merged with each other but not with unrelated generators.
type IndexGenerator struct {
	lineage uuid.UUID
	gens    map[byte]*IntGenerator
}

// NewIndexGenerator creates a generator that avoids every name used by the
// given indices, per type tag. Raised and lowered forms of an index engage the
// same name.
func NewIndexGenerator(engaged ...int) *IndexGenerator {
	byTag := make(map[byte][]int)
	for _, index := range engaged {
		tag := Tag(index)
		byTag[tag] = append(byTag[tag], Name(index))
	}
	g := &IndexGenerator{
		lineage: uuid.New(),
		gens:    make(map[byte]*IntGenerator, len(byTag)),
	}
	for tag, names := range byTag {
		g.gens[tag] = newIntGenerator(g.tagLineage(tag), names)
	}
	T().Debugf("index generator %v engaged %d indices over %d tags", g.lineage, len(engaged), len(byTag))
	return g
}

// tagLineage derives the lineage of the generator for one tag. Clones share
// the parent lineage, so generators created lazily in different clones remain
// mergeable.
func (g *IndexGenerator) tagLineage(tag byte) uuid.UUID {
	return uuid.NewSHA1(g.lineage, []byte{tag})
}

func (g *IndexGenerator) generator(tag byte) *IntGenerator {
	gen := g.gens[tag]
	if gen == nil {
		gen = newIntGenerator(g.tagLineage(tag), nil)
		g.gens[tag] = gen
	}
	return gen
}

// Generate issues a fresh lowered index of the given type tag. Panics if tag
// exceeds MaxTag or if the tag has run out of names.
func (g *IndexGenerator) Generate(tag byte) int {
	if tag > MaxTag {
		panic(fmt.Sprintf("indices: tag %d exceeds %d", tag, MaxTag))
	}
	name := g.generator(tag).Next()
	if name > MaxName {
		T().Errorf("index generator %v exhausted names for tag %d", g.lineage, tag)
		panic(fmt.Sprintf("indices: no names left for tag %d", tag))
	}
	return Make(tag, name)
}

// Contains reports whether the name of index is engaged or already issued for
// its type tag.
func (g *IndexGenerator) Contains(index int) bool {
	gen := g.gens[Tag(index)]
	if gen == nil {
		return false
	}
	return gen.Contains(Name(index))
}

// Tags returns the type tags the generator has state for, in increasing
// order.
func (g *IndexGenerator) Tags() []byte {
	tags := make([]byte, 0, len(g.gens))
	for tag := range g.gens {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Clone returns an independent copy of g in the same lineage.
func (g *IndexGenerator) Clone() *IndexGenerator {
	c := &IndexGenerator{
		lineage: g.lineage,
		gens:    make(map[byte]*IntGenerator, len(g.gens)),
	}
	for tag, gen := range g.gens {
		c.gens[tag] = gen.Clone()
	}
	return c
}

// MergeFrom reconciles the indices issued by other into g, tag by tag, so
// that g issues nothing either of them has issued. Tags only other knows
// about are copied. On failure, g is left unchanged.
func (g *IndexGenerator) MergeFrom(other *IndexGenerator) error {
	if g.lineage != other.lineage {
		return ErrIncompatibleGenerators
	}
	for tag, o := range other.gens {
		if gen := g.gens[tag]; gen != nil && !gen.Compatible(o) {
			return ErrIncompatibleGenerators
		}
	}
	for tag, o := range other.gens {
		gen := g.gens[tag]
		if gen == nil {
			g.gens[tag] = o.Clone()
			continue
		}
		// Compatibility was checked above.
		_ = gen.MergeFrom(o)
	}
	return nil
}
