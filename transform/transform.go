package transform

import (
	"github.com/pkg/errors"
)

// Tree is a node of an expression tree that transformations rewrite.
//
// Trees are compared by identity: two Trees are the same if they are equal as
// interface values. Implementations must therefore be pointer types, and a
// node is never modified once other code can see it.
type Tree interface {
	// Size returns the number of children.
	Size() int
	// Child returns the i-th child, 0 <= i < Size().
	Child(i int) Tree
	// Builder returns a builder for a node of the same kind as this one.
	Builder() Builder
}

// Builder accumulates children for a new node.
type Builder interface {
	// Put appends the next child.
	Put(child Tree)
	// Build returns the new node.
	Build() Tree
}

// Transformation rewrites a tree. A transformation that makes no change must
// return the very tree it was given; fixed point detection depends on it.
type Transformation interface {
	Transform(t Tree) (Tree, error)
}

// Func adapts a function to a Transformation.
type Func func(t Tree) (Tree, error)

// Transform calls f(t).
func (f Func) Transform(t Tree) (Tree, error) {
	return f(t)
}

// Identity is the transformation that changes nothing.
var Identity Transformation = Func(func(t Tree) (Tree, error) { return t, nil })

// Same reports whether a and b are the same node.
func Same(a, b Tree) bool {
	return a == b
}

// ApplySequentially applies each rule once, in order, passing the result of
// one to the next. The first error aborts the sequence; the tree returned with
// it is the input of the failing rule.
func ApplySequentially(t Tree, rules ...Transformation) (Tree, error) {
	for i, rule := range rules {
		r, err := rule.Transform(t)
		if err != nil {
			return t, errors.Wrapf(err, "rule %d", i)
		}
		t = r
	}
	return t, nil
}

// ApplyToEachChild applies rule to every child of t and returns a node with
// the results. While the rule returns children unchanged, no node is
// allocated; if no child changes, t itself is returned. At most one new node
// is built.
func ApplyToEachChild(t Tree, rule Transformation) (Tree, error) {
	var b Builder
	n := t.Size()
	for i := 0; i < n; i++ {
		c := t.Child(i)
		r, err := rule.Transform(c)
		if err != nil {
			return t, errors.Wrapf(err, "child %d", i)
		}
		if b == nil {
			if Same(r, c) {
				continue
			}
			b = t.Builder()
			for j := 0; j < i; j++ {
				b.Put(t.Child(j))
			}
		}
		b.Put(r)
	}
	if b == nil {
		return t, nil
	}
	return b.Build(), nil
}

// Unbounded disables the pass limit of ApplyUntilUnchanged.
const Unbounded = -1

// ApplyUntilUnchanged applies the rules in sequence to the whole tree,
// repeatedly, until a pass returns the tree it started from. limit bounds the
// number of passes that may change the tree; Unbounded or any negative limit
// means no bound. When the limit is exceeded, the result is the last tree
// produced together with a *DidNotConvergeError. A rule error aborts all
// remaining rules and passes and is returned with the last tree that a
// complete pass produced.
func ApplyUntilUnchanged(t Tree, limit int, rules ...Transformation) (Tree, error) {
	changes := 0
	for pass := 1; ; pass++ {
		r, err := ApplySequentially(t, rules...)
		if err != nil {
			T().Errorf("transform: pass %d failed: %v", pass, err)
			return t, errors.Wrapf(err, "pass %d", pass)
		}
		if Same(r, t) {
			T().Debugf("transform: fixed point after %d passes", pass)
			return t, nil
		}
		t = r
		changes++
		if limit >= 0 && changes > limit {
			T().Infof("transform: no fixed point within %d passes", limit)
			return t, &DidNotConvergeError{Limit: limit}
		}
	}
}
