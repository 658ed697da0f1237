package expr

import (
	"strings"

	"github.com/MovGP0/NRedberry-sub004/transform"
)

// Scalar is the constraint on the numbers held by a tree. number.Real and
// number.Complex satisfy it.
type Scalar interface {
	IsZero() bool
	IsOne() bool
	String() string
}

// Kind is the kind of a node.
type Kind int8

const (
	None Kind = iota

	Number     // val
	Literal    // text, awaiting a number parser
	Symbol     // text is the name
	Sum        // sum of the children
	Product    // product of the children
	Reciprocal // 1 / the only child
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Literal:
		return "Literal"
	case Symbol:
		return "Symbol"
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Reciprocal:
		return "Reciprocal"
	}
	return "None"
}

// Node is a node of an expression tree. Nodes are immutable; rewriting builds
// new nodes and shares the unchanged ones.
type Node[T Scalar] struct {
	kind Kind
	val  T
	text string
	kids []*Node[T]
}

// Num returns a number leaf.
func Num[T Scalar](v T) *Node[T] {
	return &Node[T]{kind: Number, val: v}
}

// Lit returns a literal leaf holding the text of a number.
func Lit[T Scalar](text string) *Node[T] {
	return &Node[T]{kind: Literal, text: text}
}

// Sym returns a symbol leaf.
func Sym[T Scalar](name string) *Node[T] {
	return &Node[T]{kind: Symbol, text: name}
}

// Add returns the sum of terms.
func Add[T Scalar](terms ...*Node[T]) *Node[T] {
	return &Node[T]{kind: Sum, kids: append([]*Node[T](nil), terms...)}
}

// Mul returns the product of factors.
func Mul[T Scalar](factors ...*Node[T]) *Node[T] {
	return &Node[T]{kind: Product, kids: append([]*Node[T](nil), factors...)}
}

// Inv returns the reciprocal of x.
func Inv[T Scalar](x *Node[T]) *Node[T] {
	return &Node[T]{kind: Reciprocal, kids: []*Node[T]{x}}
}

// Kind returns the kind of n.
func (n *Node[T]) Kind() Kind {
	return n.kind
}

// Value returns the value of a number leaf. ok is false for other kinds.
func (n *Node[T]) Value() (v T, ok bool) {
	return n.val, n.kind == Number
}

// Text returns the text of a literal or the name of a symbol.
func (n *Node[T]) Text() string {
	return n.text
}

// Arg returns the i-th child.
func (n *Node[T]) Arg(i int) *Node[T] {
	return n.kids[i]
}

// Size returns the number of children.
func (n *Node[T]) Size() int {
	return len(n.kids)
}

// Child returns the i-th child.
func (n *Node[T]) Child(i int) transform.Tree {
	return n.kids[i]
}

// Builder returns a builder for a node of the same kind as n.
func (n *Node[T]) Builder() transform.Builder {
	return &builder[T]{proto: n}
}

type builder[T Scalar] struct {
	proto *Node[T]
	kids  []*Node[T]
}

func (b *builder[T]) Put(child transform.Tree) {
	b.kids = append(b.kids, child.(*Node[T]))
}

func (b *builder[T]) Build() transform.Tree {
	n := *b.proto
	n.kids = b.kids
	return &n
}

// Operator binding strength used when formatting.
const (
	precSum = iota
	precProduct
	precReciprocal
)

// String formats n so that parsing the result gives back an equivalent tree.
func (n *Node[T]) String() string {
	var b strings.Builder
	n.fmt(&b, precSum)
	return b.String()
}

func (n *Node[T]) fmt(b *strings.Builder, prec int) {
	switch n.kind {
	case Number:
		s := n.val.String()
		switch {
		case prec > precSum && len(s) > 1 && strings.ContainsAny(s[1:], "+-"):
			// Complex numbers like 1+2*I.
			s = "(" + s + ")"
		case prec > precProduct && strings.ContainsAny(s, "*/"):
			s = "(" + s + ")"
		}
		b.WriteString(s)
	case Literal, Symbol:
		b.WriteString(n.text)
	case Sum:
		if len(n.kids) == 0 {
			b.WriteByte('0')
			return
		}
		if prec > precSum {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		for i, k := range n.kids {
			if i > 0 {
				b.WriteString(" + ")
			}
			k.fmt(b, precSum)
		}
	case Product:
		if len(n.kids) == 0 {
			b.WriteByte('1')
			return
		}
		if prec > precProduct {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		for i, k := range n.kids {
			if i > 0 {
				b.WriteByte('*')
			}
			k.fmt(b, precProduct)
		}
	case Reciprocal:
		if prec > precProduct {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		b.WriteString("1/")
		n.kids[0].fmt(b, precReciprocal)
	default:
		panic("expr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
