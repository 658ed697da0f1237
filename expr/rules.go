package expr

import (
	"github.com/pkg/errors"

	redberry "github.com/MovGP0/NRedberry-sub004"
	"github.com/MovGP0/NRedberry-sub004/number"
	"github.com/MovGP0/NRedberry-sub004/transform"
)

// rule adapts a function on nodes to a transformation. Trees of other types
// are left alone.
func rule[T Scalar](fn func(n *Node[T]) (*Node[T], error)) transform.Transformation {
	return transform.Func(func(t transform.Tree) (transform.Tree, error) {
		n, ok := t.(*Node[T])
		if !ok {
			return t, nil
		}
		r, err := fn(n)
		if err != nil {
			return t, err
		}
		return r, nil
	})
}

// Materialize parses literal leaves into numbers with p.
func Materialize[T Scalar](p *redberry.Parser[T]) transform.Transformation {
	return rule(func(n *Node[T]) (*Node[T], error) {
		if n.kind != Literal {
			return n, nil
		}
		v, err := p.Parse(n.text)
		if err != nil {
			return n, errors.Wrapf(err, "literal %q", n.text)
		}
		return Num(v), nil
	})
}

// Bind replaces the symbols named in values by numbers.
func Bind[T Scalar](values map[string]T) transform.Transformation {
	return rule(func(n *Node[T]) (*Node[T], error) {
		if n.kind != Symbol {
			return n, nil
		}
		v, ok := values[n.text]
		if !ok {
			return n, nil
		}
		return Num(v), nil
	})
}

// Flatten merges sums that are terms of a sum and products that are factors
// of a product into their parent.
func Flatten[T Scalar]() transform.Transformation {
	return rule(func(n *Node[T]) (*Node[T], error) {
		if n.kind != Sum && n.kind != Product {
			return n, nil
		}
		nested := false
		for _, k := range n.kids {
			if k.kind == n.kind {
				nested = true
				break
			}
		}
		if !nested {
			return n, nil
		}
		kids := make([]*Node[T], 0, len(n.kids))
		for _, k := range n.kids {
			if k.kind == n.kind {
				kids = append(kids, k.kids...)
			} else {
				kids = append(kids, k)
			}
		}
		return &Node[T]{kind: n.kind, kids: kids}, nil
	})
}

// FoldNumbers combines the number children of sums and products into one,
// placed where the first of them was, and evaluates reciprocals of numbers.
func FoldNumbers[T Scalar](f number.Field[T]) transform.Transformation {
	return rule(func(n *Node[T]) (*Node[T], error) {
		var op func(x, y T) T
		switch n.kind {
		case Sum:
			op = f.Add
		case Product:
			op = f.Mul
		case Reciprocal:
			if k := n.kids[0]; k.kind == Number {
				return Num(f.Div(f.One(), k.val)), nil
			}
			return n, nil
		default:
			return n, nil
		}
		first, count := -1, 0
		for i, k := range n.kids {
			if k.kind == Number {
				if first < 0 {
					first = i
				}
				count++
			}
		}
		if count < 2 {
			return n, nil
		}
		acc := n.kids[first].val
		kids := make([]*Node[T], 0, len(n.kids)-count+1)
		for i, k := range n.kids {
			switch {
			case i == first:
				kids = append(kids, nil)
			case k.kind == Number:
				acc = op(acc, k.val)
			default:
				kids = append(kids, k)
			}
		}
		for i, k := range kids {
			if k == nil {
				kids[i] = Num(acc)
			}
		}
		return &Node[T]{kind: n.kind, kids: kids}, nil
	})
}

// DropIdentities removes zero terms from sums and unit factors from products.
// A sum or product left with one child is replaced by the child, and one left
// with none by the identity.
func DropIdentities[T Scalar](f number.Field[T]) transform.Transformation {
	return rule(func(n *Node[T]) (*Node[T], error) {
		var drop func(v T) bool
		var identity func() T
		switch n.kind {
		case Sum:
			drop = func(v T) bool { return v.IsZero() }
			identity = f.Zero
		case Product:
			drop = func(v T) bool { return v.IsOne() }
			identity = f.One
		default:
			return n, nil
		}
		var kids []*Node[T]
		for i, k := range n.kids {
			if k.kind == Number && drop(k.val) {
				if kids == nil {
					kids = append(make([]*Node[T], 0, len(n.kids)-1), n.kids[:i]...)
				}
				continue
			}
			if kids != nil {
				kids = append(kids, k)
			}
		}
		if kids == nil {
			kids = n.kids
		}
		switch len(kids) {
		case 0:
			return Num(identity()), nil
		case 1:
			return kids[0], nil
		}
		if len(kids) == len(n.kids) {
			return n, nil
		}
		return &Node[T]{kind: n.kind, kids: kids}, nil
	})
}

// Simplify materializes literals with p and folds numbers until nothing
// changes. Symbols are kept; products with a zero factor are not folded, since
// the other factors may be infinite.
func Simplify[T Scalar](p *redberry.Parser[T]) transform.Transformation {
	f := p.Field()
	pass := transform.Sequence(Materialize(p), Flatten[T](), FoldNumbers(f), DropIdentities(f))
	return transform.UntilUnchanged(transform.Unbounded, transform.PostOrder(pass))
}

// Apply applies t to n. On error, the tree returned is the one t reported
// with it.
func Apply[T Scalar](n *Node[T], t transform.Transformation) (*Node[T], error) {
	r, err := t.Transform(n)
	if r == nil {
		return n, err
	}
	return r.(*Node[T]), err
}
