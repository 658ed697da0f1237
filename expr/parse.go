package expr

import (
	"unicode"

	redberry "github.com/MovGP0/NRedberry-sub004"
	"github.com/MovGP0/NRedberry-sub004/number"
)

// treeField builds trees instead of computing. It lets the expression parser
// produce trees with the same recognizers it uses for numbers.
type treeField[T Scalar] struct {
	f number.Field[T]
}

// Trees returns the field of expression trees over f. Its operations build
// nodes and never evaluate.
func Trees[T Scalar](f number.Field[T]) number.Field[*Node[T]] {
	return treeField[T]{f: f}
}

func (t treeField[T]) Zero() *Node[T] {
	return Num(t.f.Zero())
}

func (t treeField[T]) One() *Node[T] {
	return Num(t.f.One())
}

func (t treeField[T]) Add(x, y *Node[T]) *Node[T] {
	return Add(x, y)
}

func (t treeField[T]) Sub(x, y *Node[T]) *Node[T] {
	minusOne := t.f.Sub(t.f.Zero(), t.f.One())
	return Add(x, Mul(Num(minusOne), y))
}

func (t treeField[T]) Mul(x, y *Node[T]) *Node[T] {
	return Mul(x, y)
}

func (t treeField[T]) Div(x, y *Node[T]) *Node[T] {
	return Mul(x, Inv(y))
}

// NewParser creates a parser of expression trees. Fragments that numbers
// accepts become literal leaves; names become symbols.
func NewParser[T Scalar](numbers *redberry.Parser[T], opts ...redberry.ParseOption[*Node[T]]) *redberry.Parser[*Node[T]] {
	return redberry.NewParser(Trees(numbers.Field()), leaf(numbers), opts...)
}

// leaf claims numbers as literals and names as symbols. Other fragments are
// left to the rest of the chain.
func leaf[T Scalar](numbers *redberry.Parser[T]) redberry.Recognizer[*Node[T]] {
	return func(p *redberry.Parser[*Node[T]], f redberry.Fragment) (*Node[T], bool, error) {
		if _, err := numbers.ParseFragment(f); err == nil {
			return Lit[T](f.Text), true, nil
		}
		if isName(f.Text) {
			return Sym[T](f.Text), true, nil
		}
		return nil, false, nil
	}
}

// isName reports whether s is a letter or underscore followed by letters,
// digits and underscores.
func isName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
