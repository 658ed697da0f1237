package redberry

import (
	"strings"

	"github.com/MovGP0/NRedberry-sub004/number"
)

// Expr = Group | Sum | Product | Literal
// Group = '(' Expr ')'
// Sum = [ '+' | '-' ] Expr { ( '+' | '-' ) Expr }
// Product = Expr { ( '*' | '/' ) Expr }
// Literal = integer | decimal | special | constant

// Recognizer tries to parse a fragment. It returns ok false with a nil error
// if the fragment is not its kind of expression, letting the next recognizer
// in the chain try. Recognizers parse subexpressions with p.ParseFragment.
type Recognizer[E any] func(p *Parser[E], f Fragment) (v E, ok bool, err error)

// Parser parses expressions into elements of a field. A Parser is immutable
// and safe for concurrent use.
type Parser[E any] struct {
	field  number.Field[E]
	chain  []Recognizer[E]
	consts map[string]E
}

// NewParser creates a parser over field. The chain tries brackets, sums,
// products, the recognizers added by options, literal, and finally named
// constants. literal is the recognizer for the field's numbers.
func NewParser[E any](field number.Field[E], literal Recognizer[E], opts ...ParseOption[E]) *Parser[E] {
	var ctx parsectx[E]
	for _, opt := range opts {
		opt.parseOption(&ctx)
	}
	chain := []Recognizer[E]{Brackets[E], Additive[E], Multiplicative[E]}
	chain = append(chain, ctx.extra...)
	chain = append(chain, literal)
	if len(ctx.consts) > 0 {
		chain = append(chain, constant[E])
	}
	return &Parser[E]{
		field:  field,
		chain:  chain,
		consts: ctx.consts,
	}
}

// Field returns the field the parser computes in.
func (p *Parser[E]) Field() number.Field[E] {
	return p.field
}

// Parse parses and evaluates an expression. Errors resulting from invalid
// input implement InputError.
func (p *Parser[E]) Parse(expression string) (E, error) {
	if err := checkBrackets(expression); err != nil {
		T().Debugf("redberry: parse %q: %v", expression, err)
		var zero E
		return zero, err
	}
	v, err := p.ParseFragment(Fragment{Text: expression, Col: 1})
	if err != nil {
		T().Debugf("redberry: parse %q: %v", expression, err)
	}
	return v, err
}

// ParseFragment parses a fragment of a larger input by trying each recognizer
// in turn. The first one to claim the fragment decides the result.
func (p *Parser[E]) ParseFragment(f Fragment) (E, error) {
	var zero E
	f = f.trim()
	if f.Text == "" {
		return zero, &MalformedExpressionError{Col: f.Col}
	}
	for _, r := range p.chain {
		v, ok, err := r(p, f)
		if err != nil {
			return zero, err
		}
		if ok {
			return v, nil
		}
	}
	return zero, &MalformedExpressionError{Col: f.Col, Text: f.Text}
}

// Brackets recognizes a fragment enclosed in one pair of brackets and parses
// its interior.
func Brackets[E any](p *Parser[E], f Fragment) (E, bool, error) {
	var zero E
	ok, err := spansBrackets(f)
	if !ok || err != nil {
		return zero, false, err
	}
	inner := f.sub(1, len(f.Text)-1)
	if strings.TrimSpace(inner.Text) == "" {
		return zero, false, &MalformedExpressionError{Col: f.Col, Text: f.Text}
	}
	v, err := p.ParseFragment(inner)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Additive recognizes sums and differences outside brackets. A sign that
// starts the fragment applies to the first term, so -3+2 is 0-3+2.
func Additive[E any](p *Parser[E], f Fragment) (E, bool, error) {
	return p.fold(f, '+', '-', true, p.field.Zero(), p.field.Add, p.field.Sub)
}

// Multiplicative recognizes products and quotients outside brackets.
func Multiplicative[E any](p *Parser[E], f Fragment) (E, bool, error) {
	return p.fold(f, '*', '/', false, p.field.One(), p.field.Mul, p.field.Div)
}

// fold splits f at direct and inverse and combines the parsed terms from left
// to right, starting with acc.
func (p *Parser[E]) fold(f Fragment, direct, inverse byte, unary bool, acc E, do, undo func(x, y E) E) (E, bool, error) {
	var zero E
	terms, err := splitTerms(f, direct, inverse, unary)
	if err != nil || terms == nil {
		return zero, false, err
	}
	for _, t := range terms {
		if strings.TrimSpace(t.frag.Text) == "" {
			col := f.Col
			if t.op >= 0 {
				col = f.col(t.op)
			}
			return zero, false, &MalformedExpressionError{Col: col}
		}
		v, err := p.ParseFragment(t.frag)
		if err != nil {
			return zero, false, err
		}
		if t.inverse {
			acc = undo(acc, v)
		} else {
			acc = do(acc, v)
		}
	}
	return acc, true, nil
}

// constant recognizes the names set with Constant and Constants.
func constant[E any](p *Parser[E], f Fragment) (E, bool, error) {
	v, ok := p.consts[f.Text]
	return v, ok, nil
}

// RealParser creates a parser over the extended rationals.
func RealParser(opts ...ParseOption[number.Real]) *Parser[number.Real] {
	return NewParser(number.Reals, RealLiteral, opts...)
}

// ComplexParser creates a parser over the extended complex numbers. It
// recognizes I as the imaginary unit.
func ComplexParser(opts ...ParseOption[number.Complex]) *Parser[number.Complex] {
	return NewParser(number.Complexes, ComplexLiteral, opts...)
}

var (
	defaultReal    = RealParser()
	defaultComplex = ComplexParser()
)

// ParseReal parses an expression over the extended rationals with no named
// constants.
func ParseReal(expression string) (number.Real, error) {
	return defaultReal.Parse(expression)
}

// ParseComplex parses an expression over the extended complex numbers with no
// named constants.
func ParseComplex(expression string) (number.Complex, error) {
	return defaultComplex.Parse(expression)
}
