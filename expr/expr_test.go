package expr_test

import (
	"errors"
	"testing"

	redberry "github.com/MovGP0/NRedberry-sub004"
	"github.com/MovGP0/NRedberry-sub004/expr"
	"github.com/MovGP0/NRedberry-sub004/number"
	"github.com/MovGP0/NRedberry-sub004/transform"
)

func simplify[T expr.Scalar](t *testing.T, numbers *redberry.Parser[T], src string) *expr.Node[T] {
	t.Helper()
	n, err := expr.NewParser(numbers).Parse(src)
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	r, err := expr.Apply(n, expr.Simplify(numbers))
	if err != nil {
		t.Fatalf("%q failed to simplify: %v", src, err)
	}
	return r
}

func TestSimplifyReal(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	cases := []struct {
		src  string
		want string
	}{
		{"2*3 - 6/4", "9/2"},
		{"x", "x"},
		{"x + 3 + 4", "x + 7"},
		{"2*x + 3 + 4", "2*x + 7"},
		{"3 + x + 4", "7 + x"},
		{"(1+2)*(x+0)", "3*x"},
		{"x/2", "x*1/2"},
		{"x/(2*y)", "x*1/(2*y)"},
		{"1/0 + x", "Infinity + x"},
		{"x*0", "x*0"},
		{"x - x", "x + -1*x"},
		{"(x + y)*(1 + 1)", "(x + y)*2"},
		{"x1 + _y*1", "x1 + _y"},
		{"0.5 + x + 0.25", "3/4 + x"},
	}
	p := redberry.RealParser()
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			if got := simplify(t, p, c.src).String(); got != c.want {
				t.Errorf("%q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestSimplifyNumber(t *testing.T) {
	r := simplify(t, redberry.RealParser(), "(1 + 2)*(3 + 4)/7")
	v, ok := r.Value()
	if !ok || r.Kind() != expr.Number {
		t.Fatalf("want a number, got %v (%v)", r, r.Kind())
	}
	if !v.Equal(number.Int64(3)) {
		t.Errorf("want 3, got %v", v)
	}
}

func TestSimplifyComplex(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"I*I*x + 1", "-1*x + 1"},
		{"(1+I)*x", "(1+I)*x"},
		{"x/(1+I)", "x*(1/2-1/2*I)"},
	}
	p := redberry.ComplexParser()
	for _, c := range cases {
		if got := simplify(t, p, c.src).String(); got != c.want {
			t.Errorf("%q: want %s, got %s", c.src, c.want, got)
		}
	}
}

func TestSimplifyFixedPoint(t *testing.T) {
	p := redberry.RealParser()
	r := simplify(t, p, "2*x + 3*(y + 1) + 4")
	again, err := expr.Apply(r, expr.Simplify(p))
	if err != nil {
		t.Fatal(err)
	}
	if again != r {
		t.Error("simplifying a simplified tree must return it unchanged")
	}
	// Formatting round trips.
	back := simplify(t, p, r.String())
	if back.String() != r.String() {
		t.Errorf("reparsing %s gave %s", r, back)
	}
}

func TestBind(t *testing.T) {
	p := redberry.RealParser()
	n, err := expr.NewParser(p).Parse("2*x + y")
	if err != nil {
		t.Fatal(err)
	}
	bind := transform.PostOrder(expr.Bind(map[string]number.Real{"x": number.Int64(3)}))
	r, err := expr.Apply(n, transform.Sequence(bind, expr.Simplify(p)))
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "6 + y" {
		t.Errorf("want 6 + y, got %v", r)
	}
}

func TestRulesPreserveIdentity(t *testing.T) {
	f := number.Reals
	x := expr.Sym[number.Real]("x")
	n := expr.Add(x, expr.Mul(expr.Num(number.Int64(2)), x))
	rules := []transform.Transformation{
		expr.Materialize(redberry.RealParser()),
		expr.Bind(map[string]number.Real{"y": number.One}),
		expr.Flatten[number.Real](),
		expr.FoldNumbers(f),
		expr.DropIdentities(f),
	}
	for i, rule := range rules {
		r, err := transform.PostOrder(rule).Transform(n)
		if err != nil {
			t.Fatal(err)
		}
		if r != transform.Tree(n) {
			t.Errorf("rule %d rebuilt a tree it did not change", i)
		}
	}
}

func TestFlatten(t *testing.T) {
	one := expr.Num(number.One)
	x, y := expr.Sym[number.Real]("x"), expr.Sym[number.Real]("y")
	n := expr.Add(x, expr.Add(one, expr.Add(y)), expr.Mul(x, y))
	r, err := expr.Apply(n, transform.PostOrder(expr.Flatten[number.Real]()))
	if err != nil {
		t.Fatal(err)
	}
	if r.Size() != 4 || r.String() != "x + 1 + y + x*y" {
		t.Errorf("want x + 1 + y + x*y, got %v", r)
	}
}

func TestDropIdentities(t *testing.T) {
	f := number.Reals
	zero, one := expr.Num(number.Zero), expr.Num(number.One)
	x := expr.Sym[number.Real]("x")
	cases := []struct {
		n    *expr.Node[number.Real]
		want string
	}{
		{expr.Add(zero, x, zero), "x"},
		{expr.Mul(one, one), "1"},
		{expr.Add(zero), "0"},
		{expr.Mul(x, one, x), "x*x"},
		{expr.Add(x), "x"},
	}
	for _, c := range cases {
		r, err := expr.Apply(c.n, expr.DropIdentities(f))
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != c.want {
			t.Errorf("%v: want %s, got %s", c.n, c.want, r)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tp := expr.NewParser(redberry.RealParser())
	if _, err := tp.Parse("2 x"); !errors.Is(err, redberry.ErrMalformedExpression) {
		t.Errorf("want ErrMalformedExpression, got %v", err)
	}
	if _, err := tp.Parse("(x"); !errors.Is(err, redberry.ErrUnbalancedBrackets) {
		t.Errorf("want ErrUnbalancedBrackets, got %v", err)
	}
	n, err := tp.Parse("x + I")
	if err != nil {
		t.Fatal(err)
	}
	if k := n.Arg(1).Kind(); k != expr.Symbol {
		t.Errorf("I is a symbol over the reals, got %v", k)
	}
}

func TestParseConstantAfterLeaf(t *testing.T) {
	tp := expr.NewParser(redberry.RealParser(),
		redberry.Constant("c'", expr.Num(number.Int64(3))))
	n, err := tp.Parse("2*c' + x")
	if err != nil {
		t.Fatalf("a constant that is not a name should reach its recognizer: %v", err)
	}
	r, err := expr.Apply(n, expr.Simplify(redberry.RealParser()))
	if err != nil {
		t.Fatal(err)
	}
	if s := r.String(); s != "6 + x" {
		t.Errorf("want 6 + x, got %s", s)
	}
	_, err = tp.Parse("1 + 1.2.3")
	var me *redberry.MalformedExpressionError
	if !errors.As(err, &me) || me.Col != 5 || me.Text != "1.2.3" {
		t.Errorf("a bad number is still malformed at its column, got %v", err)
	}
}

func TestMaterializeError(t *testing.T) {
	p := redberry.RealParser()
	n := expr.Add(expr.Sym[number.Real]("x"), expr.Lit[number.Real]("1.2.3"))
	r, err := expr.Apply(n, expr.Simplify(p))
	if !errors.Is(err, redberry.ErrMalformedExpression) {
		t.Fatalf("want ErrMalformedExpression, got %v", err)
	}
	if r != n {
		t.Errorf("a failed simplification must return its input, got %v", r)
	}
}
