package number_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/MovGP0/NRedberry-sub004/number"
)

func cx(re, im number.Real) number.Complex {
	return number.NewComplex(re, im)
}

func TestComplexArithmetic(t *testing.T) {
	i := number.ImaginaryOne
	a := cx(number.Int64(1), number.Int64(2))
	b := cx(number.Int64(3), number.Int64(-1))
	cases := []struct {
		name string
		got  number.Complex
		want string
	}{
		{"i-squared", i.Mul(i), "-1"},
		{"add", a.Add(b), "4+I"},
		{"sub", a.Sub(b), "-2+3*I"},
		{"mul", a.Mul(b), "5+5*I"},
		{"div", a.Div(b), "1/10+7/10*I"},
		{"div-real", a.Div(number.FromReal(number.Int64(2))), "1/2+I"},
		{"one-over-zero", number.ComplexOne.Div(number.ComplexZero), "Infinity"},
		{"zero-over-zero", number.ComplexZero.Div(number.ComplexZero), "NaN"},
		{"i-over-zero", i.Div(number.ComplexZero), "NaN+Infinity*I"},
		{"scale-by-inf", number.ComplexOne.Mul(number.FromReal(number.Inf(1))), "Infinity"},
		{"neg", a.Neg(), "-1-2*I"},
		{"conj", a.Conj(), "1-2*I"},
		{"pure-imaginary", i.Mul(number.FromReal(number.Int64(-3))), "-3*I"},
		{"minus-i", i.Neg(), "-I"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if s := c.got.String(); s != c.want {
				t.Errorf("want %s, got %s", c.want, s)
			}
			if c.got.IsNumeric() {
				t.Error("exact operands must give an exact result")
			}
		})
	}
}

func TestComplexNumericContagion(t *testing.T) {
	n := number.Numeric(complex(0.5, 0))
	r := n.Add(number.ImaginaryOne)
	if !r.IsNumeric() {
		t.Fatal("numeric operand must give a numeric result")
	}
	if r.Complex128() != complex(0.5, 1) {
		t.Errorf("want (0.5+1i), got %v", r.Complex128())
	}
	if s := r.String(); s != "0.5+I" {
		t.Errorf("want 0.5+I, got %s", s)
	}
	if r.Equal(number.NewComplex(number.Fraction(bigInt(1), bigInt(2)), number.One)) {
		t.Error("numeric and exact values must not compare equal")
	}
	if re := r.Re().String(); re != "1/2" {
		t.Errorf("real part of numeric 0.5 should be 1/2, got %s", re)
	}
}

func TestComplexPredicates(t *testing.T) {
	nan := number.FromReal(number.NaN())
	if !nan.IsNaN() || nan.Equal(nan) {
		t.Error("NaN complex should be NaN and unequal to itself")
	}
	inf := number.NewComplex(number.Zero, number.Inf(-1))
	if !inf.IsInf() {
		t.Error("imaginary infinity should be infinite")
	}
	if !number.Numeric(cmplx.Inf()).IsInf() {
		t.Error("numeric infinity should be infinite")
	}
	if !number.ComplexOne.IsOne() || !number.ComplexZero.IsZero() {
		t.Error("identities misclassified")
	}
	if number.ImaginaryOne.IsReal() || !number.ComplexOne.IsReal() {
		t.Error("IsReal misclassifies")
	}
	if f := number.FromReal(number.Inf(1)).Complex128(); !math.IsInf(real(f), 1) {
		t.Errorf("want +Inf real part, got %v", f)
	}
}

func TestComplexPow(t *testing.T) {
	i := number.ImaginaryOne
	cases := []struct {
		name string
		got  number.Complex
		want string
	}{
		{"i^2", i.PowInt(2), "-1"},
		{"i^3", i.PowInt(3), "-I"},
		{"i^-1", i.PowInt(-1), "-I"},
		{"i^min", i.PowInt(math.MinInt64), "1"},
		{"i^max", i.PowInt(math.MaxInt64), "-I"},
		{"1+i^2", cx(number.One, number.One).PowInt(2), "2*I"},
		{"sqrt4", number.FromReal(number.Int64(4)).Pow(number.FromReal(frac(1, 2))), "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if s := c.got.String(); s != c.want {
				t.Errorf("want %s, got %s", c.want, s)
			}
		})
	}
	sqrt2 := number.FromReal(number.Int64(2)).Pow(number.FromReal(frac(1, 2)))
	if !sqrt2.IsNumeric() {
		t.Fatal("irrational power should be numeric")
	}
	if d := math.Abs(real(sqrt2.Complex128()) - math.Sqrt2); d > 1e-12 {
		t.Errorf("sqrt(2) off by %g", d)
	}
}
