package number

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// PowInt returns x^n. 0^0, ∞^0 and NaN^n are NaN; 0^-n is +Infinity.
func (x Real) PowInt(n int64) Real {
	switch {
	case x.kind == nan:
		return x
	case n == 0:
		if x.IsZero() || x.IsInf() {
			return NaN()
		}
		return One
	case n < 0:
		if n == minInt64 {
			return One.Div(x.PowInt(-(n + 1)).Mul(x))
		}
		return One.Div(x.PowInt(-n))
	case x.kind == posInf:
		return x
	case x.kind == negInf:
		if n%2 == 0 {
			return Inf(1)
		}
		return x
	}
	e := big.NewInt(n)
	num := new(big.Int).Exp(x.rat().Num(), e, nil)
	den := new(big.Int).Exp(x.rat().Denom(), e, nil)
	return fromRat(new(big.Rat).SetFrac(num, den))
}

const minInt64 = -1 << 63

// Root returns the exact q-th root of x. ok is false if q is not positive or
// the root is not an extended rational, e.g. the square root of 2 or of a
// negative number.
func (x Real) Root(q int64) (r Real, ok bool) {
	switch {
	case q <= 0, x.kind == nan:
		return Real{}, false
	case q == 1:
		return x, true
	case x.kind == posInf:
		return x, true
	case x.kind == negInf:
		return x, q%2 == 1
	}
	s := x.Sign()
	if s < 0 && q%2 == 0 {
		return Real{}, false
	}
	a := new(big.Int).Abs(x.rat().Num())
	num, ok := intRoot(a, q)
	if !ok {
		return Real{}, false
	}
	den, ok := intRoot(x.rat().Denom(), q)
	if !ok {
		return Real{}, false
	}
	if s < 0 {
		num.Neg(num)
	}
	return fromRat(new(big.Rat).SetFrac(num, den)), true
}

// intRoot finds the exact q-th root of a non-negative integer. The candidate
// comes from a floating-point estimate and is verified with integer
// arithmetic.
func intRoot(a *big.Int, q int64) (*big.Int, bool) {
	if a.Cmp(big.NewInt(1)) <= 0 {
		return new(big.Int).Set(a), true
	}
	if q >= int64(a.BitLen()) {
		// The root is strictly between 1 and 2.
		return nil, false
	}
	prec := uint(a.BitLen())/uint(q) + 64
	fa := new(big.Float).SetPrec(prec).SetInt(a)
	w := new(big.Float).SetPrec(prec).SetInt64(1)
	w.Quo(w, new(big.Float).SetPrec(prec).SetInt64(q))
	est := bigfloat.Pow(new(big.Float).SetPrec(prec), fa, w)
	c, _ := est.Int(nil)
	e := big.NewInt(q)
	var p big.Int
	one := big.NewInt(1)
	c.Sub(c, one)
	for i := 0; i < 3; i++ {
		if c.Sign() > 0 {
			if p.Exp(c, e, nil).Cmp(a) == 0 {
				return c, true
			}
		}
		c.Add(c, one)
	}
	return nil, false
}

// Pow returns x^y when the result is an extended rational. ok is false if y
// is not finite or the power is irrational.
func (x Real) Pow(y Real) (r Real, ok bool) {
	if y.kind != finite {
		return Real{}, false
	}
	num, den := y.rat().Num(), y.rat().Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Real{}, false
	}
	if den.Int64() == 1 {
		return x.PowInt(num.Int64()), true
	}
	root, ok := x.Root(den.Int64())
	if !ok {
		return Real{}, false
	}
	return root.PowInt(num.Int64()), true
}
