package number

import (
	"fmt"
	"math"
	"math/big"
)

type realKind uint8

const (
	finite realKind = iota
	posInf
	negInf
	nan
)

// Real is an extended rational number: a finite rational in lowest terms,
// positive or negative infinity, or NaN. The zero value is the finite 0.
//
// Reals are immutable. The rational held by a finite Real is never modified
// after construction, so Reals may be copied and shared freely.
type Real struct {
	kind realKind
	// r is nil for the finite zero.
	r *big.Rat
}

var zeroRat big.Rat

var (
	// Zero is the additive identity.
	Zero = Real{}
	// One is the multiplicative identity.
	One = Int64(1)
)

// NewReal creates the finite rational num/den. Unlike Fraction, a zero
// denominator is an error rather than an infinity.
func NewReal(num, den *big.Int) (Real, error) {
	if den.Sign() == 0 {
		return Real{}, fmt.Errorf("%w: %v/0", ErrDivisionByZero, num)
	}
	return fromRat(new(big.Rat).SetFrac(num, den)), nil
}

// Fraction creates num/den with extended semantics: a zero denominator gives
// an infinity with the sign of num, or NaN if num is also zero.
func Fraction(num, den *big.Int) Real {
	if den.Sign() == 0 {
		if num.Sign() == 0 {
			return NaN()
		}
		return Inf(num.Sign())
	}
	return fromRat(new(big.Rat).SetFrac(num, den))
}

// FromInt creates a finite Real equal to n.
func FromInt(n *big.Int) Real {
	return fromRat(new(big.Rat).SetInt(n))
}

// Int64 creates a finite Real equal to n.
func Int64(n int64) Real {
	return fromRat(new(big.Rat).SetInt64(n))
}

// FromRat creates a finite Real equal to r. r is copied.
func FromRat(r *big.Rat) Real {
	return fromRat(new(big.Rat).Set(r))
}

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf(sign int) Real {
	if sign < 0 {
		return Real{kind: negInf}
	}
	return Real{kind: posInf}
}

// NaN returns the indeterminate value.
func NaN() Real {
	return Real{kind: nan}
}

// fromRat wraps r without copying it. The caller must not retain r.
func fromRat(r *big.Rat) Real {
	if r.Sign() == 0 {
		return Real{}
	}
	return Real{r: r}
}

// rat returns the rational of a finite Real. The result must not be modified.
func (x Real) rat() *big.Rat {
	if x.r == nil {
		return &zeroRat
	}
	return x.r
}

// IsFinite reports whether x is a finite rational.
func (x Real) IsFinite() bool { return x.kind == finite }

// IsInf reports whether x is positive or negative infinity.
func (x Real) IsInf() bool { return x.kind == posInf || x.kind == negInf }

// IsNaN reports whether x is NaN.
func (x Real) IsNaN() bool { return x.kind == nan }

// IsZero reports whether x is the finite 0.
func (x Real) IsZero() bool { return x.kind == finite && x.rat().Sign() == 0 }

// IsOne reports whether x is the finite 1.
func (x Real) IsOne() bool { return x.kind == finite && x.rat().Cmp(One.r) == 0 }

// IsInteger reports whether x is a finite integer.
func (x Real) IsInteger() bool { return x.kind == finite && x.rat().IsInt() }

// Sign returns -1, 0 or +1 depending on the sign of x. The sign of NaN is 0.
func (x Real) Sign() int {
	switch x.kind {
	case finite:
		return x.rat().Sign()
	case posInf:
		return 1
	case negInf:
		return -1
	}
	return 0
}

// Rat returns a copy of the rational value of x. ok is false if x is not
// finite.
func (x Real) Rat() (r *big.Rat, ok bool) {
	if x.kind != finite {
		return nil, false
	}
	return new(big.Rat).Set(x.rat()), true
}

// Num returns a copy of the numerator of a finite x, or nil otherwise.
func (x Real) Num() *big.Int {
	if x.kind != finite {
		return nil
	}
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator of a finite x, or nil otherwise.
func (x Real) Denom() *big.Int {
	if x.kind != finite {
		return nil
	}
	return new(big.Int).Set(x.rat().Denom())
}

// Float64 returns the nearest float64 to x.
func (x Real) Float64() float64 {
	switch x.kind {
	case finite:
		f, _ := x.rat().Float64()
		return f
	case posInf:
		return math.Inf(1)
	case negInf:
		return math.Inf(-1)
	}
	return math.NaN()
}

// Float returns x rounded to a big.Float of the given precision. big.Float
// has no NaN, so the result for NaN is nil.
func (x Real) Float(prec uint) *big.Float {
	switch x.kind {
	case finite:
		return new(big.Float).SetPrec(prec).SetRat(x.rat())
	case posInf:
		return new(big.Float).SetPrec(prec).SetInf(false)
	case negInf:
		return new(big.Float).SetPrec(prec).SetInf(true)
	}
	return nil
}

// Equal reports whether x and y are the same extended rational. NaN is not
// equal to anything, including itself.
func (x Real) Equal(y Real) bool {
	if x.kind == nan || y.kind == nan || x.kind != y.kind {
		return false
	}
	if x.kind != finite {
		return true
	}
	return x.rat().Cmp(y.rat()) == 0
}

// Cmp compares x and y and returns -1, 0 or +1. Infinities order below and
// above every finite value. ok is false if either operand is NaN.
func (x Real) Cmp(y Real) (c int, ok bool) {
	if x.kind == nan || y.kind == nan {
		return 0, false
	}
	if x.kind == finite && y.kind == finite {
		return x.rat().Cmp(y.rat()), true
	}
	rank := func(k realKind) int {
		switch k {
		case negInf:
			return -1
		case posInf:
			return 1
		}
		return 0
	}
	a, b := rank(x.kind), rank(y.kind)
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// Neg returns -x.
func (x Real) Neg() Real {
	switch x.kind {
	case finite:
		return fromRat(new(big.Rat).Neg(x.rat()))
	case posInf:
		return Real{kind: negInf}
	case negInf:
		return Real{kind: posInf}
	}
	return x
}

// Inv returns 1/x.
func (x Real) Inv() Real {
	return One.Div(x)
}

// Add returns x+y. The sum of opposite infinities is NaN.
func (x Real) Add(y Real) Real {
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case x.kind == finite && y.kind == finite:
		return fromRat(new(big.Rat).Add(x.rat(), y.rat()))
	case x.kind == finite:
		return y
	case y.kind == finite, x.kind == y.kind:
		return x
	}
	return NaN()
}

// Sub returns x-y.
func (x Real) Sub(y Real) Real {
	return x.Add(y.Neg())
}

// Mul returns x*y. The product of two infinities is NaN, as is the product of
// zero and an infinity.
func (x Real) Mul(y Real) Real {
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case x.kind == finite && y.kind == finite:
		return fromRat(new(big.Rat).Mul(x.rat(), y.rat()))
	case x.kind != finite && y.kind != finite:
		return NaN()
	}
	s := x.Sign() * y.Sign()
	if s == 0 {
		return NaN()
	}
	return Inf(s)
}

// Div returns x/y. Division of a non-zero value by zero is an infinity with
// the sign of the dividend; 0/0 and ∞/∞ are NaN.
func (x Real) Div(y Real) Real {
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case y.IsZero():
		if x.IsZero() {
			return NaN()
		}
		return Inf(x.Sign())
	case x.kind == finite && y.kind == finite:
		return fromRat(new(big.Rat).Quo(x.rat(), y.rat()))
	case x.kind == finite:
		return Zero
	case y.kind != finite:
		return NaN()
	}
	return Inf(x.Sign() * y.Sign())
}

// String formats x as an integer, a fraction "p/q", "Infinity", "-Infinity"
// or "NaN".
func (x Real) String() string {
	switch x.kind {
	case finite:
		return x.rat().RatString()
	case posInf:
		return "Infinity"
	case negInf:
		return "-Infinity"
	}
	return "NaN"
}
