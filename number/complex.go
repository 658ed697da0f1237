package number

import (
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

// Complex is a complex number. An exact Complex has Real components. A
// numeric Complex holds a complex128 and results from non-exact literals;
// any operation involving a numeric operand is numeric.
type Complex struct {
	re, im  Real
	num     complex128
	numeric bool
}

var (
	// ComplexZero is the additive identity.
	ComplexZero = Complex{}
	// ComplexOne is the multiplicative identity.
	ComplexOne = Complex{re: One}
	// ImaginaryOne is the imaginary unit I.
	ImaginaryOne = Complex{im: One}
)

// NewComplex creates the exact complex number re + im*I.
func NewComplex(re, im Real) Complex {
	return Complex{re: re, im: im}
}

// FromReal creates an exact complex number with zero imaginary part.
func FromReal(re Real) Complex {
	return Complex{re: re}
}

// Numeric creates a non-exact complex number.
func Numeric(c complex128) Complex {
	return Complex{num: c, numeric: true}
}

// IsNumeric reports whether c is non-exact.
func (c Complex) IsNumeric() bool { return c.numeric }

// Re returns the real part of c. The real part of a numeric value is the
// exact rational equal to its float64.
func (c Complex) Re() Real {
	if c.numeric {
		return realFromFloat64(real(c.num))
	}
	return c.re
}

// Im returns the imaginary part of c.
func (c Complex) Im() Real {
	if c.numeric {
		return realFromFloat64(imag(c.num))
	}
	return c.im
}

func realFromFloat64(f float64) Real {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 0):
		return Inf(int(math.Copysign(1, f)))
	}
	return fromRat(new(big.Rat).SetFloat64(f))
}

// Complex128 returns the nearest complex128 to c.
func (c Complex) Complex128() complex128 {
	if c.numeric {
		return c.num
	}
	return complex(c.re.Float64(), c.im.Float64())
}

// IsReal reports whether the imaginary part of c is zero.
func (c Complex) IsReal() bool {
	if c.numeric {
		return imag(c.num) == 0
	}
	return c.im.IsZero()
}

// IsZero reports whether c is zero.
func (c Complex) IsZero() bool {
	if c.numeric {
		return c.num == 0
	}
	return c.re.IsZero() && c.im.IsZero()
}

// IsOne reports whether c is one.
func (c Complex) IsOne() bool {
	if c.numeric {
		return c.num == 1
	}
	return c.re.IsOne() && c.im.IsZero()
}

// IsNaN reports whether either component of c is NaN.
func (c Complex) IsNaN() bool {
	if c.numeric {
		return cmplx.IsNaN(c.num)
	}
	return c.re.IsNaN() || c.im.IsNaN()
}

// IsInf reports whether either component of c is infinite.
func (c Complex) IsInf() bool {
	if c.numeric {
		return cmplx.IsInf(c.num)
	}
	return c.re.IsInf() || c.im.IsInf()
}

// Equal reports whether c and d are equal. An exact value never equals a
// numeric one, and NaN components are never equal.
func (c Complex) Equal(d Complex) bool {
	if c.numeric != d.numeric {
		return false
	}
	if c.numeric {
		return c.num == d.num
	}
	return c.re.Equal(d.re) && c.im.Equal(d.im)
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	if c.numeric {
		return Numeric(-c.num)
	}
	return Complex{re: c.re.Neg(), im: c.im.Neg()}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	if c.numeric {
		return Numeric(cmplx.Conj(c.num))
	}
	return Complex{re: c.re, im: c.im.Neg()}
}

// Add returns c+d.
func (c Complex) Add(d Complex) Complex {
	if c.numeric || d.numeric {
		return Numeric(c.Complex128() + d.Complex128())
	}
	return Complex{re: c.re.Add(d.re), im: c.im.Add(d.im)}
}

// Sub returns c-d.
func (c Complex) Sub(d Complex) Complex {
	if c.numeric || d.numeric {
		return Numeric(c.Complex128() - d.Complex128())
	}
	return Complex{re: c.re.Sub(d.re), im: c.im.Sub(d.im)}
}

// Mul returns c*d. When one factor is purely real, the other is scaled
// component-wise, so an exactly zero imaginary part stays zero even when
// scaled by an infinity.
func (c Complex) Mul(d Complex) Complex {
	switch {
	case c.numeric || d.numeric:
		return Numeric(c.Complex128() * d.Complex128())
	case d.im.IsZero():
		return c.scale(d.re, Real.Mul)
	case c.im.IsZero():
		return d.scale(c.re, Real.Mul)
	}
	re := c.re.Mul(d.re).Sub(c.im.Mul(d.im))
	im := c.re.Mul(d.im).Add(c.im.Mul(d.re))
	return Complex{re: re, im: im}
}

// Div returns c/d. Division by a purely real d is component-wise, so 1/0 is
// Infinity rather than Infinity + NaN*I. A zero real part is divided like any
// other, so I/0 is NaN+Infinity*I.
func (c Complex) Div(d Complex) Complex {
	switch {
	case c.numeric || d.numeric:
		return Numeric(c.Complex128() / d.Complex128())
	case d.im.IsZero():
		return c.scale(d.re, Real.Div)
	}
	n := d.re.Mul(d.re).Add(d.im.Mul(d.im))
	re := c.re.Mul(d.re).Add(c.im.Mul(d.im)).Div(n)
	im := c.im.Mul(d.re).Sub(c.re.Mul(d.im)).Div(n)
	return Complex{re: re, im: im}
}

func (c Complex) scale(r Real, op func(Real, Real) Real) Complex {
	s := Complex{re: op(c.re, r)}
	if !c.im.IsZero() {
		s.im = op(c.im, r)
	}
	return s
}

// PowInt returns c^n.
func (c Complex) PowInt(n int64) Complex {
	if c.numeric {
		return Numeric(cmplx.Pow(c.num, complex(float64(n), 0)))
	}
	if c.im.IsZero() {
		return FromReal(c.re.PowInt(n))
	}
	if n < 0 {
		if n == minInt64 {
			return ComplexOne.Div(c.PowInt(-(n + 1)).Mul(c))
		}
		return ComplexOne.Div(c.PowInt(-n))
	}
	r := ComplexOne
	for b := c; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Mul(b)
		}
		b = b.Mul(b)
	}
	return r
}

// Pow returns c^d, exactly when both are exact and the result is an exact
// complex number, and numerically otherwise.
func (c Complex) Pow(d Complex) Complex {
	if !c.numeric && !d.numeric && d.im.IsZero() {
		if d.re.IsInteger() && d.re.rat().Num().IsInt64() {
			return c.PowInt(d.re.rat().Num().Int64())
		}
		if c.im.IsZero() && c.re.Sign() >= 0 {
			if r, ok := c.re.Pow(d.re); ok {
				return FromReal(r)
			}
		}
	}
	return Numeric(cmplx.Pow(c.Complex128(), d.Complex128()))
}

// String formats c as "a", "b*I" or "a+b*I".
func (c Complex) String() string {
	if c.numeric {
		return formatParts(formatFloat(real(c.num)), formatFloat(imag(c.num)), real(c.num) == 0, imag(c.num) == 0)
	}
	return formatParts(c.re.String(), c.im.String(), c.re.IsZero(), c.im.IsZero())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatParts(re, im string, reZero, imZero bool) string {
	if imZero {
		return re
	}
	switch im {
	case "1":
		im = "I"
	case "-1":
		im = "-I"
	default:
		im += "*I"
	}
	if reZero {
		return im
	}
	if strings.HasPrefix(im, "-") {
		return re + im
	}
	return re + "+" + im
}
