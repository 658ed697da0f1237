package number

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// MaxExactExponent bounds the decimal exponent that RealFromDecimal expands
// exactly. Larger exponents saturate to an infinity, smaller ones to zero.
const MaxExactExponent = 1 << 16

// RealFromDecimal converts a decimal to the extended rational with exactly the
// same value, e.g. 1.25 becomes 5/4.
func RealFromDecimal(d *apd.Decimal) Real {
	sign := 1
	if d.Negative {
		sign = -1
	}
	switch d.Form {
	case apd.Infinite:
		return Inf(sign)
	case apd.NaN, apd.NaNSignaling:
		return NaN()
	}
	coeff := d.Coeff.MathBigInt()
	if coeff.Sign() == 0 {
		return Zero
	}
	if d.Negative {
		coeff.Neg(coeff)
	}
	exp := int64(d.Exponent)
	switch {
	case exp > MaxExactExponent:
		return Inf(sign)
	case exp < -MaxExactExponent:
		return Zero
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(abs64(exp)), nil)
	if exp >= 0 {
		return FromInt(coeff.Mul(coeff, scale))
	}
	return fromRat(new(big.Rat).SetFrac(coeff, scale))
}

// ComplexFromDecimal converts a decimal to a numeric complex number with zero
// imaginary part.
func ComplexFromDecimal(d *apd.Decimal) Complex {
	f, err := d.Float64()
	if err != nil {
		// Out of range; the exact conversion saturates to Infinity or zero.
		return Numeric(complex(RealFromDecimal(d).Float64(), 0))
	}
	return Numeric(complex(f, 0))
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
