package redberry

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/MovGP0/NRedberry-sub004/number"
)

// Literal creates a recognizer for numeric literals. Integers are decoded
// exactly and passed to integer. Decimal literals such as 1.25 or 6e-3 are
// decoded with apd and passed to decimal; a non-zero decimal whose exponent
// lies beyond ±number.MaxExactExponent is malformed. Anything else is offered
// to special, which may be nil. Fragments that match none of these are left
// to the rest of the chain.
func Literal[E any](integer func(*big.Int) E, decimal func(*apd.Decimal) E, special func(string) (E, bool)) Recognizer[E] {
	return func(p *Parser[E], f Fragment) (E, bool, error) {
		var zero E
		s := f.Text
		if isInteger(s) {
			n, ok := new(big.Int).SetString(s, 10)
			if ok {
				return integer(n), true, nil
			}
		}
		if isNumber(s) {
			d, _, err := apd.NewFromString(s)
			if err != nil || d.Coeff.Sign() != 0 && abs32(d.Exponent) > number.MaxExactExponent {
				return zero, false, &MalformedExpressionError{Col: f.Col, Text: s}
			}
			return decimal(d), true, nil
		}
		if special != nil {
			if v, ok := special(s); ok {
				return v, true, nil
			}
		}
		return zero, false, nil
	}
}

// isInteger reports whether s is a non-empty string of decimal digits.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func abs32(x int32) int64 {
	if x < 0 {
		return -int64(x)
	}
	return int64(x)
}

// realSpecial recognizes the names of infinity and NaN.
func realSpecial(s string) (number.Real, bool) {
	switch s {
	case "inf", "Inf", "Infinity", "∞":
		return number.Inf(1), true
	case "NaN":
		return number.NaN(), true
	}
	return number.Real{}, false
}

func complexInt(n *big.Int) number.Complex {
	return number.FromReal(number.FromInt(n))
}

func complexSpecial(s string) (number.Complex, bool) {
	if s == "I" {
		return number.ImaginaryOne, true
	}
	r, ok := realSpecial(s)
	return number.FromReal(r), ok
}

var (
	// RealLiteral recognizes extended rational literals. Decimal literals are
	// converted exactly, so 0.1 is 1/10.
	RealLiteral = Literal(number.FromInt, number.RealFromDecimal, realSpecial)
	// ComplexLiteral recognizes extended complex literals. Integers are exact;
	// decimal literals are numeric. I is the imaginary unit.
	ComplexLiteral = Literal(complexInt, number.ComplexFromDecimal, complexSpecial)
)
