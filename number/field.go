package number

// Field is the capability a number type must provide to be combined by
// generic algorithms: two identities and the four field operations. The
// operations are total; exceptional results are values (Infinity, NaN), not
// errors.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Div(x, y T) T
}

type realField struct{}

func (realField) Zero() Real {
	return Zero
}

func (realField) One() Real {
	return One
}

func (realField) Add(x, y Real) Real {
	return x.Add(y)
}

func (realField) Sub(x, y Real) Real {
	return x.Sub(y)
}

func (realField) Mul(x, y Real) Real {
	return x.Mul(y)
}

func (realField) Div(x, y Real) Real {
	return x.Div(y)
}

type complexField struct{}

func (complexField) Zero() Complex {
	return ComplexZero
}

func (complexField) One() Complex {
	return ComplexOne
}

func (complexField) Add(x, y Complex) Complex {
	return x.Add(y)
}

func (complexField) Sub(x, y Complex) Complex {
	return x.Sub(y)
}

func (complexField) Mul(x, y Complex) Complex {
	return x.Mul(y)
}

func (complexField) Div(x, y Complex) Complex {
	return x.Div(y)
}

var (
	// Reals is the field of extended rationals.
	Reals Field[Real] = realField{}
	// Complexes is the field of complex numbers over the extended rationals.
	Complexes Field[Complex] = complexField{}
)
