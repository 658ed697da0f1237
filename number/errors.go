package number

import "errors"

var (
	// ErrDivisionByZero signals a zero denominator where the caller asked for
	// an ordinary rational rather than an extended one.
	ErrDivisionByZero = errors.New("number: division by zero")
)
