// Package redberry parses arithmetic expressions into elements of a number
// field.
//
// A Parser owns an ordered chain of recognizers. Each recognizer looks at a
// fragment of the input and either claims it, parsing its parts recursively
// with the same chain, or passes. The default chain handles brackets, then
// sums, then products, then literals, which gives the usual precedence:
// "2+3*4" is 14 and "(2+3)*4" is 20. Arithmetic is that of the field, so over
// the extended rationals "1/0" is Infinity and "0/0" is NaN rather than an
// error.
//
// Parsing fails only on malformed input. Such errors implement InputError and
// report the column of the offending fragment.
package redberry

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer, or nowhere if it is unset.
func T() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	return tracing.NoOpTrace()
}
