/*
Package transform composes tree rewriting rules and drives them to a fixed
point.

The engine knows nothing about the trees it rewrites beyond the Tree contract:
a fixed number of ordered children, a way to build a node of the same kind
from new children, and identity. Rules signal "no change" by returning the
tree they were given, which makes the fixed point test a pointer comparison.
ApplyToEachChild preserves identity when no child changes, so rules built from
it compose without breaking the test.

A rule that rebuilds an unchanged tree does not make rewriting incorrect, it
only costs passes: the engine never stops early on a tree that still changes.
*/
package transform

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
