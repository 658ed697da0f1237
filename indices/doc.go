/*
Package indices allocates fresh indices for rewriting rules.

A rule that introduces new bound indices into an expression must not pick a
name that is already used there. IntGenerator issues integers while skipping
an engaged set fixed at construction; IndexGenerator keeps one IntGenerator per
index type tag.

Generators are not shared between concurrent mutators. A computation that
explores alternatives clones the generator per branch and merges the branches
back with MergeFrom, after which the merged generator issues nothing any
branch has issued. Merges are only allowed within a lineage, i.e. between a
generator and its clones: generators built independently over equal engaged
sets are still incompatible.
*/
package indices

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
