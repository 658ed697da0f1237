package indices

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// setupTracing routes the core tracer to t's log at debug level. The returned
// teardown restores the previous tracer.
func setupTracing(t *testing.T) func() {
	prev := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return func() {
		gtrace.CoreTracer = prev
	}
}
