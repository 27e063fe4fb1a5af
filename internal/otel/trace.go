package otel

import (
	"os"
	"sync/atomic"
)

var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(os.Getenv("SENTISCOPE_TRACE") != "")
}

// TraceEnabled reports whether SENTISCOPE_TRACE is set. When it is, the UI
// emits a KindMsgReceived event for every message it handles.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// SetTraceEnabled overrides the environment setting.
func SetTraceEnabled(v bool) {
	traceEnabled.Store(v)
}
