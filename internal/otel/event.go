// Package otel records structured sentiscope events.
//
// Events are typed structs serialized as JSONL lines. The Logger writes them
// through a buffered channel drained by a background goroutine, and can mirror
// them into a RingBuffer for the in-app debug overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level is event severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind is "<subsystem>.<action>".
type EventKind string

const (
	// User actions
	KindSubmit    EventKind = "ui.submit"
	KindTimeframe EventKind = "ui.timeframe"
	KindCategory  EventKind = "ui.category"
	KindExpand    EventKind = "ui.expand"
	KindTheme     EventKind = "ui.theme"

	// Analysis requests
	KindAnalysisStart    EventKind = "analysis.start"
	KindAnalysisComplete EventKind = "analysis.complete"
	KindAnalysisError    EventKind = "analysis.error"
	KindAnalysisStale    EventKind = "analysis.stale"

	// System
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"

	// Message tracing, only when SENTISCOPE_TRACE is set
	KindMsgReceived EventKind = "trace.msg_received"
)

// Event is one observability record. Everything but Kind and Time is optional.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"` // "ui", "analysis", "main"
	SessionID string         `json:"session_id,omitempty"`
	RequestID string         `json:"rid,omitempty"` // analysis request correlation
	Source    string         `json:"source,omitempty"`
	Timeframe string         `json:"timeframe,omitempty"`
	Category  string         `json:"category,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"` // filled from Dur when marshaled
	Count     int            `json:"count,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON converts Dur to DurMs.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	a := alias(e)
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}
