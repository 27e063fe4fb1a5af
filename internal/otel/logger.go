package otel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// queueSize bounds the number of events waiting for the writer.
const queueSize = 2048

type entry struct {
	line []byte
	ev   Event
}

// Logger writes events as JSONL from a background goroutine.
// Emit never blocks: when the queue is full or the logger is closed the
// event is counted as dropped.
//
// The drain goroutine is the only reader of queue and the only writer to w.
// mu guards ring alone and is released before the ring is pushed to.
type Logger struct {
	mu      sync.Mutex
	ring    *RingBuffer
	session string
	queue   chan entry
	w       io.Writer
	dropped atomic.Uint64
	closed  atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// NewLogger starts a Logger that writes to w. Close it to flush.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		session: uuid.NewString(),
		queue:   make(chan entry, queueSize),
		w:       w,
		done:    make(chan struct{}),
	}
	go l.drain()
	return l
}

// NewNullLogger discards every event. Used by tests and when the event log
// cannot be opened.
func NewNullLogger() *Logger {
	return NewLogger(io.Discard)
}

func (l *Logger) drain() {
	defer close(l.done)
	for e := range l.queue {
		if _, err := l.w.Write(e.line); err != nil {
			l.dropped.Add(1)
		}
		l.mu.Lock()
		ring := l.ring
		l.mu.Unlock()
		if ring != nil {
			ring.Push(e.ev)
		}
	}
}

// Emit stamps Time (when zero) and SessionID and queues the event.
// Safe to call concurrently with Close.
func (l *Logger) Emit(e Event) {
	defer func() {
		// send on a queue closed between the check below and the send
		if recover() != nil {
			l.dropped.Add(1)
		}
	}()

	if l.closed.Load() {
		l.dropped.Add(1)
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	e.SessionID = l.session

	line, err := json.Marshal(e)
	if err != nil {
		l.dropped.Add(1)
		return
	}
	line = append(line, '\n')

	select {
	case l.queue <- entry{line: line, ev: e}:
	default:
		l.dropped.Add(1)
	}
}

// Info emits an info-level event.
func (l *Logger) Info(kind EventKind, comp, msg string) {
	l.Emit(Event{Level: LevelInfo, Kind: kind, Comp: comp, Msg: msg})
}

// Warn emits a warn-level event.
func (l *Logger) Warn(kind EventKind, comp, msg string) {
	l.Emit(Event{Level: LevelWarn, Kind: kind, Comp: comp, Msg: msg})
}

// Error emits an error-level event. A nil err is recorded as empty.
func (l *Logger) Error(kind EventKind, comp string, err error) {
	var s string
	if err != nil {
		s = err.Error()
	}
	l.Emit(Event{Level: LevelError, Kind: kind, Comp: comp, Err: s})
}

// SetRingBuffer mirrors subsequent events into buf.
func (l *Logger) SetRingBuffer(buf *RingBuffer) {
	l.mu.Lock()
	l.ring = buf
	l.mu.Unlock()
}

// SessionID identifies this run in every emitted event.
func (l *Logger) SessionID() string {
	return l.session
}

// Dropped counts events lost since creation.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Close flushes queued events and stops the writer. Later Emit calls are
// dropped.
func (l *Logger) Close() {
	l.once.Do(func() {
		l.closed.Store(true)
		close(l.queue)
		<-l.done
		if d := l.dropped.Load(); d > 0 {
			fmt.Fprintf(os.Stderr, "sentiscope: %d events dropped in session %s\n", d, l.session)
		}
	})
}
