// Package log holds logger adapters that are only useful inside this module.
package log

import (
	"sync"

	"github.com/bft-labs/implement/internal/ports"
)

// Entry is a single recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// Recorder implements ports.Logger by keeping every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, fields ...ports.Field) { r.record("debug", msg, fields) }
func (r *Recorder) Info(msg string, fields ...ports.Field)  { r.record("info", msg, fields) }
func (r *Recorder) Warn(msg string, fields ...ports.Field)  { r.record("warn", msg, fields) }
func (r *Recorder) Error(msg string, fields ...ports.Field) { r.record("error", msg, fields) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry{}, r.entries...)
}

// Find returns the first entry with the given message.
func (r *Recorder) Find(msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Message == msg {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) record(level, msg string, fields []ports.Field) {
	e := Entry{Level: level, Message: msg, Fields: make(map[string]any, len(fields))}
	for _, f := range fields {
		e.Fields[f.Key] = f.Value
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

var _ ports.Logger = (*Recorder)(nil)
