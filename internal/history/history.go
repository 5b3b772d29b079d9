// Package history keeps a bounded, most-recent-first log of request outcomes
// for the dashboard's debug panel. Capacity is fixed: inserting beyond it
// evicts the oldest entry.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Capacity is the number of entries retained.
const Capacity = 10

// StatusError is the StatusText sentinel for requests that never produced a
// response (Status stays 0).
const StatusError = "error"

// Entry is one recorded request outcome. The executor records one entry per
// attempt, including each retry attempt.
type Entry struct {
	ID           string    `json:"id"`
	Method       string    `json:"method"`
	Endpoint     string    `json:"endpoint"`
	Status       int       `json:"status"`
	StatusText   string    `json:"statusText"`
	DurationMs   int64     `json:"durationMs"`
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"requestId,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// Recorder is safe for concurrent use. Subscribers are notified synchronously
// from Record; a panicking subscriber is isolated and cannot break the
// request or starve other subscribers.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	subs    map[int]func([]Entry)
	nextSub int
}

func NewRecorder() *Recorder {
	return &Recorder{subs: make(map[int]func([]Entry))}
}

// Record prepends e, truncates to Capacity and notifies subscribers with a
// snapshot of the new state.
func (r *Recorder) Record(e Entry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	r.mu.Lock()
	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > Capacity {
		r.entries = r.entries[:Capacity]
	}
	snap := make([]Entry, len(r.entries))
	copy(snap, r.entries)
	subs := make([]func([]Entry), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		notify(fn, snap)
	}
}

func notify(fn func([]Entry), snap []Entry) {
	defer func() { _ = recover() }()
	fn(snap)
}

// Snapshot returns a copy of the history, most recent first.
func (r *Recorder) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make([]Entry, len(r.entries))
	copy(snap, r.entries)
	return snap
}

// Subscribe registers fn and returns the matching unsubscribe function.
// Unsubscribe is idempotent.
func (r *Recorder) Subscribe(fn func([]Entry)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}
