// Package eventlog keeps a bounded in-memory log of stage events.
package eventlog

import "time"

// DefaultCapacity bounds the log; the oldest entry is evicted first.
const DefaultCapacity = 50

// Event is one diagnostic entry.
type Event struct {
	At     time.Time `json:"at"`
	Kind   string    `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

// Log is a fixed-capacity ring of events. Not safe for concurrent use.
type Log struct {
	events []Event
	start  int
	cap    int
}

// New returns a log holding at most capacity events. A capacity below 1
// falls back to DefaultCapacity.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{cap: capacity}
}

// Append records an event, evicting the oldest when the log is full.
func (l *Log) Append(kind, detail string) {
	e := Event{At: time.Now().UTC(), Kind: kind, Detail: detail}
	if len(l.events) < l.cap {
		l.events = append(l.events, e)
		return
	}
	l.events[l.start] = e
	l.start = (l.start + 1) % l.cap
}

// Len returns the number of retained events.
func (l *Log) Len() int { return len(l.events) }

// Events returns the retained events, oldest first.
func (l *Log) Events() []Event {
	out := make([]Event, 0, len(l.events))
	for i := 0; i < len(l.events); i++ {
		out = append(out, l.events[(l.start+i)%l.cap])
	}
	return out
}
