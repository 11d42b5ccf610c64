// Package msglog is the append-only sink for human-readable game messages.
package msglog

// Sink receives game messages. Display and retention are up to the
// implementation.
type Sink interface {
	Push(msg string)
}

// DefaultCapacity is the number of lines a Log keeps when none is given.
const DefaultCapacity = 200

// Log keeps the most recent messages.
type Log struct {
	lines    []string
	capacity int
}

// New returns a Log holding at most capacity lines.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Push appends msg, dropping the oldest line when full.
func (l *Log) Push(msg string) {
	if l.capacity <= 0 {
		l.capacity = DefaultCapacity
	}
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:len(l.lines)-1]
	}
	l.lines = append(l.lines, msg)
}

// Lines returns every retained message, oldest first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Recent returns up to the last n messages, oldest first.
func (l *Log) Recent(n int) []string {
	n = max(n, 0)
	start := max(len(l.lines)-n, 0)
	return l.Lines()[start:]
}

// Len returns the number of retained messages.
func (l *Log) Len() int { return len(l.lines) }

// Discard drops every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Push(string) {}
