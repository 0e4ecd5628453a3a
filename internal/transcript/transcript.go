// Package transcript holds the append-only session transcript: the ordered
// command/response log the presentation layer renders.
package transcript

import "sync"

// Log is an append-only, ordered sequence of display lines. Every command
// reserves a sequence number at issue time and appends its lines under
// that number on completion; lines are released strictly in sequence
// order, so a slow early command never lands after a fast later one.
//
// Callers must not append under a sequence number reserved before the
// last Reset: identity changes reset the transcript, and results from
// the old identity are discarded upstream.
type Log struct {
	mu          sync.Mutex
	nextIssue   uint64
	nextRelease uint64
	lines       []string
	pending     map[uint64][]string
	subs        map[uint64]func(line string)
	nextSubID   uint64
}

// New creates an empty transcript.
func New() *Log {
	return &Log{pending: make(map[uint64][]string)}
}

// Reserve hands out the next sequence number. Call once per submitted
// command, before any suspension point.
func (l *Log) Reserve() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	seq := l.nextIssue
	l.nextIssue++
	return seq
}

// Append records the lines for seq and releases every contiguous pending
// entry. Out-of-order completions are buffered until their turn.
func (l *Log) Append(seq uint64, lines ...string) {
	l.mu.Lock()
	l.pending[seq] = lines
	released := l.flushLocked()
	subs := l.subsSnapshotLocked()
	l.mu.Unlock()

	for _, line := range released {
		for _, fn := range subs {
			fn(line)
		}
	}
}

// Skip releases seq with no lines, so a discarded command does not stall
// the commands queued behind it.
func (l *Log) Skip(seq uint64) {
	l.Append(seq)
}

func (l *Log) flushLocked() []string {
	var released []string
	for {
		lines, ok := l.pending[l.nextRelease]
		if !ok {
			return released
		}
		delete(l.pending, l.nextRelease)
		l.lines = append(l.lines, lines...)
		released = append(released, lines...)
		l.nextRelease++
	}
}

func (l *Log) subsSnapshotLocked() []func(line string) {
	if len(l.subs) == 0 {
		return nil
	}
	out := make([]func(line string), 0, len(l.subs))
	for _, fn := range l.subs {
		out = append(out, fn)
	}
	return out
}

// Lines returns a snapshot of all released lines in display order.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of released lines.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// Subscribe registers fn to be called for every newly released line, in
// order. The returned cancel removes the subscription.
func (l *Log) Subscribe(fn func(line string)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.subs == nil {
		l.subs = make(map[uint64]func(line string))
	}
	id := l.nextSubID
	l.nextSubID++
	l.subs[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// Reset clears all lines, pending entries and counters. Subscriptions
// survive a reset.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.pending = make(map[uint64][]string)
	l.nextIssue = 0
	l.nextRelease = 0
}
