// Package history keeps a bounded, most-recent-first log of completed
// conversions for the current session.
package history

import (
	"sync"
	"time"
)

// MaxEntries bounds the ledger; recording beyond it evicts the oldest.
const MaxEntries = 10

// Entry is one completed conversion.
type Entry struct {
	RecordedAt time.Time
	Category   string
	Value      string
	FromUnit   string
	ToUnit     string
	Result     float64
}

// Ledger is an append-only, size-bounded conversion log. It is
// memory-resident only; it has no lifecycle beyond the session.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record prepends an entry and truncates the ledger to MaxEntries.
func (l *Ledger) Record(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
}

// Entries returns a snapshot of the ledger, most-recent-first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the current number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
