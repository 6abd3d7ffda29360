// Package ledger records scoring and lifecycle events for one game session.
package ledger

// Kind names an event type, e.g. "food" or "invader_destroyed".
type Kind string

// Event is one ledger entry. Score, Lives and Level hold the values after
// the event was applied.
type Event struct {
	Seq    int
	Tick   uint64
	Kind   Kind
	Score  int
	Lives  int
	Level  int
	Detail string
}

// Ledger is an append-only event log. Entries are never edited or removed
// except by Reset.
type Ledger struct {
	events []Event
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds an event and returns it with its sequence number assigned.
func (l *Ledger) Append(e Event) Event {
	e.Seq = len(l.events) + 1
	l.events = append(l.events, e)
	return e
}

// Len returns the number of recorded events.
func (l *Ledger) Len() int {
	return len(l.events)
}

// Recent returns a copy of the last n events, oldest first.
func (l *Ledger) Recent(n int) []Event {
	if n <= 0 || len(l.events) == 0 {
		return nil
	}
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// Since returns a copy of every event with Seq greater than seq.
func (l *Ledger) Since(seq int) []Event {
	if seq < 0 {
		seq = 0
	}
	if seq >= len(l.events) {
		return nil
	}
	out := make([]Event, len(l.events)-seq)
	copy(out, l.events[seq:])
	return out
}

// All returns a copy of every event.
func (l *Ledger) All() []Event {
	return l.Since(0)
}

// Last returns the most recent event.
func (l *Ledger) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}

// Reset clears the ledger.
func (l *Ledger) Reset() {
	l.events = nil
}
