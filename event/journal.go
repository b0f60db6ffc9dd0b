package event

import (
	"io"

	"github.com/oomph-ac/entsim/oerror"
	"github.com/sasha-s/go-deadlock"
	"github.com/zeebo/xxh3"
)

// Journal records the events of a simulation. It keeps a running digest of every encoded event, so two
// simulations can be compared tick for tick, and the last events appended. If a writer is set, every
// encoded event is also written to it so the stream can later be read back with DecodeEvents.
type Journal struct {
	mu deadlock.Mutex

	hasher *xxh3.Hasher
	w      io.Writer
	count  uint64

	recent   []Event
	capacity int
	head     int
}

// NewJournal creates a journal keeping up to capacity recent events. w may be nil.
func NewJournal(capacity int, w io.Writer) *Journal {
	return &Journal{
		hasher:   xxh3.New(),
		w:        w,
		recent:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Append adds the event to the journal.
func (j *Journal) Append(ev Event) error {
	dat := ev.Encode()

	j.mu.Lock()
	defer j.mu.Unlock()

	_, _ = j.hasher.Write(dat)
	j.count++
	if j.capacity > 0 {
		if len(j.recent) < j.capacity {
			j.recent = append(j.recent, ev)
		} else {
			j.recent[j.head] = ev
		}
		j.head = (j.head + 1) % j.capacity
	}

	if j.w == nil {
		return nil
	}
	if _, err := j.w.Write(dat); err != nil {
		return oerror.New("error writing event %d to journal: %v", ev.ID(), err)
	}
	return nil
}

// Digest returns the digest of all events appended so far.
func (j *Journal) Digest() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.hasher.Sum64()
}

// Len returns the amount of events appended so far.
func (j *Journal) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// Recent returns the most recent events appended, oldest first.
func (j *Journal) Recent() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.recent) < j.capacity {
		return append([]Event(nil), j.recent...)
	}
	out := make([]Event, 0, len(j.recent))
	out = append(out, j.recent[j.head:]...)
	return append(out, j.recent[:j.head]...)
}
