// Package history keeps a small rolling buffer of past run statistics for
// side-by-side algorithm comparison.
//
// The buffer is append-only and deduplicated by algorithm: recording a new
// run for an algorithm replaces its previous entry and moves it to the tail,
// and the oldest entries fall off once DefaultCap distinct algorithms have
// been recorded. The buffer belongs to the caller (typically a UI); the
// search package never touches it.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/search"
)

// DefaultCap is the number of entries a Ring retains.
const DefaultCap = 5

// Entry pairs one recorded run with its identity.
type Entry struct {
	// ID uniquely identifies the run.
	ID uuid.UUID
	// Algorithm that produced the run.
	Algorithm search.Algorithm
	// Stats are the run's summary statistics.
	Stats search.Stats
	// At is the wall-clock time the run was recorded.
	At time.Time
}

// Ring is the rolling buffer. The zero value is not usable; construct with
// New. Ring is not safe for concurrent use.
type Ring struct {
	cap     int
	entries []Entry
}

// New returns a Ring retaining up to capacity entries; capacity < 1 falls
// back to DefaultCap.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultCap
	}

	return &Ring{cap: capacity, entries: make([]Entry, 0, capacity)}
}

// Record appends a run result, replacing any previous entry for the same
// algorithm and evicting the oldest entry when over capacity. It returns the
// stored Entry.
func (r *Ring) Record(res *search.Result) Entry {
	e := Entry{
		ID:        uuid.New(),
		Algorithm: res.Algorithm,
		Stats:     res.Stats,
		At:        time.Now(),
	}

	for i := range r.entries {
		if r.entries[i].Algorithm == e.Algorithm {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.entries = append(r.entries, e)
	if len(r.entries) > r.cap {
		r.entries = r.entries[1:]
	}

	return e
}

// Entries returns the retained entries oldest-first. The slice is a copy;
// mutating it does not affect the Ring.
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Latest returns the most recently recorded entry and whether one exists.
func (r *Ring) Latest() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}

	return r.entries[len(r.entries)-1], true
}

// Len returns the number of retained entries.
func (r *Ring) Len() int { return len(r.entries) }
