package pipeline

import (
	"iter"
	"slices"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// registry is an identifier-keyed store of draw entities. Identifiers start at 1,
// increase monotonically and are never reused until removeAll resets the counter.
// Iteration is in ascending identifier order.
type registry[T any] struct {
	kind    string
	lastID  uint32
	ids     []uint32
	entries map[uint32]*T
}

func newRegistry[T any](kind string) *registry[T] {
	return &registry[T]{
		kind:    kind,
		entries: make(map[uint32]*T),
	}
}

func (r *registry[T]) add(entry T) uint32 {
	r.lastID++
	r.entries[r.lastID] = &entry
	// ids only grow, so appending keeps the slice sorted
	r.ids = append(r.ids, r.lastID)
	return r.lastID
}

// get returns the entry for id; an unknown id is a precondition violation.
func (r *registry[T]) get(id uint32) *T {
	e, ok := r.entries[id]
	driver.Require(ok, "pipeline: unknown %s id %d", r.kind, id)
	return e
}

func (r *registry[T]) remove(id uint32) {
	r.get(id)
	delete(r.entries, id)
	if i, found := slices.BinarySearch(r.ids, id); found {
		r.ids = slices.Delete(r.ids, i, i+1)
	}
}

func (r *registry[T]) removeAll() {
	r.lastID = 0
	r.ids = r.ids[:0]
	clear(r.entries)
}

func (r *registry[T]) len() int {
	return len(r.ids)
}

func (r *registry[T]) all() iter.Seq2[uint32, *T] {
	return func(yield func(uint32, *T) bool) {
		for _, id := range r.ids {
			if !yield(id, r.entries[id]) {
				return
			}
		}
	}
}
