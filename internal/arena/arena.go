// Package arena provides the fixed-capacity, index-linked primitives
// backing the LRU-K cache: a dense slot id space, an intrusive doubly
// linked list whose links live per slot, and a per-slot reference-history
// ring. Nothing here allocates after construction.
package arena

import "math"

type (
	// ID is a dense, arena-local slot identifier in [0, capacity).
	ID uint32
	// Tick is a logical-clock value. The clock advances once per
	// recorded reference, never with wall time, so any sequence of
	// operations replays identically.
	Tick uint64
	// State tags the list a slot currently belongs to. A slot is in
	// at most one list at a time; transitions are plain reassignments
	// of the tag plus a list splice.
	State uint8
	// Slot is the entry storage owned by an arena position. It is
	// zeroed when the slot is evicted or released.
	Slot[Key comparable, Value any] struct {
		// Key is the identifier the cache index maps to this slot.
		Key Key
		// Value is the cached data.
		Value Value
		// State is the slot's current list membership.
		State State
	}
)

// None is the reserved sentinel id denoting "no slot". It is never a
// valid id; lists and callers use it for absent links and endpoints.
const None ID = math.MaxUint32

// Infinite is the K-backward-distance reported for slots with fewer
// than K recorded references.
const Infinite Tick = math.MaxUint64

const (
	// Free marks an unoccupied slot, linked in no list.
	Free State = iota
	// Correlated marks a slot seen fewer than K times, ordered by
	// last-reference recency in the correlated list.
	Correlated
	// Retained marks a slot seen at least K times, ranked by
	// K-backward-distance for eviction.
	Retained
)
