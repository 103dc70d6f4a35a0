package arena

// History records, per slot, the logical times of the last up to K
// references. Each slot owns a K-sized window of one shared backing
// array; recording overwrites the oldest stamp once the window is full.
// Constructed by [NewHistory].
type History struct {
	depth  int
	stamps []Tick
	sizes  []uint32
	heads  []uint32
}

// NewHistory creates a tracker for capacity slots keeping depth (K)
// stamps each.
func NewHistory(capacity, depth int) History {
	return History{
		depth:  depth,
		stamps: make([]Tick, capacity*depth),
		sizes:  make([]uint32, capacity),
		heads:  make([]uint32, capacity),
	}
}

// Depth returns K, the number of stamps kept per slot.
func (h *History) Depth() int { return h.depth }

// ring returns the slot's window of the backing array.
func (h *History) ring(id ID) []Tick {
	off := int(id) * h.depth
	return h.stamps[off : off+h.depth]
}

// Record appends now to the slot's history, dropping the oldest stamp
// when the ring already holds K.
func (h *History) Record(id ID, now Tick) {
	h.ring(id)[h.heads[id]] = now
	h.heads[id] = (h.heads[id] + 1) % uint32(h.depth)
	if int(h.sizes[id]) < h.depth {
		h.sizes[id]++
	}
}

// Count returns the number of stamps currently held for the slot,
// in [0, K].
func (h *History) Count(id ID) int { return int(h.sizes[id]) }

// Last returns the newest recorded stamp and whether one exists.
func (h *History) Last(id ID) (Tick, bool) {
	if h.sizes[id] == 0 {
		return 0, false
	}
	newest := (h.heads[id] + uint32(h.depth) - 1) % uint32(h.depth)
	return h.ring(id)[newest], true
}

// Distance returns the K-backward-distance at time now: the elapsed
// logical time since the slot's K-th most recent reference. Slots with
// fewer than K recorded references rank as [Infinite], making them the
// preferred eviction candidates over fully qualified ones.
func (h *History) Distance(id ID, now Tick) Tick {
	if int(h.sizes[id]) < h.depth {
		return Infinite
	}
	// With the ring full, the next write position holds the oldest stamp.
	return now - h.ring(id)[h.heads[id]]
}

// Drop clears the slot's history, returning it to the unreferenced
// state. Stale stamps are left to be overwritten.
func (h *History) Drop(id ID) {
	h.sizes[id] = 0
	h.heads[id] = 0
}
