package lruk

import (
	"iter"
	"sync"

	"github.com/farazdagi/lru-k/internal/arena"
)

type (
	slot[Key comparable, Value any] = arena.Slot[Key, Value]
	// Cache is a fixed-capacity cache evicting by the LRU-K
	// page-replacement policy. All operations take one cache-wide
	// critical section and are safe for concurrent use.
	// Constructed by [New] or [NewK].
	Cache[Key comparable, Value any] struct {
		mu         sync.Mutex
		index      map[Key]arena.ID
		slots      []slot[Key, Value]
		history    arena.History
		correlated arena.List
		retained   arena.List
		free       []arena.ID
		clock      arena.Tick
		window     arena.Tick
	}
)

const (
	// MinimumCapacity defines the lowest value supported by [New] and [NewK].
	MinimumCapacity = 1
	// DefaultHistoryDepth is the K used by [New]: entries are ranked by
	// their second most recent reference (the paper's LRU-2).
	DefaultHistoryDepth = 2
	// DefaultCorrelationWindow is the correlated-reference period used
	// by [New], in logical ticks. The default coalesces only
	// back-to-back re-references; raise it to treat longer bursts as a
	// single use.
	DefaultCorrelationWindow = 2
)

// New creates a [Cache] with the given capacity, keeping
// [DefaultHistoryDepth] reference stamps per entry and coalescing
// references that arrive within [DefaultCorrelationWindow] ticks.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	return NewK[Key, Value](capacity, DefaultHistoryDepth, DefaultCorrelationWindow)
}

// NewK creates a [Cache] that ranks entries by their depth-th (K-th)
// most recent reference. window is the correlated-reference period in
// logical ticks: a reference arriving within window ticks of an
// entry's newest recorded reference counts as part of the same use,
// so a burst of accesses cannot promote an entry by itself. A window
// of zero records every reference.
// Capacity must be at least [MinimumCapacity] and depth at least 1.
// A depth of 1 degenerates to plain LRU.
func NewK[Key comparable, Value any](capacity, depth int, window uint64) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	if depth < 1 {
		return nil, historyDepthError(depth)
	}
	free := make([]arena.ID, capacity)
	for i := range free {
		free[i] = arena.ID(capacity - 1 - i) // pop low ids first
	}
	return &Cache[Key, Value]{
		index:      make(map[Key]arena.ID, capacity),
		slots:      make([]slot[Key, Value], capacity),
		history:    arena.NewHistory(capacity, depth),
		correlated: arena.NewList(capacity),
		retained:   arena.NewList(capacity),
		free:       free,
		window:     arena.Tick(window),
	}, nil
}

// Load returns the cached value for key (if resident). Otherwise, it
// calls fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
// fetch runs outside the cache lock, so concurrent Loads of one
// absent key may each invoke it.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, hit := c.Get(key); hit {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Get returns the value cached for key, recording a reference and
// applying the promotion policy; otherwise it returns the zero value
// and false. Misses mutate nothing.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.index[key]; ok {
		c.touch(id)
		return c.slots[id].Value, true
	}
	var zero Value
	return zero, false
}

// Set inserts or updates key with value and records a reference.
// Inserting into a full cache evicts first: the least recently seen
// correlated entry, or, when every entry is retained, the one with
// the largest K-backward-distance.
func (c *Cache[Key, Value]) Set(key Key, value Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.index[key]; ok {
		c.slots[id].Value = value
		c.touch(id)
		return
	}
	c.insert(key, value)
}

// Peek returns the value cached for key without recording a reference
// or disturbing the eviction order.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.index[key]; ok {
		return c.slots[id].Value, true
	}
	var zero Value
	return zero, false
}

// Remove invalidates key, freeing its slot for reuse. It reports
// whether the key was resident.
func (c *Cache[Key, Value]) Remove(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.index[key]
	if !ok {
		return false
	}
	c.release(id)
	return true
}

// touch records a reference to an occupied slot and relinks it per
// the policy: correlated slots refresh their recency or, on reaching
// a full history, move to the retained list; retained slots refresh
// their recency there.
func (c *Cache[_, _]) touch(id arena.ID) {
	if debugging {
		assert(c.slots[id].State != arena.Free,
			"referenced a free slot")
	}
	now := c.tick()
	if c.coalesced(id, now) {
		return
	}
	c.history.Record(id, now)
	switch c.slots[id].State {
	case arena.Correlated:
		if c.history.Count(id) >= c.history.Depth() {
			c.promote(id)
			return
		}
		c.correlated.Remove(id)
		c.correlated.PushFront(id)
	case arena.Retained:
		c.retained.Remove(id)
		c.retained.PushFront(id)
	}
}

// coalesced reports whether a reference at now falls within the
// correlated-reference window of the slot's newest recorded stamp.
// Such references count as part of the previous use and leave the
// slot's history and list position untouched.
func (c *Cache[_, _]) coalesced(id arena.ID, now arena.Tick) bool {
	if c.window == 0 {
		return false
	}
	last, ok := c.history.Last(id)
	return ok && now-last < c.window
}

// promote moves a slot that has accumulated a full reference history
// from the correlated list to the retained list.
func (c *Cache[_, _]) promote(id arena.ID) {
	c.correlated.Remove(id)
	c.retained.PushFront(id)
	c.slots[id].State = arena.Retained
}

// insert places a new entry, taking a free slot or evicting when full.
func (c *Cache[Key, Value]) insert(key Key, value Value) {
	id, ok := c.alloc()
	if !ok {
		id = c.evict()
	}
	now := c.tick()
	c.history.Record(id, now)
	state := arena.Correlated
	if c.history.Count(id) >= c.history.Depth() {
		state = arena.Retained // a depth of 1 skips the correlated period
	}
	c.slots[id] = slot[Key, Value]{Key: key, Value: value, State: state}
	if state == arena.Retained {
		c.retained.PushFront(id)
	} else {
		c.correlated.PushFront(id)
	}
	c.index[key] = id
}

// evict selects and clears the policy's victim, returning its slot id
// for immediate reuse. Entries still in their correlated reference
// period go first; only when none remain is a retained entry evicted.
func (c *Cache[Key, Value]) evict() arena.ID {
	victim := c.correlated.PopBack()
	if victim == arena.None {
		victim = c.retainedVictim()
		c.retained.Remove(victim)
	}
	if debugging {
		assert(victim != arena.None,
			"eviction requested on an empty cache")
	}
	delete(c.index, c.slots[victim].Key)
	c.history.Drop(victim)
	c.slots[victim] = slot[Key, Value]{}
	return victim
}

// retainedVictim sweeps the retained list for the slot with the
// largest K-backward-distance. The list itself is kept in recency
// order; the exact ranking is only computed when an eviction falls on
// it. Ties go to the id nearest the tail.
func (c *Cache[_, _]) retainedVictim() arena.ID {
	var (
		victim = arena.None
		worst  arena.Tick
	)
	for id := range c.retained.Backward() {
		if d := c.history.Distance(id, c.clock); victim == arena.None || d > worst {
			victim, worst = id, d
		}
	}
	return victim
}

// release frees an occupied slot: unlinks it, forgets its key and
// history, and recycles the id.
func (c *Cache[Key, Value]) release(id arena.ID) {
	switch c.slots[id].State {
	case arena.Correlated:
		c.correlated.Remove(id)
	case arena.Retained:
		c.retained.Remove(id)
	}
	delete(c.index, c.slots[id].Key)
	c.history.Drop(id)
	c.slots[id] = slot[Key, Value]{}
	c.free = append(c.free, id)
}

// alloc pops a recycled slot id, if any remain.
func (c *Cache[_, _]) alloc() (arena.ID, bool) {
	n := len(c.free)
	if n == 0 {
		return arena.None, false
	}
	id := c.free[n-1]
	c.free = c.free[:n-1]
	return id, true
}

// tick advances the logical clock by one reference.
func (c *Cache[_, _]) tick() arena.Tick {
	c.clock++
	return c.clock
}

// Len returns the number of resident entries.
func (c *Cache[_, _]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Capacity returns the fixed number of slots.
func (c *Cache[_, _]) Capacity() int {
	return len(c.slots)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[_, _]) IsEmpty() bool {
	return c.Len() == 0
}

// Keys returns an iterator over the (unordered) resident keys,
// snapshotted at the time of the call.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	c.mu.Lock()
	keys := make([]Key, 0, len(c.index))
	for key := range c.index {
		keys = append(keys, key)
	}
	c.mu.Unlock()
	return func(yield func(Key) bool) {
		for _, key := range keys {
			if !yield(key) {
				return
			}
		}
	}
}
