// Package workload drives caches through reproducible access phases
// and tallies hit rates. It backs both the pollution tests and the
// demo command.
package workload

import (
	"math/rand"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is the lookup/store surface a workload drives.
// Hits and misses are judged by Get; a miss is followed by Set.
type Cache interface {
	Get(key int) (int, bool)
	Set(key, value int)
}

// Metrics tallies the lookups of one phase.
type Metrics struct {
	Hits   int
	Misses int
}

// Ops returns the total number of lookups tallied.
func (m Metrics) Ops() int { return m.Hits + m.Misses }

// HitRate returns hits as a fraction of all lookups
// (zero before any lookup).
func (m Metrics) HitRate() float64 {
	if ops := m.Ops(); ops > 0 {
		return float64(m.Hits) / float64(ops)
	}
	return 0
}

// Runner replays access patterns against a cache.
// Hot keys are [0, hot); cold keys start past them and never repeat.
// Each phase tallies into its own [Metrics].
// Constructed by [NewRunner].
type Runner struct {
	cache Cache
	rng   *rand.Rand
	hot   int
	cold  int
}

// NewRunner wires a runner to cache, with a working set of hot keys
// and a deterministic RNG.
func NewRunner(cache Cache, hot int, seed int64) *Runner {
	return &Runner{
		cache: cache,
		rng:   rand.New(rand.NewSource(seed)),
		hot:   hot,
	}
}

// AccessHot performs ops uniform random lookups over the hot keys,
// installing the key as its own value on a miss.
func (r *Runner) AccessHot(ops int) Metrics {
	var m Metrics
	for range ops {
		r.lookup(r.rng.Intn(r.hot), &m)
	}
	return m
}

// ScanCold looks up n never-before-seen keys exactly once each.
func (r *Runner) ScanCold(n int) Metrics {
	var m Metrics
	for range n {
		r.lookup(r.hot+r.cold, &m)
		r.cold++
	}
	return m
}

// RecoveryProbe is the trailing window [Runner.Recover] measures the
// hit rate over.
const RecoveryProbe = 1_000

// Recover drives hot lookups until the hit rate over a trailing
// [RecoveryProbe] window reaches target, reporting how many lookups
// that took and whether it happened within limit lookups.
func (r *Runner) Recover(target float64, limit int) (int, bool) {
	var done int
	for done < limit {
		m := r.AccessHot(RecoveryProbe)
		done += m.Ops()
		if m.HitRate() >= target {
			return done, true
		}
	}
	return done, false
}

func (r *Runner) lookup(key int, m *Metrics) {
	if _, ok := r.cache.Get(key); ok {
		m.Hits++
		return
	}
	m.Misses++
	r.cache.Set(key, key)
}

// PlainLRU adapts the classical LRU cache to [Cache], serving as the
// baseline the K-distance policy is measured against.
type PlainLRU struct {
	c *lru.Cache[int, int]
}

// NewPlainLRU returns a classical LRU [Cache] with the given capacity.
func NewPlainLRU(capacity int) (*PlainLRU, error) {
	c, err := lru.New[int, int](capacity)
	if err != nil {
		return nil, err
	}
	return &PlainLRU{c: c}, nil
}

// Get returns the cached value for key, marking it most recently used.
func (p *PlainLRU) Get(key int) (int, bool) { return p.c.Get(key) }

// Set inserts or updates key, evicting the least recently used entry
// when full.
func (p *PlainLRU) Set(key, value int) { p.c.Add(key, value) }
