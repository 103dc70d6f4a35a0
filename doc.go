// Package lruk implements a [Cache] using the LRU-K replacement algorithm.
//
// LRU-K is a scan-resistant policy that ranks entries by their K-th most
// recent reference instead of their last one, discriminating between
// entries with a reuse pattern and entries touched once in passing.
// Plain LRU is the K = 1 special case.
//
// The following is a summary (intended for maintainers) of the
// [1993 SIGMOD LRU-K paper], which the policy and most of its
// vocabulary are derived from.
//
// Glossary and invariants:
//
//   - Slot holds one entry's key, value and state inside a
//     preallocated arena; slots are addressed by dense ids and all
//     bookkeeping is id-based, so steady-state operation allocates
//     nothing.
//
//   - Reference
//
//     A use of an entry: every [Cache.Get] hit and [Cache.Set].
//     Each reference advances a logical clock by one tick.
//
//   - Reference history
//
//     The ticks of an entry's K most recent recorded references,
//     kept per slot in a fixed ring.
//
//   - K-backward-distance
//
//     now minus the oldest stamp in a full reference history; treated
//     as infinite while the history holds fewer than K stamps.
//     The entry with the largest distance is the policy's victim.
//
//   - Correlated reference period
//
//     References landing within a configured window of an entry's
//     newest recorded stamp count as part of the same use and are not
//     recorded, so one burst can never simulate K independent uses.
//
//   - Correlated
//
//     An entry with fewer than K recorded references. Kept in a
//     recency-ordered list and evicted first, oldest first.
//
//   - Retained
//
//     An entry whose history reached K references. Evicted only when
//     no correlated entries remain, by largest K-backward-distance.
//
// Operations:
//
//   - Promotion
//
//     When a correlated entry's K-th reference is recorded it moves to
//     the retained list.
//
//   - Eviction
//
//     When an insert finds no free slot, the oldest correlated entry
//     is dropped; if every entry is retained, the retained list is
//     swept for the largest K-backward-distance instead.
//
// Counts:
//
//   - correlated + retained + free == capacity.
//
//     Every slot is always on exactly one list (or the free stack);
//     no metadata grows past what the constructor allocated.
//
// [1993 SIGMOD LRU-K paper]: https://dl.acm.org/doi/10.1145/170036.170081
package lruk
