package statistics

import (
	"container/heap"
	"fmt"
	"sort"

	. "github.com/suxiao111/terrier/error"
)

// TopKTracker maintains an exact working set of the k highest-frequency keys
// seen so far on top of an owned FrequencySketch. Keys outside the tracked
// set only exist in the sketch; tracked keys carry exact counts maintained by
// Increment/Decrement arithmetic, and the indexed min-heap keeps the smallest
// tracked count at the root as the sole eviction candidate.
//
// The tracker is not safe for concurrent use; callers sharing one instance
// must serialize access themselves.
type TopKTracker[K comparable] struct {
	k       int
	seq     uint64
	sketch  *FrequencySketch[K]
	tracked *trackedSet[K]
}

// NewTopKTracker builds a tracker holding at most k exact keys, with a sketch
// sized from hint (the expected distinct-key cardinality).
func NewTopKTracker[K comparable](k, hint int) (*TopKTracker[K], error) {
	if k <= 0 {
		return nil, ErrInvalidCapacity
	}
	sketch, err := NewFrequencySketch[K](hint)
	if err != nil {
		return nil, err
	}
	return &TopKTracker[K]{
		k:       k,
		sketch:  sketch,
		tracked: newTrackedSet[K](k),
	}, nil
}

// Increment adds delta to the key's frequency. A tracked key has its exact
// count updated in place. An untracked key is promoted if there is room, or
// if its post-update sketch estimate is strictly greater than the smallest
// tracked count, in which case that minimum key is evicted. A tie with the
// minimum does not promote, which keeps equally-ranked keys from thrashing
// in and out on every update.
func (t *TopKTracker[K]) Increment(key K, delta int64) {
	estimate := t.sketch.Increment(key, delta)
	if i, ok := t.tracked.pos(key); ok {
		t.tracked.items[i].count += delta
		heap.Fix(t.tracked, i)
		return
	}
	if t.tracked.Len() < t.k {
		t.promote(key, estimate)
		return
	}
	if estimate > t.tracked.items[0].count {
		heap.Pop(t.tracked)
		t.promote(key, estimate)
	}
}

// Decrement subtracts delta from the key's frequency. A tracked key whose
// exact count drops to zero or below is evicted; nothing is promoted in its
// place since the tracker has no way to know which untracked key deserves
// the slot. Untracked keys only touch the sketch.
func (t *TopKTracker[K]) Decrement(key K, delta int64) {
	t.sketch.Decrement(key, delta)
	i, ok := t.tracked.pos(key)
	if !ok {
		return
	}
	t.tracked.items[i].count -= delta
	if t.tracked.items[i].count <= 0 {
		heap.Remove(t.tracked, i)
		return
	}
	heap.Fix(t.tracked, i)
}

// Remove drops the key from the tracked set if present. The sketch counters
// are not rolled back, so the key's trace remains there.
func (t *TopKTracker[K]) Remove(key K) {
	if i, ok := t.tracked.pos(key); ok {
		heap.Remove(t.tracked, i)
	}
}

// EstimateCount returns the exact count for a tracked key and the sketch
// estimate otherwise. The estimate may be negative after decrements.
func (t *TopKTracker[K]) EstimateCount(key K) int64 {
	if i, ok := t.tracked.pos(key); ok {
		return t.tracked.items[i].count
	}
	return t.sketch.EstimateCount(key)
}

// SortedTopKeys returns a snapshot of the tracked keys ordered by descending
// exact count. Equal counts order by promotion recency, most recently
// promoted first. Later mutation of the tracker does not affect a returned
// slice.
func (t *TopKTracker[K]) SortedTopKeys() []K {
	items := t.sortedItems()
	keys := make([]K, len(items))
	for i := range items {
		keys[i] = items[i].key
	}
	return keys
}

func (t *TopKTracker[K]) sortedItems() []heapItem[K] {
	items := make([]heapItem[K], len(t.tracked.items))
	copy(items, t.tracked.items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].seq > items[j].seq
	})
	return items
}

func (t *TopKTracker[K]) promote(key K, count int64) {
	t.seq++
	heap.Push(t.tracked, heapItem[K]{key: key, count: count, seq: t.seq})
}

// Size returns the number of currently tracked keys.
func (t *TopKTracker[K]) Size() int {
	return t.tracked.Len()
}

// Capacity returns k.
func (t *TopKTracker[K]) Capacity() int {
	return t.k
}

// String dumps the tracked keys and counts in descending order for tracing.
func (t *TopKTracker[K]) String() string {
	s := fmt.Sprintf("TopK(%d/%d): ", t.Size(), t.k)
	for _, item := range t.sortedItems() {
		s += fmt.Sprintf("%v=%d ", item.key, item.count)
	}
	return s
}
