package statistics

// heapItem is one tracked key with its exact count. seq is the promotion
// sequence number, used to break count ties deterministically.
type heapItem[K comparable] struct {
	key   K
	count int64
	seq   uint64
}

// trackedSet is an array-backed binary min-heap over tracked keys plus a
// key -> position index maintained on every swap. The index makes "find this
// key's heap slot" O(1), so re-sifting after a count change anywhere in the
// heap is O(log k) via heap.Fix, not just at the root. It implements
// container/heap.Interface.
type trackedSet[K comparable] struct {
	items []heapItem[K]
	index map[K]int
}

func newTrackedSet[K comparable](k int) *trackedSet[K] {
	return &trackedSet[K]{
		items: make([]heapItem[K], 0, k),
		index: make(map[K]int, k),
	}
}

func (h *trackedSet[K]) Len() int { return len(h.items) }

// Less orders by count; the promotion sequence breaks ties so the eviction
// candidate at the root is deterministic.
func (h *trackedSet[K]) Less(i, j int) bool {
	if h.items[i].count != h.items[j].count {
		return h.items[i].count < h.items[j].count
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *trackedSet[K]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].key] = i
	h.index[h.items[j].key] = j
}

func (h *trackedSet[K]) Push(x interface{}) {
	item := x.(heapItem[K])
	h.index[item.key] = len(h.items)
	h.items = append(h.items, item)
}

func (h *trackedSet[K]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	delete(h.index, item.key)
	return item
}

// pos returns the heap slot of key, if tracked.
func (h *trackedSet[K]) pos(key K) (int, bool) {
	i, ok := h.index[key]
	return i, ok
}
