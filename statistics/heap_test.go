package statistics

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkIndex(t *testing.T, h *trackedSet[string]) {
	t.Helper()
	require.Equal(t, len(h.items), len(h.index))
	for i, item := range h.items {
		assert.Equal(t, i, h.index[item.key])
	}
}

func TestTrackedSetIndexConsistency(t *testing.T) {
	h := newTrackedSet[string](8)
	heap.Push(h, heapItem[string]{key: "a", count: 5, seq: 1})
	heap.Push(h, heapItem[string]{key: "b", count: 3, seq: 2})
	heap.Push(h, heapItem[string]{key: "c", count: 7, seq: 3})
	heap.Push(h, heapItem[string]{key: "d", count: 9, seq: 4})
	heap.Push(h, heapItem[string]{key: "e", count: 4, seq: 5})

	checkIndex(t, h)
	assert.Equal(t, "b", h.items[0].key)

	// Change the priority of an arbitrary element and re-sift from its slot.
	i, ok := h.pos("d")
	require.True(t, ok)
	h.items[i].count = 1
	heap.Fix(h, i)
	checkIndex(t, h)
	assert.Equal(t, "d", h.items[0].key)

	i, ok = h.pos("b")
	require.True(t, ok)
	heap.Remove(h, i)
	checkIndex(t, h)
	_, ok = h.pos("b")
	assert.False(t, ok)
	assert.Equal(t, "d", h.items[0].key)

	popped := heap.Pop(h).(heapItem[string])
	assert.Equal(t, "d", popped.key)
	checkIndex(t, h)
	assert.Equal(t, "e", h.items[0].key)
}

func TestTrackedSetTieBreakOnSeq(t *testing.T) {
	h := newTrackedSet[int](4)
	heap.Push(h, heapItem[int]{key: 1, count: 2, seq: 1})
	heap.Push(h, heapItem[int]{key: 2, count: 2, seq: 2})
	heap.Push(h, heapItem[int]{key: 3, count: 2, seq: 3})

	// On equal counts the earliest promotion sits at the root, so eviction
	// order is deterministic.
	assert.Equal(t, 1, heap.Pop(h).(heapItem[int]).key)
	assert.Equal(t, 2, heap.Pop(h).(heapItem[int]).key)
	assert.Equal(t, 3, heap.Pop(h).(heapItem[int]).key)
}
