package gridastar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueueBreaksTiesFirstInFirstOut(t *testing.T) {
	queue := make(PriorityQueue, 0)
	heap.Init(&queue)
	pushes := []PriorityQueueItem{
		{FScore: 5, Sequence: 0, Index: 10},
		{FScore: 3, Sequence: 1, Index: 11},
		{FScore: 5, Sequence: 2, Index: 12},
		{FScore: 3, Sequence: 3, Index: 13},
		{FScore: 4, Sequence: 4, Index: 14},
		{FScore: 3, Sequence: 5, Index: 15},
	}
	for _, item := range pushes {
		heap.Push(&queue, item)
	}

	var order []int
	for queue.Len() > 0 {
		order = append(order, heap.Pop(&queue).(PriorityQueueItem).Index)
	}
	assert.Equal(t, []int{11, 13, 15, 14, 10, 12}, order)
}
