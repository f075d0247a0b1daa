package gridastar

// PriorityQueueItem is one open-queue entry. A node may have several entries;
// only the one whose FScore matches the current f-score is live.
type PriorityQueueItem struct {
	FScore   int
	Sequence uint64
	Index    int
}

// PriorityQueue orders items by ascending FScore, then ascending Sequence, so
// equal f-scores expand first-in first-out.
type PriorityQueue []PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FScore != queue[j].FScore {
		return queue[i].FScore < queue[j].FScore
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
