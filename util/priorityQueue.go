package util

import "container/heap"

type Item struct {
	Word  string
	Score int
	// The index is needed by update and is maintained by the heap.Interface methods.
	index int
}

// A PriorityQueue implements heap.Interface and holds Items.
type PriorityQueueContent []*Item

func (pq PriorityQueueContent) Len() int { return len(pq) }

func (pq PriorityQueueContent) Less(i, j int) bool {
	// We want Pop to give us the highest, not lowest, score so we use greater than here.
	if pq[i].Score != pq[j].Score {
		return pq[i].Score > pq[j].Score
	}
	//同点はalphabetical順
	return pq[i].Word < pq[j].Word
}

func (pq PriorityQueueContent) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueueContent) Push(x interface{}) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueueContent) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]

	return item
}

func GeneratePriorityQueue() *PriorityQueue {
	q := make(PriorityQueueContent, 0)
	return &PriorityQueue{
		Queue: q,
	}
}

type PriorityQueue struct {
	Queue PriorityQueueContent
}

func (p *PriorityQueue) Len() int {
	return p.Queue.Len()
}

func (p *PriorityQueue) Push(i *Item) {
	heap.Push(&p.Queue, i)
}

func (p *PriorityQueue) Pop() *Item {
	in := heap.Pop(&p.Queue)
	return in.(*Item)
}
