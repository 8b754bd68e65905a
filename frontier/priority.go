package frontier

import "container/heap"

type entry[T any] struct {
	item     T
	priority float64
	seq      uint64 // Insertion order, breaks priority ties
}

type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) {
	*e = append(*e, x.(entry[T]))
}

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	last := old[n-1]
	old[n-1] = entry[T]{}
	*e = old[:n-1]
	return last
}

// PriorityQueue pops the item with the smallest priority. Among equal
// priorities the item pushed first is popped first.
type PriorityQueue[T any] struct {
	entries entries[T]
	next    uint64
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.entries, entry[T]{item: item, priority: priority, seq: pq.next})
	pq.next++
}

func (pq *PriorityQueue[T]) Pop() T {
	if pq.IsEmpty() {
		panic("pop from empty priority queue")
	}
	return heap.Pop(&pq.entries).(entry[T]).item
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.entries) == 0
}

func (pq *PriorityQueue[T]) Len() int {
	return len(pq.entries)
}

// PriorityQueueFunc is a PriorityQueue whose priorities are computed from
// the items themselves, so it satisfies Frontier.
type PriorityQueueFunc[T any] struct {
	queue    PriorityQueue[T]
	priority func(T) float64
}

func NewPriorityQueueFunc[T any](priority func(T) float64) *PriorityQueueFunc[T] {
	return &PriorityQueueFunc[T]{priority: priority}
}

func (pq *PriorityQueueFunc[T]) Push(item T) {
	pq.queue.Push(item, pq.priority(item))
}

func (pq *PriorityQueueFunc[T]) Pop() T {
	return pq.queue.Pop()
}

func (pq *PriorityQueueFunc[T]) IsEmpty() bool {
	return pq.queue.IsEmpty()
}

func (pq *PriorityQueueFunc[T]) Len() int {
	return pq.queue.Len()
}
