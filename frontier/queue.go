package frontier

// compactAt is the number of consumed slots after which the queue reclaims its backing array.
const compactAt = 64

// Queue pops items in the order they were pushed.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

func (q *Queue[T]) Pop() T {
	if q.IsEmpty() {
		panic("pop from empty queue")
	}

	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	if q.head >= compactAt && q.head*2 >= len(q.items) {
		remaining := copy(q.items, q.items[q.head:])
		clear(q.items[remaining:])
		q.items = q.items[:remaining]
		q.head = 0
	}
	return item
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
