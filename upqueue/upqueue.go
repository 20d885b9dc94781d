package upqueue

import "github.com/emirpasic/gods/trees/binaryheap"

// Queue is a priority queue whose entries can be updated by pushing the
// same item again with a different priority. The backing heap only ever
// compares items, so identity is tracked separately: once some version of
// an item pops, every other queued version of it is stale and gets dropped
// before it can surface.
//
// There is deliberately no length: the queue cannot know how many of its
// entries are redundant versions of each other.
type Queue[T any, I comparable] struct {
	heap     *binaryheap.Heap
	seen     map[I]struct{}
	identity func(T) I
}

// New makes a queue whose items are their own identities. Top pops the
// greatest item under less. This requires that re-pushed versions of an
// item compare equal on identity, so it only suits identity-equal updates
// via NewWithIdentity in practice; for plain comparable items it is a
// dedup-on-pop priority queue.
func New[T comparable](less func(a, b T) bool) *Queue[T, T] {
	return NewWithIdentity(less, func(item T) T { return item })
}

// NewWithIdentity makes a queue using identity to decide when two items
// are versions of the same thing. Top pops the greatest item under less.
func NewWithIdentity[T any, I comparable](less func(a, b T) bool, identity func(T) I) *Queue[T, I] {
	// The backing heap pops the least per its comparator, so flip it.
	h := binaryheap.NewWith(func(a, b interface{}) int {
		switch {
		case less(a.(T), b.(T)):
			return 1
		case less(b.(T), a.(T)):
			return -1
		}
		return 0
	})
	return &Queue[T, I]{heap: h, seen: make(map[I]struct{}), identity: identity}
}

// Empty reports whether anything is left to pop.
func (q *Queue[T, I]) Empty() bool { return q.heap.Empty() }

// Top returns the highest-priority live item without removing it.
func (q *Queue[T, I]) Top() (T, bool) {
	v, ok := q.heap.Peek()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Push queues the item unless some version of it has already been popped.
// Pushing a live identity again is the update path: whichever version
// ranks highest will pop, and the rest evaporate.
func (q *Queue[T, I]) Push(item T) {
	if _, popped := q.seen[q.identity(item)]; !popped {
		q.heap.Push(item)
	}
}

// Pop removes and returns the highest-priority item, then sheds stale
// versions so the next Top is always something new.
func (q *Queue[T, I]) Pop() (T, bool) {
	v, ok := q.heap.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	item := v.(T)
	q.seen[q.identity(item)] = struct{}{}
	q.drainStale()
	return item, true
}

func (q *Queue[T, I]) drainStale() {
	for {
		v, ok := q.heap.Peek()
		if !ok {
			return
		}
		if _, popped := q.seen[q.identity(v.(T))]; !popped {
			return
		}
		q.heap.Pop()
	}
}

// Clear empties the queue and forgets every identity it has ever popped.
func (q *Queue[T, I]) Clear() {
	q.heap.Clear()
	q.seen = make(map[I]struct{})
}
