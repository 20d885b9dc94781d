package minmaxheap

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Heap is a min-max heap: a double-ended priority queue with O(1) access to
// both extremes and logarithmic push and pop at either end. Even (min)
// levels of the implicit tree hold subtree minima, odd (max) levels hold
// subtree maxima, and the comparison direction flips with level parity.
type Heap[T constraints.Ordered] struct {
	values []T
}

// New returns an empty heap.
func New[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{}
}

// From builds a heap holding the given values in linear time, restoring the
// invariant level by level from the deepest internal layer up.
func From[T constraints.Ordered](values ...T) *Heap[T] {
	h := &Heap[T]{values: append([]T(nil), values...)}
	n := len(h.values)
	if n == 0 {
		return h
	}

	// Depth of the deepest internal layer, and the index ranges covering it.
	level := bits.Len(uint(n)) - 2
	nextLevelBegin := 1 << bits.Len(uint(n))
	end := nextLevelBegin/2 - 1
	begin := nextLevelBegin/4 - 1

	for level >= 0 {
		for i := begin; i < end; i++ {
			h.restoreBelow(i, level)
		}
		end = begin
		begin = (begin+1)/2 - 1
		level--
	}
	return h
}

// Len returns the number of values held.
func (h *Heap[T]) Len() int { return len(h.values) }

// Push adds a value in logarithmic time.
func (h *Heap[T]) Push(value T) {
	h.values = append(h.values, value)
	h.postAdd()
}

// Min returns the smallest value without removing it.
func (h *Heap[T]) Min() (T, bool) {
	if len(h.values) == 0 {
		var zero T
		return zero, false
	}
	return h.values[0], true
}

// Max returns the largest value without removing it. With more than two
// values it is the larger of the two max-level slots under the root.
func (h *Heap[T]) Max() (T, bool) {
	switch len(h.values) {
	case 0:
		var zero T
		return zero, false
	case 1:
		return h.values[0], true
	case 2:
		return h.values[1], true
	}
	return max(h.values[1], h.values[2]), true
}

// PopMin removes and returns the smallest value.
func (h *Heap[T]) PopMin() (T, bool) {
	n := len(h.values)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := h.values[0]
	h.values[0] = h.values[n-1]
	h.values = h.values[:n-1]
	h.restoreBelow(0, 0)
	return v, true
}

// PopMax removes and returns the largest value.
func (h *Heap[T]) PopMax() (T, bool) {
	n := len(h.values)
	if n == 0 {
		var zero T
		return zero, false
	}
	if n <= 2 {
		// The max is the only value, or the only value on a max level.
		v := h.values[n-1]
		h.values = h.values[:n-1]
		return v, true
	}
	i := 2
	if h.values[1] > h.values[2] {
		i = 1
	}
	v := h.values[i]
	h.values[i] = h.values[n-1]
	h.values = h.values[:n-1]
	h.restoreBelow(i, 1)
	return v, true
}

// above reports whether v1 may sit above v2 on a level of the given parity:
// at most as large on min levels, at least as large on max levels.
func above[T constraints.Ordered](v1, v2 T, level int) bool {
	return (level%2 == 0) != (v1 > v2)
}

// postAdd floats the just-appended value to its proper layer: one parity
// hop against the parent decides min or max side, then the climb continues
// two layers at a time.
func (h *Heap[T]) postAdd() {
	n := len(h.values)
	if n == 1 {
		return
	}
	i := n - 1
	parent := (i+1)/2 - 1
	level := bits.Len(uint(n)) - 1

	if above(h.values[i], h.values[parent], level-1) {
		h.values[i], h.values[parent] = h.values[parent], h.values[i]
		h.restoreAbove(parent, level-1)
	} else {
		h.restoreAbove(i, level)
	}
}

// restoreAbove climbs grandparent to grandparent, where the comparison
// direction stays the same.
func (h *Heap[T]) restoreAbove(i, level int) {
	if i <= 2 {
		return
	}
	grandparent := (i+1)/4 - 1
	if above(h.values[i], h.values[grandparent], level-2) {
		h.values[i], h.values[grandparent] = h.values[grandparent], h.values[i]
		h.restoreAbove(grandparent, level-2)
	}
}

// restoreBelow sinks the value at i, which may violate the invariant
// against its descendants. The interesting band is the grandchildren
// (4i+3 .. 4i+6), same parity as i; a childless right child sits in that
// band's blind spot and is checked directly.
func (h *Heap[T]) restoreBelow(i, level int) {
	n := len(h.values)
	rightest := 4*i + 6
	leftest := rightest - 3

	if leftest >= n {
		// No grandchildren: settle against the direct children, below
		// which the invariant holds vacuously.
		left := 2*i + 1
		if left >= n {
			return
		}
		most := i
		if !above(h.values[i], h.values[left], level) {
			most = left
		}
		if right := left + 1; right < n {
			if !above(h.values[most], h.values[right], level) {
				most = right
			}
		}
		if most != i {
			h.values[i], h.values[most] = h.values[most], h.values[i]
		}
		return
	}

	// Extremal element among i and its grandchildren.
	most := i
	if !above(h.values[i], h.values[leftest], level) {
		most = leftest
	}
	for j := leftest + 1; j <= rightest && j < n; j++ {
		if !above(h.values[most], h.values[j], level) {
			most = j
		}
	}

	directChildSwapped := false
	if leftest+2 >= n {
		// The right child has no children of its own, so nothing above
		// vouches for it: it may need the slot directly.
		right := 2*i + 2
		if above(h.values[right], h.values[most], level) {
			h.values[i], h.values[right] = h.values[right], h.values[i]
			directChildSwapped = true
		}
	}

	if !directChildSwapped && most != i {
		h.values[i], h.values[most] = h.values[most], h.values[i]
		// The displaced value may now violate against the child between
		// i and the grandchild slot it landed in.
		intermediate := 2*i + 1
		if most > leftest+1 {
			intermediate = 2*i + 2
		}
		if above(h.values[most], h.values[intermediate], level+1) {
			h.values[intermediate], h.values[most] = h.values[most], h.values[intermediate]
		}
		h.restoreBelow(most, level+2)
	}
}
