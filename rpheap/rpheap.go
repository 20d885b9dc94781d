package rpheap

import "golang.org/x/exp/constraints"

// Heap is a rank-pairing heap: a priority queue with amortized O(1)
// priority increases, O(1) push and top, and amortized O(log n) pop.
//
// Values are one-shot: each value can be popped once, ever. Pushing a value
// already on the heap raises its priority to the larger of the old and new
// ones, and pushing a value that has already been popped does nothing. That
// combination is what graph searches want from their frontier.
type Heap[T comparable, P any] struct {
	less func(a, b P) bool

	// nodes finds a value's node; a nil entry means the value was popped
	// and stays banned.
	nodes map[T]*node[T, P]

	// roots of the half trees, the highest priority one in front.
	roots []*node[T, P]

	items int
}

// node is a half-tree node: the left child and the chain of right children
// under it form the tournament structure.
type node[T comparable, P any] struct {
	value    T
	priority P
	rank     int

	parent, left, right *node[T, P]
}

// New returns an empty heap ordered by the natural priority order, highest
// first.
func New[T comparable, P constraints.Ordered]() *Heap[T, P] {
	return NewWith[T](func(a, b P) bool { return a < b })
}

// NewWith returns an empty heap using less to order priorities; the top of
// the heap is the greatest priority under less.
func NewWith[T comparable, P any](less func(a, b P) bool) *Heap[T, P] {
	return &Heap[T, P]{less: less, nodes: make(map[T]*node[T, P])}
}

// Len returns the number of values currently on the heap.
func (h *Heap[T, P]) Len() int { return h.items }

// Top returns the highest-priority value and its priority.
func (h *Heap[T, P]) Top() (T, P, bool) {
	if len(h.roots) == 0 {
		var zv T
		var zp P
		return zv, zp, false
	}
	n := h.roots[0]
	return n.value, n.priority, true
}

// Push adds value with the given priority. If the value is already on the
// heap its priority is raised to the maximum of the current and given
// priorities (never lowered); if it was popped at any point it is ignored.
func (h *Heap[T, P]) Push(value T, priority P) {
	if n, seen := h.nodes[value]; seen {
		if n != nil {
			h.raise(n, priority)
		}
		return
	}
	n := &node[T, P]{value: value, priority: priority}
	h.place(n)
	h.nodes[value] = n
	h.items++
}

// Pop removes and returns the highest-priority value, banning it from
// future pushes.
func (h *Heap[T, P]) Pop() (T, P, bool) {
	if len(h.roots) == 0 {
		var zv T
		var zp P
		return zv, zp, false
	}

	first := h.roots[0]
	h.items--
	h.nodes[first.value] = nil

	// The remaining roots, plus the right spine of the popped root's left
	// subtree, are the half trees to recombine.
	halves := h.roots[1:]
	for spine := first.left; spine != nil; {
		next := spine.right
		spine.parent = nil
		spine.right = nil
		halves = append(halves, spine)
		spine = next
	}
	h.roots = nil

	// One pass: compact each root's rank, then let equal ranks meet in a
	// bucket; the winner of a link goes straight back to the root list.
	var buckets []*node[T, P]
	for _, half := range halves {
		half.rank = rankOf(half.left) + 1
		for len(buckets) <= half.rank {
			buckets = append(buckets, nil)
		}
		other := buckets[half.rank]
		if other == nil {
			buckets[half.rank] = half
			continue
		}
		buckets[half.rank] = nil
		if h.less(half.priority, other.priority) {
			h.link(other, half)
			h.place(other)
		} else {
			h.link(half, other)
			h.place(half)
		}
	}
	for _, half := range buckets {
		if half != nil {
			h.place(half)
		}
	}

	return first.value, first.priority, true
}

// place adds a half tree to the root list, keeping the maximum in front.
func (h *Heap[T, P]) place(n *node[T, P]) {
	if len(h.roots) == 0 {
		h.roots = append(h.roots, n)
		return
	}
	if h.less(h.roots[0].priority, n.priority) {
		h.roots = append(h.roots, h.roots[0])
		h.roots[0] = n
		return
	}
	h.roots = append(h.roots, n)
}

// link joins two equal-contender half trees: the loser becomes the winner's
// left child and inherits the winner's old left subtree on its right. Tied
// ranks raise the winner's rank.
func (h *Heap[T, P]) link(winner, loser *node[T, P]) {
	if winner.rank == loser.rank {
		winner.rank++
	}
	loser.right = winner.left
	if loser.right != nil {
		loser.right.parent = loser
	}
	winner.left = loser
	loser.parent = winner
}

// raise gives n the larger of its current priority and the given one.
func (h *Heap[T, P]) raise(n *node[T, P], priority P) {
	if !h.less(n.priority, priority) {
		return
	}
	n.priority = priority

	if n.parent == nil {
		// Already a root; it may just need the front slot.
		if n != h.roots[0] && h.less(h.roots[0].priority, priority) {
			for i, r := range h.roots {
				if r == n {
					h.roots[i] = h.roots[0]
					h.roots[0] = n
					break
				}
			}
		}
		return
	}

	// Cut n out with its left subtree; its right subtree takes its place
	// under the parent.
	parent := n.parent
	n.parent = nil
	if n.right != nil {
		n.right.parent = parent
	}
	if parent.left == n {
		parent.left = n.right
	} else {
		parent.right = n.right
	}
	n.right = nil

	h.place(n)

	// Walk up restoring ranks (type-1 rule): child ranks within one of
	// each other bump the rank, otherwise the larger child rank wins.
	// Ranks only ever shrink here, and an unchanged rank stops the walk.
	for parent != nil {
		if parent.parent == nil {
			parent.rank = rankOf(parent.left) + 1
		} else {
			lo, hi := rankOf(parent.left), rankOf(parent.right)
			if lo > hi {
				lo, hi = hi, lo
			}
			next := hi
			if hi-lo <= 1 {
				next++
			}
			if next >= parent.rank {
				break
			}
			parent.rank = next
		}
		parent = parent.parent
	}
}

func rankOf[T comparable, P any](n *node[T, P]) int {
	if n == nil {
		return -1
	}
	return n.rank
}
