package conslist

import "golang.org/x/exp/constraints"

// The comparisons walk both lists with a plain loop. Lists built by
// repeated PushFront can get very deep, so none of this may recurse.

// Equal reports whether two lists hold equal items in the same order.
func Equal[T comparable](a, b List[T]) bool {
	x, y := a.head, b.head
	for x != nil && y != nil {
		if x.item != y.item {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}

// EqualFunc is like Equal but compares items with eq, allowing the two
// lists to hold different types.
func EqualFunc[T1, T2 any](a List[T1], b List[T2], eq func(T1, T2) bool) bool {
	x, y := a.head, b.head
	for x != nil && y != nil {
		if !eq(x.item, y.item) {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}

// Compare orders two lists lexicographically: the first unequal pair of
// items decides, and a list that runs out first is the lesser. It returns
// -1, 0, or +1.
func Compare[T constraints.Ordered](a, b List[T]) int {
	x, y := a.head, b.head
	for x != nil && y != nil {
		switch {
		case x.item < y.item:
			return -1
		case y.item < x.item:
			return 1
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return 1
	case y != nil:
		return -1
	}
	return 0
}

// CompareFunc is like Compare but compares items with cmp, allowing the
// two lists to hold different types.
func CompareFunc[T1, T2 any](a List[T1], b List[T2], cmp func(T1, T2) int) int {
	x, y := a.head, b.head
	for x != nil && y != nil {
		if c := cmp(x.item, y.item); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return 1
	case y != nil:
		return -1
	}
	return 0
}
