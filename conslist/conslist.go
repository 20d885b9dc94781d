package conslist

import "iter"

type node[T any] struct {
	item T
	next *node[T]
}

// List is a Lisp-style immutable singly-linked list. The zero value is an
// empty list. Copying a List copies one pointer, and PushFront shares the
// entire receiver as the new list's tail, so derived lists cost O(1) each
// and never disturb one another.
type List[T any] struct {
	head *node[T]
}

// New builds a list holding items in order, so New(1, 2, 3).Front() == 1.
func New[T any](items ...T) List[T] {
	var l List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = l.PushFront(items[i])
	}
	return l
}

// PushFront returns the list with item prepended. The receiver is shared
// as the tail and remains valid.
func (l List[T]) PushFront(item T) List[T] {
	return List[T]{head: &node[T]{item: item, next: l.head}}
}

// PopFront returns the list with the first item removed. It panics if the
// list is empty.
func (l List[T]) PopFront() List[T] {
	if l.head == nil {
		panic("conslist: PopFront on empty list")
	}
	return List[T]{head: l.head.next}
}

// Front returns the first item. It panics if the list is empty.
func (l List[T]) Front() T {
	if l.head == nil {
		panic("conslist: Front on empty list")
	}
	return l.head.item
}

// Empty reports whether the list has no items.
func (l List[T]) Empty() bool { return l.head == nil }

// Len counts the items in O(n).
func (l List[T]) Len() int {
	n := 0
	for p := l.head; p != nil; p = p.next {
		n++
	}
	return n
}

// All returns an iterator over the items from front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head; p != nil; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}
