package conslist

/*

# Immutable cons lists

An immutable singly-linked list with structural sharing, in the Lisp
cons-cell tradition. A List is a pointer to its first node, so copying one
is free and prepending allocates a single node that shares everything
behind it:

	base := conslist.New(2, 3)
	a := base.PushFront(1) // 1 2 3
	b := base.PushFront(9) // 9 2 3, tail shared with a

base, a and b are all independently usable forever. This shape is suited
to search frontiers and backtracking, where many partial paths extend a
common prefix.

Dropped lists are reclaimed by the garbage collector; arbitrarily deep
chains are safe because nothing here, collection included, walks them with
recursion. Equal, EqualFunc, Compare and CompareFunc follow the slices
package's contracts, with a shorter prefix ordering as lesser.

*/
