package upqueue

/*

# Updateable priority queue

A priority queue with lazily deleted updates, for algorithms like
Dijkstra's that revise priorities but only ever consume each element once.

Updating is just pushing again: the queue may hold several versions of
the same element at different priorities, and the first version to pop
wins. Its identity is then banned, and the losing versions are silently
dropped whenever they reach the top. The cost of this laziness is that
the queue cannot report a size, only whether it is empty.

The heap itself is github.com/emirpasic/gods/trees/binaryheap; this
package adds only the identity bookkeeping.

*/
