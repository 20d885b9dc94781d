package minmaxheap

/*

# Min-max heap

A double-ended priority queue in a single slice. The implicit binary tree
alternates between min levels (even depth: every value is at most anything
below it) and max levels (odd depth: at least anything below it), so the
minimum sits at the root and the maximum in one of the two slots beneath
it. Both extremes peek in O(1) and pop in O(log n); linear-time heapify is
available through From.

The structure is Atkinson et al.'s min-max heap ("Min-Max Heaps and
Generalized Priority Queues", CACM 29(10), 1986). Sifting works two layers
at a time, which keeps the comparison direction fixed; the only wrinkle is
a childless child inside the grandchild band, which gets compared directly.

*/
