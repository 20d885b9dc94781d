package rpheap

/*

# Rank-pairing heap

A priority queue tuned for workloads that raise priorities far more often
than they pop: push, top, and priority increase are O(1) (increase
amortized), pop is amortized O(log n). The structure is the type-1
rank-pairing heap of Haeupler, Sen and Tarjan ("Rank-Pairing Heaps", SIAM
J. Computing 40(6), 2011): half trees in a root list, links only between
equal ranks, and a cheap cut-and-replace for increases instead of the
cascading restructuring other heaps need.

Values are one-shot. The heap remembers every value it has ever popped and
silently ignores attempts to push it again, and a re-push of a live value
is a priority raise (never a lowering). A* and Dijkstra-style searches get
exactly the frontier discipline they need by just calling Push.

*/
