package unionfind

/*

# Union-find that can list its groups

Textbook union-find answers "are i and j in the same group" in
effectively-constant amortized time, but the trees only point upwards, so
reading a whole group back means scanning everything. This variant keeps a
downward view as well: each node holds the set of nodes currently pointing
at it. Union moves one head into the other's child set, and path
compression re-homes every node it shortcuts, so the downward view is never
stale.

The price is a set per node and a little extra work inside Find; the payoff
is Group(i) in time linear in the group itself, and Groups() in one pass
over the indexes.

Not safe for concurrent use: Find compresses paths, so even reads mutate.

*/
