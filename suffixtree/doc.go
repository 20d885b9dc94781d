package suffixtree

/*

# Suffix tree with online linear-time construction

A suffix tree indexes every suffix of a string at once: it is the compacted
trie of all suffixes, with runs of unary nodes collapsed into single edges
whose labels are (first, last) offsets into the indexed text. That makes the
whole structure linear in the text length while still answering "where does
this pattern occur" and "how much of this string hangs off the end of the
text" by walking a single path from the root.

For the string "ABAB" (with $ standing for the virtual terminator):

	root
	├── $            the empty suffix
	├── AB
	│   ├── AB$      suffix 0: ABAB
	│   └── $        suffix 2: AB
	└── B
	    ├── AB$      suffix 1: BAB
	    └── $        suffix 3: B

# Construction

The tree is built with Ukkonen's online algorithm: one phase per text
position, each phase extending every suffix of the prefix seen so far.
Three ideas keep that linear instead of quadratic:

  - Leaf edges are created "open" and grow implicitly with the current
    phase, so a leaf is extended for free forever after ("once a leaf,
    always a leaf").
  - The active point remembers where the previous phase stopped, so a
    phase never re-walks from the root; suffix links jump between the
    insertion points of consecutive suffixes in O(1).
  - A phase ends the moment an extension finds its suffix already present
    (the "show stopper"): every shorter suffix is then present too, and
    the unfinished ones simply roll over to the next phase.

Construction reads one position past the text, where a virtual terminator
lives. The internal symbol type is wider than a byte and the terminator sits
below the byte range, so it can never collide with input: any []byte
whatsoever is indexable, and no byte value is reserved. The terminator
phase is what forces every suffix to end at its own leaf.

Nodes live in a single arena addressed by dense integer handles rather than
pointers, so the store can grow without invalidating anything and is freed
in bulk with the tree. After the final phase the open edges are sealed at
the last position and no construction state remains.

# Queries

Two read-only queries share the same walk:

  - LongestOverlap: the longest suffix of the text equal to a prefix of the
    query, for stitching overlapping sequences together.
  - SubstringLocations: the start offsets of every occurrence of the query,
    read off the leaves below the matched point.

Build once on a single goroutine, then read from as many as you like.

References:

  - E. Ukkonen, "On-line construction of suffix trees", Algorithmica 14
    (1995). https://www.cs.helsinki.fi/u/ukkonen/SuffixT1withFigs.pdf
  - D. Gusfield, "Algorithms on Strings, Trees and Sequences", ch. 6.

*/
