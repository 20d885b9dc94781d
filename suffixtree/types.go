package suffixtree

// ref is a handle to a node in the tree's arena. Handles are dense slice
// indexes, so they survive arena growth (unlike raw pointers into a
// reallocating store), and the entire node store is released as a single
// allocation when the tree is dropped.
type ref int32

const (
	// rootRef is the distinguished root. It carries no edge label.
	rootRef ref = 0
	// nilRef marks an absent node.
	nilRef ref = -1
)

// symbol is the internal alphabet. Input bytes map to 0..255; widening the
// type leaves room for term below the byte range, so the terminator can
// never collide with input and no byte value has to be reserved.
type symbol int16

// term is the virtual terminator. It is read one position past the end of
// the text and is what forces every suffix to end at its own leaf.
const term symbol = -1

// node is one incoming edge together with the subtree hanging off it. The
// edge label is text[first..last], bounds inclusive. While a leaf edge is
// still growing during construction, open is set and last is meaningless;
// sealing the tree closes every open edge at the final position.
type node struct {
	first int32
	last  int32

	// children maps the leading symbol of each outgoing edge to the child
	// carrying that edge. Left nil on leaves.
	children map[symbol]ref

	// link is the suffix link. Maintained for internal nodes only; it
	// defaults to the root, which is also the correct target whenever no
	// deeper node exists for the linked string.
	link ref

	// suffixStart is the offset of the suffix a leaf represents, or -1 on
	// internal nodes.
	suffixStart int32

	open bool
}
