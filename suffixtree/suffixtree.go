package suffixtree

// Tree is a suffix tree over a byte string, built online with Ukkonen's
// algorithm in O(n) time and queried without modification afterwards.
//
// The tree borrows the text it indexes: the caller keeps ownership and must
// not mutate the bytes for the lifetime of the tree. Construction runs on
// the calling goroutine; once New returns, the tree is immutable and safe
// for any number of concurrent readers.
type Tree struct {
	text  []byte
	nodes []node
}

// New indexes text and returns the finished tree.
//
// The slice is held, not copied. Any byte content is accepted: the virtual
// terminator lives outside the byte range, so no input value is reserved.
func New(text []byte) *Tree {
	t := &Tree{
		text: text,
		// A tree over n symbols plus the terminator has at most n+1 leaves
		// and n internal nodes besides the root.
		nodes: make([]node, 1, 2*len(text)+2),
	}
	t.nodes[rootRef] = node{first: -1, last: -1, link: rootRef, suffixStart: -1}
	if len(text) == 0 {
		// An empty text indexes nothing: the tree is only a root.
		return t
	}
	b := builder{t: t, activeNode: rootRef, lastInternal: nilRef}
	for i := 0; i <= len(text); i++ {
		// Position len(text) reads the terminator: the extra phase that
		// turns every still-implicit suffix into an explicit leaf.
		b.extend(int32(i))
	}
	t.seal(int32(len(text)))
	return t
}

// Text returns the byte string the tree was built over. It is the same
// slice that was passed to New.
func (t *Tree) Text() []byte { return t.text }

// symbolAt reads the text at position i. Exactly one past the last valid
// index yields the terminator.
func (t *Tree) symbolAt(i int32) symbol {
	if int(i) == len(t.text) {
		return term
	}
	return symbol(t.text[i])
}

// child resolves the outgoing edge of n whose label starts with s, or
// nilRef. Reading a leaf's nil child map is fine.
func (t *Tree) child(n ref, s symbol) ref {
	c, ok := t.nodes[n].children[s]
	if !ok {
		return nilRef
	}
	return c
}

func (t *Tree) addChild(parent ref, s symbol, c ref) {
	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[symbol]ref)
	}
	t.nodes[parent].children[s] = c
}

// newLeaf appends a leaf whose edge starts at first and keeps growing with
// the current phase, recording the start offset of the suffix it stands for.
func (t *Tree) newLeaf(first, suffixStart int32) ref {
	t.nodes = append(t.nodes, node{
		first:       first,
		last:        -1,
		open:        true,
		link:        rootRef,
		suffixStart: suffixStart,
	})
	return ref(len(t.nodes) - 1)
}

// newInternal appends an internal node with the closed edge text[first..last].
func (t *Tree) newInternal(first, last int32) ref {
	t.nodes = append(t.nodes, node{
		first:       first,
		last:        last,
		link:        rootRef,
		suffixStart: -1,
	})
	return ref(len(t.nodes) - 1)
}

// edgeLen is the label length of n's incoming edge as of phase i. Open leaf
// edges extend to the current phase position.
func (t *Tree) edgeLen(n ref, i int32) int32 {
	nd := &t.nodes[n]
	if nd.open {
		return i - nd.first + 1
	}
	return nd.last - nd.first + 1
}

// span is the label length of a sealed edge. Only valid after construction.
func (t *Tree) span(n ref) int32 {
	nd := &t.nodes[n]
	return nd.last - nd.first + 1
}

// seal closes every still-open leaf edge at the final position, so the
// finished tree carries no construction state at all. Every leaf edge ends
// with the terminator.
func (t *Tree) seal(last int32) {
	for i := range t.nodes {
		if t.nodes[i].open {
			t.nodes[i].last = last
			t.nodes[i].open = false
		}
	}
}
