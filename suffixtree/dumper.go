package suffixtree

import (
	"fmt"
	"slices"
	"strings"
)

// String renders the tree shape for debugging, one edge per line, children
// ordered by leading symbol with the terminator first. Leaves carry the
// start offset of their suffix. Not part of the query surface.
func (t *Tree) String() string {
	var w strings.Builder
	fmt.Fprintf(&w, "suffixtree over %d bytes, %d nodes\n", len(t.text), len(t.nodes))
	t.dump(&w, rootRef, 1)
	return w.String()
}

func (t *Tree) dump(w *strings.Builder, n ref, depth int) {
	keys := make([]symbol, 0, len(t.nodes[n].children))
	for s := range t.nodes[n].children {
		keys = append(keys, s)
	}
	slices.Sort(keys)

	for _, s := range keys {
		c := t.nodes[n].children[s]
		nd := &t.nodes[c]
		w.WriteString(strings.Repeat(". ", depth))
		w.WriteString(t.label(c))
		if nd.suffixStart >= 0 {
			fmt.Fprintf(w, " [%d]", nd.suffixStart)
		}
		w.WriteByte('\n')
		t.dump(w, c, depth+1)
	}
}

// label renders an edge's symbols, with the terminator shown as "$".
func (t *Tree) label(n ref) string {
	nd := &t.nodes[n]
	var b strings.Builder
	for i := nd.first; i <= nd.last; i++ {
		if t.symbolAt(i) == term {
			b.WriteByte('$')
		} else {
			b.WriteByte(t.text[i])
		}
	}
	return b.String()
}
