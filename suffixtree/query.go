package suffixtree

// LongestOverlap returns the length of the longest suffix of the indexed
// text that is also a prefix of query. It runs in O(len(query)).
//
// The walk consumes query symbols from the root, and a matched prefix
// counts only where the text can end: either the next edge symbol is the
// terminator, or the node reached has a terminator child. The deepest such
// point wins. An empty query, or one sharing no usable prefix, yields 0.
func (t *Tree) LongestOverlap(query []byte) int {
	best := 0
	n := rootRef
	edge := nilRef
	var off int32

	for qi := 0; qi < len(query); qi++ {
		s := symbol(query[qi])
		if edge == nilRef {
			if edge = t.child(n, s); edge == nilRef {
				break
			}
			off = 0
		}
		if t.symbolAt(t.nodes[edge].first+off) != s {
			break
		}
		off++
		if off == t.span(edge) {
			n, edge = edge, nilRef
		}

		// Is this point the end of the text? Leaf edges always finish with
		// the terminator, so a query can exhaust an edge only into an
		// internal node.
		if edge != nilRef {
			if t.symbolAt(t.nodes[edge].first+off) == term {
				best = qi + 1
			}
		} else if t.child(n, term) != nilRef {
			best = qi + 1
		}
	}
	return best
}

// SubstringLocations returns the start offset of every occurrence of query
// in the indexed text, in unspecified order. A query that does not occur,
// or an empty one, yields nil.
func (t *Tree) SubstringLocations(query []byte) []int {
	if len(query) == 0 {
		return nil
	}

	n := rootRef
	edge := nilRef
	var off int32
	for qi := 0; qi < len(query); qi++ {
		s := symbol(query[qi])
		if edge == nilRef {
			if edge = t.child(n, s); edge == nilRef {
				return nil
			}
			off = 0
		}
		if t.symbolAt(t.nodes[edge].first+off) != s {
			return nil
		}
		off++
		if off == t.span(edge) {
			n, edge = edge, nilRef
		}
	}

	// Every leaf below the match point names one occurrence. Collected
	// with an explicit stack: subtrees can be as deep as the text.
	top := n
	if edge != nilRef {
		top = edge
	}
	var locations []int
	stack := []ref{top}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if start := t.nodes[v].suffixStart; start >= 0 {
			locations = append(locations, int(start))
			continue
		}
		for _, c := range t.nodes[v].children {
			stack = append(stack, c)
		}
	}
	return locations
}
