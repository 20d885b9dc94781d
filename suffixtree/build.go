package suffixtree

// builder is the construction engine. It owns all of Ukkonen's transient
// state: the active point, the count of suffixes the current phase still
// owes, and the internal node awaiting its suffix link. None of it survives
// into the finished tree.
type builder struct {
	t *Tree

	// The active point. activeEdge is the text position whose symbol keys
	// the edge below activeNode; activeLength is how far along that edge
	// the point sits. activeLength == 0 means the point is the node itself.
	activeNode   ref
	activeEdge   int32
	activeLength int32

	// remaining counts the suffixes of text[0..i] not yet explicitly in
	// the tree. It carries across phases.
	remaining int32

	// lastInternal is the internal node created by the previous extension
	// of this phase, still waiting for its suffix link.
	lastInternal ref
}

// extend runs phase i: after it returns, every suffix of text[0..i] is
// present in the implicit tree. Each loop iteration settles the longest
// still-owed suffix, shortest last.
func (b *builder) extend(i int32) {
	t := b.t
	b.remaining++
	b.lastInternal = nilRef

	for b.remaining > 0 {
		if b.activeLength == 0 {
			b.activeEdge = i
		}

		next := t.child(b.activeNode, t.symbolAt(b.activeEdge))
		if next == nilRef {
			// No edge starts with the wanted symbol: new leaf straight off
			// the active node.
			leaf := t.newLeaf(i-b.activeLength, i-b.remaining+1)
			t.addChild(b.activeNode, t.symbolAt(b.activeEdge), leaf)
			if b.lastInternal != nilRef {
				t.nodes[b.lastInternal].link = b.activeNode
				b.lastInternal = nilRef
			}
		} else {
			// Keep the point strictly inside the edge it references: hop
			// over any edge it has outgrown and retry.
			if l := t.edgeLen(next, i); b.activeLength >= l {
				b.activeEdge += l
				b.activeLength -= l
				b.activeNode = next
				continue
			}

			if t.symbolAt(t.nodes[next].first+b.activeLength) == t.symbolAt(i) {
				// The suffix is already in the tree implicitly, so every
				// shorter one is too. The phase stops dead here; the point
				// advances one symbol and the owed suffixes roll over.
				if b.lastInternal != nilRef && b.activeNode != rootRef {
					t.nodes[b.lastInternal].link = b.activeNode
					b.lastInternal = nilRef
				}
				b.activeLength++
				break
			}

			// Mismatch inside the edge. Split it at the point and hang the
			// new suffix's leaf off the split.
			split := t.newInternal(t.nodes[next].first, t.nodes[next].first+b.activeLength-1)
			t.addChild(b.activeNode, t.symbolAt(b.activeEdge), split)

			leaf := t.newLeaf(i, i-b.remaining+1)
			t.addChild(split, t.symbolAt(i), leaf)

			t.nodes[next].first += b.activeLength
			t.addChild(split, t.symbolAt(t.nodes[next].first), next)

			if b.lastInternal != nilRef {
				t.nodes[b.lastInternal].link = split
			}
			b.lastInternal = split
		}

		b.remaining--

		if b.activeNode == rootRef && b.activeLength > 0 {
			// The next owed suffix is one shorter. From the root that
			// means re-aiming the edge at its first unmatched position.
			b.activeLength--
			b.activeEdge = i - b.remaining + 1
		} else if b.activeNode != rootRef {
			b.activeNode = t.nodes[b.activeNode].link
		}
	}
}
