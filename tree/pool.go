package tree

// drainTree walks the previous tree (if any) starting at root and prepends
// every Cell it visits to the free list.
//
// The walk exploits the fact that the tree being drained was fully
// threaded by the previous UpdateTree call: at a cell, descend via its
// "more" link into its first child (a cell's own old "next" is about to be
// overwritten with the free-list link, so it is read first and never
// needed again); at a body, continue via its thread "next" link, which by
// invariant 6 eventually leads back up to the next unvisited sibling or
// ancestor-successor. The walk terminates when it falls off the end of the
// root's own thread (next == nil). Bodies are never pooled - they live in
// the particle buffer.
func (t *Tree) drainTree() {
	if t.root == nil {
		return
	}
	var p node = t.root
	for p != nil {
		switch c := p.(type) {
		case *cellNode:
			next := c.more
			c.nxt = t.freeCell
			t.freeCell = c
			p = next
		case *bodyNode:
			p = c.nxt
		}
	}
	t.root = nil
}

// allocCell pops a cell off the free list, or allocates a fresh one when
// the pool is empty, and resets it for reuse: child slots cleared,
// maxRadius zeroed, more/next cleared.
func (t *Tree) allocCell() *cellNode {
	var c *cellNode
	if t.freeCell == nil {
		c = &cellNode{
			center:   make([]float64, t.dim),
			children: make([]node, t.nsub),
		}
	} else {
		c = t.freeCell
		t.freeCell, _ = c.nxt.(*cellNode)
		for i := range c.children {
			c.children[i] = nil
		}
	}
	c.maxRadius = 0
	c.more = nil
	c.nxt = nil
	return c
}
