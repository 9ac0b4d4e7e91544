package tree

// threadTree converts the child-pointer tree rooted at p into a linear
// "next" thread with successor n, and sets every cell's "more" link to its
// first non-empty child. It is invoked once,
// at the end of UpdateTree, as threadTree(root, nil).
func threadTree(p node, n node) {
	switch v := p.(type) {
	case *cellNode:
		v.nxt = n

		desc := make([]node, 0, len(v.children))
		for _, ch := range v.children {
			if ch != nil {
				desc = append(desc, ch)
			}
		}
		if len(desc) == 0 {
			// Only the root of a tree with no active bodies gets here -
			// every other cell is created by a split and holds at least one
			// child - but it is kept consistent with invariant 6 regardless:
			// an empty descendant chain is more == next, not more == nil.
			v.more = n
			return
		}
		v.more = desc[0]
		for i, d := range desc {
			succ := n
			if i+1 < len(desc) {
				succ = desc[i+1]
			}
			threadTree(d, succ)
		}
	case *bodyNode:
		v.nxt = n
	}
}
