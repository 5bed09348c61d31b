package luaast

// Override replaces n's content with m's in place. n keeps its
// identity: every outstanding reference to it, including nodes
// recorded in ancestor paths, observes the new content.
func (n *Node) Override(m *Node) {
	*n = *m
}

// Replace rebinds the child slot under root that points at old so it
// points at new, and reports whether old was found. The root itself
// cannot be replaced this way; use Override for that.
func Replace(root, old, new *Node) bool {
	var found bool
	Inspect(root, func(n *Node) bool {
		if n == nil || found {
			return false
		}
		for i, c := range n.Children {
			if c == old {
				n.Children[i] = new
				found = true
				return false
			}
		}
		return true
	})
	return found
}
