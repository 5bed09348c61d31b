package luaast

// Inspect traverses the raw tree under node in depth-first order: it
// starts by calling f(node); if node is nil, it does nothing. If f
// returns true, Inspect invokes f recursively for each of the
// non-nil children of node, followed by a call of f(nil).
//
// Inspect is grammar-agnostic: untagged aggregates and Pair wrappers
// are visited as ordinary nodes. For grammar-aware traversal with
// pre/post hooks and ancestor paths see the luawalk package.
func Inspect(node *Node, f func(*Node) bool) {
	if node == nil {
		return
	}
	if f(node) {
		for _, child := range node.Children {
			if child != nil {
				Inspect(child, f)
			}
		}
		f(nil)
	}
}

// CountNodes counts the number of nodes in the raw tree under node.
func CountNodes(node *Node) int {
	var count int
	Inspect(node, func(n *Node) bool {
		if n != nil {
			count++
		}
		return true
	})
	return count
}
