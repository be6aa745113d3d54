package syntax

// Walk traverses the tree rooted at node in pre-order, calling fn for each
// node. If fn returns false, the node's children are not visited.
func Walk(node *Node, fn func(*Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range node.Children {
		Walk(c, fn)
	}
}

// Collect returns all nodes of the given kind under root, in pre-order.
func Collect(root *Node, kind NodeKind) []*Node {
	var nodes []*Node
	Walk(root, func(n *Node) bool {
		if n.Kind == kind {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node *Node) int {
	total := 0
	Walk(node, func(*Node) bool {
		total++
		return true
	})
	return total
}
