package ir

// Walk visits nodes depth-first in pre-order, children in source order.
// Root nodes have depth 1. Returning false from fn skips the node's children.
func Walk(nodes []Node, fn func(n *Node, depth int) bool) {
	walk(nodes, 1, fn)
}

func walk(nodes []Node, depth int, fn func(n *Node, depth int) bool) {
	for i := range nodes {
		if fn(&nodes[i], depth) {
			walk(nodes[i].Children, depth+1, fn)
		}
	}
}

// WalkSerialized is Walk over a serialized tree.
func WalkSerialized(nodes []SerializedNode, fn func(n *SerializedNode, depth int) bool) {
	walkSerialized(nodes, 1, fn)
}

func walkSerialized(nodes []SerializedNode, depth int, fn func(n *SerializedNode, depth int) bool) {
	for i := range nodes {
		if fn(&nodes[i], depth) {
			walkSerialized(nodes[i].Children, depth+1, fn)
		}
	}
}

// CountNodes returns the total number of nodes in the tree.
func CountNodes(nodes []Node) int {
	count := 0
	Walk(nodes, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// TreeDepth returns the depth of the deepest node (0 for an empty tree).
func TreeDepth(nodes []Node) int {
	deepest := 0
	Walk(nodes, func(_ *Node, depth int) bool {
		deepest = max(deepest, depth)
		return true
	})
	return deepest
}

// CountSerializedNodes returns the total number of nodes in a serialized tree.
func CountSerializedNodes(nodes []SerializedNode) int {
	count := 0
	WalkSerialized(nodes, func(*SerializedNode, int) bool {
		count++
		return true
	})
	return count
}
