package treely

import "context"

// Node is a concrete result tree: a value plus the nodes built for its
// children. A node exclusively owns its children; a leaf has none.
type Node[V any] struct {
	Value    V
	Children []*Node[V]
}

// IsLeaf returns true when the node has no children.
func (n *Node[V]) IsLeaf() bool {
	return len(n.Children) == 0
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node[V]) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

// Walk visits the subtree in pre-order, children left to right, passing each
// node with its depth relative to n. Returning false stops the walk.
func (n *Node[V]) Walk(fn func(depth int, node *Node[V]) bool) {
	n.walk(0, fn)
}

func (n *Node[V]) walk(depth int, fn func(depth int, node *Node[V]) bool) bool {
	if !fn(depth, n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Flatten returns the subtree's values in pre-order, one entry per node.
func (n *Node[V]) Flatten() []V {
	values := make([]V, 0, n.Count())
	n.Walk(func(_ int, node *Node[V]) bool {
		values = append(values, node.Value)
		return true
	})
	return values
}

// BuildTree builds the concrete node tree for root: combine is fixed to node
// construction, so the tree mirrors the expansion exactly.
func BuildTree[V any](root V, expand Expand[V]) *Node[V] {
	return Build(root, expand, func(value V, children []*Node[V]) *Node[V] {
		return &Node[V]{Value: value, Children: children}
	})
}

// BuildTreeContext is BuildTree over effectful expansion.
func BuildTreeContext[V any](ctx context.Context, root V, expand ExpandFunc[V]) (*Node[V], error) {
	return BuildContext(ctx, root, expand, func(_ context.Context, value V, children []*Node[V]) (*Node[V], error) {
		return &Node[V]{Value: value, Children: children}, nil
	})
}
