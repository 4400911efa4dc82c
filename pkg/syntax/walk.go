package syntax

// Action tells the walker how to proceed after visiting a node.
type Action int

const (
	// Continue descends into the node's children.
	Continue Action = iota
	// SkipChildren moves on to the next sibling without descending.
	SkipChildren
	// Stop terminates the walk immediately.
	Stop
)

// VisitFunc is called for every node in pre-order. The ancestor chain is
// ordered root first and must not be retained past the call.
type VisitFunc func(n *Node, ancestors []*Node) Action

// Walker performs a depth-first pre-order traversal. The zero value is ready
// to use. Walkers never mutate the tree and a single Walker may be reused for
// any number of walks.
type Walker struct {
	// Malformed, when set, is called for nodes whose kind is outside the
	// closed set. The node's subtree is skipped; the walk continues with the
	// next sibling.
	Malformed func(n *Node)
}

// Walk traverses the tree rooted at root, calling visit for each node.
func (w *Walker) Walk(root *Node, visit VisitFunc) {
	chain := make([]*Node, 0, 16)
	w.walk(root, chain, visit)
}

func (w *Walker) walk(n *Node, ancestors []*Node, visit VisitFunc) Action {
	if !n.Kind.Valid() {
		if w.Malformed != nil {
			w.Malformed(n)
		}
		return Continue
	}

	switch visit(n, ancestors) {
	case Stop:
		return Stop
	case SkipChildren:
		return Continue
	}

	ancestors = append(ancestors, n)
	for _, c := range n.Children {
		if w.walk(c, ancestors, visit) == Stop {
			return Stop
		}
	}
	return Continue
}

// Walk traverses root with a default Walker that silently skips malformed
// subtrees.
func Walk(root *Node, visit VisitFunc) {
	var w Walker
	w.Walk(root, visit)
}
