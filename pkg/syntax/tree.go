package syntax

// Tree bundles a root node with its file name, the file's comment trivia, and
// an ancestor index built once at construction. Nodes store no parent
// pointers; upward navigation always goes through the index.
type Tree struct {
	File     string
	Root     *Node
	Comments []*Node

	parents map[*Node]*Node
}

// NewTree builds a Tree over root and indexes every node's parent.
func NewTree(file string, root *Node, comments []*Node) *Tree {
	t := &Tree{
		File:     file,
		Root:     root,
		Comments: comments,
		parents:  make(map[*Node]*Node),
	}
	t.index(root)
	return t
}

func (t *Tree) index(n *Node) {
	for _, c := range n.Children {
		t.parents[c] = n
		t.index(c)
	}
}

// Parent returns the parent of n, or nil for the root and for nodes that are
// not part of this tree.
func (t *Tree) Parent(n *Node) *Node {
	return t.parents[n]
}

// Ancestors returns the chain of ancestors of n, nearest first, ending at the
// root. Returns nil for the root itself.
func (t *Tree) Ancestors(n *Node) []*Node {
	var chain []*Node
	for p := t.parents[n]; p != nil; p = t.parents[p] {
		chain = append(chain, p)
	}
	return chain
}
