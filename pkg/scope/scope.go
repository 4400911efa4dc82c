// Package scope builds a read-only lexical scope model over a condensed
// syntax tree and answers name-visibility queries from any node.
package scope

import (
	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Kind classifies a lexical scope.
type Kind int

const (
	ModuleScope Kind = iota
	FunctionScope
	BlockScope
	ClassScope
)

func (k Kind) String() string {
	switch k {
	case ModuleScope:
		return "module"
	case FunctionScope:
		return "function"
	case BlockScope:
		return "block"
	case ClassScope:
		return "class"
	default:
		return "unknown"
	}
}

// Scope is one lexical scope. Bindings are hoisted: every declaration in the
// scope is present before any lookup, so visibility is scope-wide rather than
// position-wide. Parent is a relation only; scopes are owned by the Model.
type Scope struct {
	Kind   Kind
	Owner  *syntax.Node
	Parent *Scope

	bindings map[string]*syntax.Node
}

// Lookup searches this scope and its ancestors for name, innermost first.
// The second result is false when no scope in the chain binds the name.
func (s *Scope) Lookup(name string) (*syntax.Node, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if node, ok := cur.bindings[name]; ok {
			return node, true
		}
	}
	return nil, false
}

// Binds reports whether this scope itself (not an ancestor) binds name.
func (s *Scope) Binds(name string) bool {
	_, ok := s.bindings[name]
	return ok
}

// Model is the scope tree for one file. It is built once per analysis pass
// and never mutated afterwards.
type Model struct {
	tree    *syntax.Tree
	module  *Scope
	byOwner map[*syntax.Node]*Scope
}

// Build constructs the scope model for tree in a single traversal: scopes are
// created for the module, functions, blocks, and classes, then every binding
// node is hoisted into its owning scope.
func Build(tree *syntax.Tree) *Model {
	m := &Model{
		tree:    tree,
		byOwner: make(map[*syntax.Node]*Scope),
	}
	m.module = &Scope{
		Kind:     ModuleScope,
		Owner:    tree.Root,
		bindings: make(map[string]*syntax.Node),
	}
	m.byOwner[tree.Root] = m.module

	syntax.Walk(tree.Root, func(n *syntax.Node, ancestors []*syntax.Node) syntax.Action {
		switch n.Kind {
		case syntax.KindFunction:
			m.addScope(n, FunctionScope, ancestors)
		case syntax.KindBlock:
			m.addScope(n, BlockScope, ancestors)
		case syntax.KindClass:
			m.addScope(n, ClassScope, ancestors)
		case syntax.KindBinding:
			m.hoist(n, ancestors)
		}
		return syntax.Continue
	})
	return m
}

func (m *Model) addScope(owner *syntax.Node, kind Kind, ancestors []*syntax.Node) {
	m.byOwner[owner] = &Scope{
		Kind:     kind,
		Owner:    owner,
		Parent:   m.nearestScope(ancestors, false),
		bindings: make(map[string]*syntax.Node),
	}
}

// hoist places a binding into its owning scope: lexical bindings into the
// nearest scope of any kind, var-style bindings into the nearest function or
// module scope. The first declaration of a name wins; declaration order
// within one scope never shadows.
func (m *Model) hoist(binding *syntax.Node, ancestors []*syntax.Node) {
	owner := m.nearestScope(ancestors, binding.Hoist == syntax.HoistFunction)
	if owner == nil {
		owner = m.module
	}
	if _, exists := owner.bindings[binding.Text]; !exists {
		owner.bindings[binding.Text] = binding
	}
}

// nearestScope finds the innermost scope among ancestors (ordered root
// first). With skipBlocks set, block and class scopes are passed over, which
// is how var declarations reach their function scope.
func (m *Model) nearestScope(ancestors []*syntax.Node, skipBlocks bool) *Scope {
	for i := len(ancestors) - 1; i >= 0; i-- {
		s, ok := m.byOwner[ancestors[i]]
		if !ok {
			continue
		}
		if skipBlocks && (s.Kind == BlockScope || s.Kind == ClassScope) {
			continue
		}
		return s
	}
	return nil
}

// Module returns the root scope.
func (m *Model) Module() *Scope {
	return m.module
}

// ScopeOf returns the innermost scope enclosing n. A scope-owning node is
// considered inside its own scope.
func (m *Model) ScopeOf(n *syntax.Node) *Scope {
	if s, ok := m.byOwner[n]; ok {
		return s
	}
	for _, anc := range m.tree.Ancestors(n) {
		if s, ok := m.byOwner[anc]; ok {
			return s
		}
	}
	return m.module
}

// Resolve walks the scope chain from the innermost scope enclosing from
// outward to the module scope and returns the nearest binding for name.
// Resolution never fails hard: the second result is false when the name is
// not visible, and callers decide whether that is an error.
func (m *Model) Resolve(name string, from *syntax.Node) (*syntax.Node, bool) {
	return m.ScopeOf(from).Lookup(name)
}
