// Package classify decides whether a definition is a UI component and, if
// so, at which tier: plain or pure (render-skipping). It understands class
// definitions, anonymous class expressions, legacy factory calls, and
// functions that return a class.
package classify

import (
	"strings"

	"github.com/l3aro/go-jsx-lint/pkg/scope"
	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Tier is the component capability level.
type Tier int

const (
	// TierPlain components re-render unconditionally.
	TierPlain Tier = iota
	// TierPure components opt into shallow-compare render skipping.
	TierPure
)

func (t Tier) String() string {
	if t == TierPure {
		return "pure"
	}
	return "plain"
}

const (
	// PureBase is the base-class name marking the pure tier.
	PureBase = "PureComponent"
	// PlainBase is the base-class name marking the plain tier.
	PlainBase = "Component"
	// DefaultFactory is the legacy component factory call name.
	DefaultFactory = "createReactClass"
	// AnonymousName is the display name for definitions with no reachable
	// binding name.
	AnonymousName = "<anonymous>"
)

// Descriptor describes a classified component. BaseChain is the resolved
// base expression as an ordered identifier sequence, e.g.
// ["React", "PureComponent"] or ["Component"]; it is empty for factory-call
// components.
type Descriptor struct {
	Definition  *syntax.Node
	DisplayName string
	Tier        Tier
	BaseChain   []string
}

// Classifier holds classification options. The zero value uses the default
// legacy factory name.
type Classifier struct {
	// Factory is the component-factory call name; matching is on the base
	// (last) segment, so "createReactClass" covers "React.createReactClass"
	// and a dotted setting like "Lib.makeComponent" matches calls ending in
	// "makeComponent".
	Factory string
}

func (c Classifier) factory() string {
	if c.Factory != "" {
		return c.Factory
	}
	return DefaultFactory
}

// factoryBase is the last dot-segment of the configured factory name.
func (c Classifier) factoryBase() string {
	name := c.factory()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Classify inspects n and returns its component descriptor. The second
// result is false when n does not define a component; that is never an
// error, rules simply skip the node. Classifying the same node twice yields
// identical descriptors.
func (c Classifier) Classify(tree *syntax.Tree, scopes *scope.Model, n *syntax.Node) (Descriptor, bool) {
	switch n.Kind {
	case syntax.KindClass:
		return c.classifyClass(tree, scopes, n)
	case syntax.KindCall:
		return c.classifyCall(tree, n)
	case syntax.KindFunction:
		// A factory function producing a class is walked one level: the
		// returned class is classified in place.
		for _, child := range n.Children {
			if child.Kind != syntax.KindClass {
				continue
			}
			desc, ok := c.classifyClass(tree, scopes, child)
			if !ok {
				return Descriptor{}, false
			}
			if desc.DisplayName == AnonymousName && n.Text != "" {
				desc.DisplayName = n.Text
			}
			return desc, true
		}
		return Descriptor{}, false
	default:
		return Descriptor{}, false
	}
}

func (c Classifier) classifyClass(tree *syntax.Tree, scopes *scope.Model, class *syntax.Node) (Descriptor, bool) {
	heritage := class.Heritage()
	if heritage == nil {
		// no extends clause, or a computed base expression
		return Descriptor{}, false
	}

	chain := c.resolveChain(scopes, heritage)
	switch chain[len(chain)-1] {
	case PureBase:
		return Descriptor{
			Definition:  class,
			DisplayName: displayName(tree, class),
			Tier:        TierPure,
			BaseChain:   chain,
		}, true
	case PlainBase, c.factoryBase():
		return Descriptor{
			Definition:  class,
			DisplayName: displayName(tree, class),
			Tier:        TierPlain,
			BaseChain:   chain,
		}, true
	default:
		// extends something unrelated
		return Descriptor{}, false
	}
}

// resolveChain splits the heritage expression into identifier segments and
// resolves one level of local aliasing: a single-segment base whose binding
// initializer is itself an identifier chain is substituted by that chain.
// Resolution is strictly lexical and never crosses the file boundary.
func (c Classifier) resolveChain(scopes *scope.Model, heritage *syntax.Node) []string {
	chain := strings.Split(heritage.Text, ".")
	if len(chain) != 1 {
		return chain
	}

	binding, ok := scopes.Resolve(chain[0], heritage)
	if !ok || len(binding.Children) != 1 {
		return chain
	}
	if init := binding.Children[0]; init.Kind == syntax.KindIdentifier {
		return strings.Split(init.Text, ".")
	}
	return chain
}

func (c Classifier) classifyCall(tree *syntax.Tree, call *syntax.Node) (Descriptor, bool) {
	callee := call.Text
	if callee == "" {
		return Descriptor{}, false
	}
	segments := strings.Split(callee, ".")
	if segments[len(segments)-1] != c.factoryBase() {
		return Descriptor{}, false
	}
	return Descriptor{
		Definition:  call,
		DisplayName: displayName(tree, call),
		Tier:        TierPlain,
	}, true
}

// displayName is best effort: the definition's own name, else the nearest
// enclosing binding name, else the nearest enclosing named function, else
// the anonymous marker.
func displayName(tree *syntax.Tree, def *syntax.Node) string {
	if def.Text != "" && def.Kind != syntax.KindCall {
		return def.Text
	}
	for _, anc := range tree.Ancestors(def) {
		switch anc.Kind {
		case syntax.KindBinding:
			if anc.Text != "" {
				return anc.Text
			}
		case syntax.KindFunction:
			if anc.Text != "" {
				return anc.Text
			}
		}
	}
	return AnonymousName
}
