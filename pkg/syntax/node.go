// Package syntax defines the condensed syntax tree the analysis core operates on.
// Trees are produced once per file by an external parser adapter, are immutable
// for the lifetime of the analysis pass, and carry only the node kinds the lint
// rules care about.
package syntax

// Kind identifies the node variant. The set is closed: visitors dispatch with
// exhaustive switches, and a kind outside this set marks a malformed tree.
type Kind int

const (
	// KindInvalid is the zero value and is never produced by the parser.
	KindInvalid Kind = iota

	// KindModule is the root of every tree.
	KindModule
	// KindElement is a markup element (<div ...>...</div> or self-closing).
	// Text holds the tag name, possibly dotted (e.g. "Foo.Bar").
	KindElement
	// KindFragment is a markup fragment (<>...</>).
	KindFragment
	// KindAttribute is an element attribute. Text holds the attribute name;
	// the value, if any, is the single child (KindText or KindExpression).
	KindAttribute
	// KindText is literal text: a markup text child (raw source text) or a
	// string literal (decoded content, quotes removed).
	KindText
	// KindExpression is an expression container: a {...} child of an element,
	// a template substitution, or any expression the parser keeps only as an
	// opaque wrapper around its analysis-relevant children.
	KindExpression
	// KindTemplate is a composed string-building expression: a template
	// literal, or a string concatenation chain synthesized by the parser.
	// Source template literals carry their raw text in Text; synthesized
	// concatenation composites have empty Text. Children alternate between
	// KindText parts and KindExpression substitutions/operands.
	KindTemplate
	// KindClass is a class definition. Text holds the declared name (empty
	// for anonymous class expressions). The base-class expression, when it
	// is an identifier or dotted chain, is a leading KindIdentifier child;
	// the class body is a single KindBlock child, so body members never
	// occupy the heritage position.
	KindClass
	// KindFunction is a function definition of any form (declaration,
	// expression, arrow). Text holds the name, empty when anonymous.
	KindFunction
	// KindCall is a call expression. Text holds the callee when it is an
	// identifier or dotted chain, empty otherwise.
	KindCall
	// KindIdentifier is an identifier reference, possibly a dotted chain
	// (member access flattened to "a.b.c").
	KindIdentifier
	// KindComment is comment trivia. Comments are collected on the Tree,
	// not attached as children.
	KindComment
	// KindBlock is a braced statement block introducing a lexical scope.
	KindBlock
	// KindBinding introduces a name into a scope (variable declarator,
	// import specifier, function/class declaration name, parameter,
	// destructuring element). Text holds the bound name; the initializer's
	// analysis-relevant nodes, if any, are the children.
	KindBinding

	kindEnd
)

var kindNames = map[Kind]string{
	KindInvalid:    "invalid",
	KindModule:     "module",
	KindElement:    "element",
	KindFragment:   "fragment",
	KindAttribute:  "attribute",
	KindText:       "text",
	KindExpression: "expression",
	KindTemplate:   "template",
	KindClass:      "class",
	KindFunction:   "function",
	KindCall:       "call",
	KindIdentifier: "identifier",
	KindComment:    "comment",
	KindBlock:      "block",
	KindBinding:    "binding",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindEnd
}

// Hoist describes which enclosing scope a binding is declared into.
type Hoist int

const (
	// HoistNone is for nodes that are not bindings.
	HoistNone Hoist = iota
	// HoistLexical bindings (let, const, class, import, parameter) belong to
	// the nearest block, function, or module scope.
	HoistLexical
	// HoistFunction bindings (var, function declarations) skip block scopes
	// and belong to the nearest function or module scope.
	HoistFunction
)

// Span locates a node in the source file. Start and End are byte offsets;
// Line and Column are 1-based and refer to the start position.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Node is one immutable node in the condensed tree. Nodes own their children;
// parent lookup goes through the Tree's ancestor index.
type Node struct {
	Kind     Kind
	Text     string
	Span     Span
	Hoist    Hoist
	Children []*Node
}

// IsMarkup reports whether n is a markup-construction site.
func (n *Node) IsMarkup() bool {
	return n.Kind == KindElement || n.Kind == KindFragment
}

// Attributes returns the attribute children of a markup element, in source
// order. The parser places attributes before content children.
func (n *Node) Attributes() []*Node {
	var attrs []*Node
	for _, c := range n.Children {
		if c.Kind == KindAttribute {
			attrs = append(attrs, c)
		}
	}
	return attrs
}

// Contents returns the non-attribute children of a markup element.
func (n *Node) Contents() []*Node {
	var body []*Node
	for _, c := range n.Children {
		if c.Kind != KindAttribute {
			body = append(body, c)
		}
	}
	return body
}

// Heritage returns the base-class expression of a class node, or nil when the
// class has no extends clause or the base expression is not an identifier
// chain. Only meaningful for KindClass.
func (n *Node) Heritage() *Node {
	if n.Kind != KindClass || len(n.Children) == 0 {
		return nil
	}
	if first := n.Children[0]; first.Kind == KindIdentifier {
		return first
	}
	return nil
}

// Value returns the value child of an attribute node, or nil for bare
// attributes. Only meaningful for KindAttribute.
func (n *Node) Value() *Node {
	if n.Kind != KindAttribute || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}
