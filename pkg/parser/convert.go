package parser

import (
	"bytes"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Tree-sitter JavaScript node types used during conversion.
// Reference: https://github.com/tree-sitter/tree-sitter-javascript
const (
	nodeComment             = "comment"
	nodeIdentifier          = "identifier"
	nodeMemberExpression    = "member_expression"
	nodeNestedIdentifier    = "nested_identifier"
	nodePropertyIdentifier  = "property_identifier"
	nodeString              = "string"
	nodeStringFragment      = "string_fragment"
	nodeTemplateString      = "template_string"
	nodeTemplateSubst       = "template_substitution"
	nodeBinaryExpression    = "binary_expression"
	nodeCallExpression      = "call_expression"
	nodeClassDeclaration    = "class_declaration"
	nodeClassExpression     = "class"
	nodeClassHeritage       = "class_heritage"
	nodeClassBody           = "class_body"
	nodeFunctionDeclaration = "function_declaration"
	nodeGeneratorFuncDecl   = "generator_function_declaration"
	nodeFunctionExpression  = "function_expression"
	nodeFunction            = "function"
	nodeGeneratorFunction   = "generator_function"
	nodeArrowFunction       = "arrow_function"
	nodeFormalParameters    = "formal_parameters"
	nodeStatementBlock      = "statement_block"
	nodeLexicalDeclaration  = "lexical_declaration"
	nodeVariableDeclaration = "variable_declaration"
	nodeVariableDeclarator  = "variable_declarator"
	nodeImportStatement     = "import_statement"
	nodeImportClause        = "import_clause"
	nodeNamespaceImport     = "namespace_import"
	nodeNamedImports        = "named_imports"
	nodeImportSpecifier     = "import_specifier"
	nodeJSXElement          = "jsx_element"
	nodeJSXSelfClosing      = "jsx_self_closing_element"
	nodeJSXFragment         = "jsx_fragment"
	nodeJSXOpeningElement   = "jsx_opening_element"
	nodeJSXClosingElement   = "jsx_closing_element"
	nodeJSXAttribute        = "jsx_attribute"
	nodeJSXExpression       = "jsx_expression"
	nodeJSXText             = "jsx_text"
	nodeObjectPattern       = "object_pattern"
	nodeArrayPattern        = "array_pattern"
	nodeRestPattern         = "rest_pattern"
	nodeAssignmentPattern   = "assignment_pattern"
	nodePairPattern         = "pair_pattern"
	nodeShorthandPattern    = "shorthand_property_identifier_pattern"
)

// converter condenses a tree-sitter parse tree into syntax nodes, collecting
// comment trivia along the way.
type converter struct {
	source   []byte
	comments []*syntax.Node
}

// convert maps one tree-sitter node to zero or more condensed nodes. Node
// types the analysis has no use for contribute their children in place.
func (c *converter) convert(n *sitter.Node) []*syntax.Node {
	switch n.Type() {
	case nodeComment:
		c.comments = append(c.comments, &syntax.Node{
			Kind: syntax.KindComment,
			Text: n.Content(c.source),
			Span: spanOf(n),
		})
		return nil

	case nodeJSXElement:
		return c.convertElement(n)

	case nodeJSXSelfClosing:
		return []*syntax.Node{{
			Kind:     syntax.KindElement,
			Text:     c.tagName(n),
			Span:     spanOf(n),
			Children: c.convertAttributes(n),
		}}

	case nodeJSXFragment:
		return []*syntax.Node{{
			Kind:     syntax.KindFragment,
			Span:     spanOf(n),
			Children: c.convertChildren(n),
		}}

	case nodeJSXAttribute:
		return c.convertAttribute(n)

	case nodeJSXExpression:
		return []*syntax.Node{{
			Kind:     syntax.KindExpression,
			Span:     spanOf(n),
			Children: c.convertChildren(n),
		}}

	case nodeJSXText:
		return []*syntax.Node{{
			Kind: syntax.KindText,
			Text: n.Content(c.source),
			Span: spanOf(n),
		}}

	case nodeString:
		return []*syntax.Node{{
			Kind: syntax.KindText,
			Text: c.stringContent(n),
			Span: spanOf(n),
		}}

	case nodeTemplateString:
		return []*syntax.Node{c.convertTemplate(n)}

	case nodeBinaryExpression:
		return c.convertBinary(n)

	case nodeClassDeclaration:
		class := c.convertClass(n)
		if class.Text == "" {
			return []*syntax.Node{class}
		}
		return []*syntax.Node{{
			Kind:     syntax.KindBinding,
			Text:     class.Text,
			Span:     class.Span,
			Hoist:    syntax.HoistLexical,
			Children: []*syntax.Node{class},
		}}

	case nodeClassExpression:
		return []*syntax.Node{c.convertClass(n)}

	case nodeFunctionDeclaration, nodeGeneratorFuncDecl:
		fn := c.convertFunction(n)
		if fn.Text == "" {
			return []*syntax.Node{fn}
		}
		return []*syntax.Node{{
			Kind:     syntax.KindBinding,
			Text:     fn.Text,
			Span:     fn.Span,
			Hoist:    syntax.HoistFunction,
			Children: []*syntax.Node{fn},
		}}

	case nodeFunction, nodeFunctionExpression, nodeGeneratorFunction, nodeArrowFunction:
		return []*syntax.Node{c.convertFunction(n)}

	case nodeLexicalDeclaration:
		return c.convertDeclarators(n, syntax.HoistLexical)

	case nodeVariableDeclaration:
		return c.convertDeclarators(n, syntax.HoistFunction)

	case nodeImportStatement:
		return c.convertImport(n)

	case nodeStatementBlock:
		return []*syntax.Node{{
			Kind:     syntax.KindBlock,
			Span:     spanOf(n),
			Children: c.convertChildren(n),
		}}

	case nodeCallExpression:
		return []*syntax.Node{c.convertCall(n)}

	case nodeIdentifier:
		return []*syntax.Node{{
			Kind: syntax.KindIdentifier,
			Text: n.Content(c.source),
			Span: spanOf(n),
		}}

	case nodeMemberExpression, nodeNestedIdentifier:
		if chain, ok := c.identifierChain(n); ok {
			return []*syntax.Node{{
				Kind: syntax.KindIdentifier,
				Text: chain,
				Span: spanOf(n),
			}}
		}
		return c.convertChildren(n)

	default:
		// Statements, wrappers, and expression forms without their own
		// condensed kind are transparent: their children are lifted in place.
		return c.convertChildren(n)
	}
}

// convertChildren converts every named child of n and concatenates the
// results.
func (c *converter) convertChildren(n *sitter.Node) []*syntax.Node {
	var out []*syntax.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, c.convert(n.NamedChild(i))...)
	}
	return out
}

func (c *converter) convertElement(n *sitter.Node) []*syntax.Node {
	el := &syntax.Node{Kind: syntax.KindElement, Span: spanOf(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodeJSXOpeningElement:
			el.Text = c.tagName(child)
			el.Children = append(el.Children, c.convertAttributes(child)...)
		case nodeJSXClosingElement:
			// carries no information beyond the opening tag
		default:
			el.Children = append(el.Children, c.convert(child)...)
		}
	}
	return []*syntax.Node{el}
}

// tagName reads the element name from an opening or self-closing tag. The
// source text already has the dotted form for member tags.
func (c *converter) tagName(tag *sitter.Node) string {
	if name := tag.ChildByFieldName("name"); name != nil {
		return name.Content(c.source)
	}
	return ""
}

// convertAttributes collects the jsx_attribute children of an opening tag
// (spread attributes have no name and are skipped).
func (c *converter) convertAttributes(tag *sitter.Node) []*syntax.Node {
	var attrs []*syntax.Node
	for i := 0; i < int(tag.NamedChildCount()); i++ {
		child := tag.NamedChild(i)
		if child.Type() == nodeJSXAttribute {
			attrs = append(attrs, c.convertAttribute(child)...)
		}
	}
	return attrs
}

func (c *converter) convertAttribute(n *sitter.Node) []*syntax.Node {
	attr := &syntax.Node{Kind: syntax.KindAttribute, Span: spanOf(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodePropertyIdentifier, nodeIdentifier:
			if attr.Text == "" {
				attr.Text = child.Content(c.source)
			}
		default:
			if attr.Value() == nil {
				attr.Children = append(attr.Children, c.convert(child)...)
			}
		}
	}
	return []*syntax.Node{attr}
}

// stringContent returns a string literal's content without the quotes.
func (c *converter) stringContent(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeStringFragment {
			return child.Content(c.source)
		}
	}
	text := n.Content(c.source)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

// convertTemplate maps a template literal to a template composite whose
// children alternate between text parts and substitution expressions. Text
// parts are sliced from the source between the substitution boundaries, so
// grammars with and without explicit fragment nodes behave identically.
func (c *converter) convertTemplate(n *sitter.Node) *syntax.Node {
	tmpl := &syntax.Node{
		Kind: syntax.KindTemplate,
		Text: n.Content(c.source),
		Span: spanOf(n),
	}

	cursor := int(n.StartByte()) + 1 // past the opening backtick
	end := int(n.EndByte()) - 1      // before the closing backtick
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != nodeTemplateSubst {
			continue
		}
		if start := int(child.StartByte()); start > cursor {
			tmpl.Children = append(tmpl.Children, c.templatePart(cursor, start, n))
		}
		tmpl.Children = append(tmpl.Children, &syntax.Node{
			Kind:     syntax.KindExpression,
			Span:     spanOf(child),
			Children: c.convertChildren(child),
		})
		cursor = int(child.EndByte())
	}
	if end > cursor {
		tmpl.Children = append(tmpl.Children, c.templatePart(cursor, end, n))
	}
	return tmpl
}

// templatePart builds a text part spanning [start, end). The part's position
// is derived from the byte offset relative to the template's start, so parts
// after an embedded newline land on the right line.
func (c *converter) templatePart(start, end int, tmpl *sitter.Node) *syntax.Node {
	tmplStart := int(tmpl.StartByte())
	line := int(tmpl.StartPoint().Row) + 1
	column := int(tmpl.StartPoint().Column) + 1 + (start - tmplStart)
	if nl := bytes.LastIndexByte(c.source[tmplStart:start], '\n'); nl >= 0 {
		line += bytes.Count(c.source[tmplStart:start], []byte{'\n'})
		column = start - (tmplStart + nl)
	}
	return &syntax.Node{
		Kind: syntax.KindText,
		Text: string(c.source[start:end]),
		Span: syntax.Span{
			Start:  start,
			End:    end,
			Line:   line,
			Column: column,
		},
	}
}

// convertBinary synthesizes a template composite for string concatenation
// chains. Chains without any literal operand stay opaque expressions.
func (c *converter) convertBinary(n *sitter.Node) []*syntax.Node {
	op := n.ChildByFieldName("operator")
	if op == nil || op.Content(c.source) != "+" {
		return c.convertChildren(n)
	}

	operands := append(c.concatOperands(n.ChildByFieldName("left")),
		c.concatOperands(n.ChildByFieldName("right"))...)

	literal := false
	for _, o := range operands {
		if o.Kind == syntax.KindText || (o.Kind == syntax.KindTemplate && o.Text != "") {
			literal = true
			break
		}
	}
	if !literal {
		return []*syntax.Node{{
			Kind:     syntax.KindExpression,
			Span:     spanOf(n),
			Children: operands,
		}}
	}
	return []*syntax.Node{{
		Kind:     syntax.KindTemplate,
		Span:     spanOf(n),
		Children: operands,
	}}
}

// concatOperands flattens one side of a "+" chain into composite operands:
// literals stay as themselves, everything else is wrapped as an opaque
// expression.
func (c *converter) concatOperands(n *sitter.Node) []*syntax.Node {
	if n == nil {
		return nil
	}
	if n.Type() == nodeBinaryExpression {
		if op := n.ChildByFieldName("operator"); op != nil && op.Content(c.source) == "+" {
			return append(c.concatOperands(n.ChildByFieldName("left")),
				c.concatOperands(n.ChildByFieldName("right"))...)
		}
	}

	converted := c.convert(n)
	if len(converted) == 1 {
		switch converted[0].Kind {
		case syntax.KindText, syntax.KindTemplate:
			return converted
		}
	}
	return []*syntax.Node{{
		Kind:     syntax.KindExpression,
		Span:     spanOf(n),
		Children: converted,
	}}
}

func (c *converter) convertClass(n *sitter.Node) *syntax.Node {
	class := &syntax.Node{Kind: syntax.KindClass, Span: spanOf(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		class.Text = name.Content(c.source)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodeClassHeritage:
			if base := c.heritageChain(child); base != nil {
				class.Children = append(class.Children, base)
			}
		case nodeClassBody:
			// The body is wrapped in a block so its members can never land
			// in the heritage position of a class without an extends clause.
			class.Children = append(class.Children, &syntax.Node{
				Kind:     syntax.KindBlock,
				Span:     spanOf(child),
				Children: c.convertChildren(child),
			})
		}
	}
	return class
}

// heritageChain resolves the extends clause to an identifier-chain node, or
// nil when the base is a computed expression.
func (c *converter) heritageChain(heritage *sitter.Node) *syntax.Node {
	for i := 0; i < int(heritage.NamedChildCount()); i++ {
		child := heritage.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}
		if chain, ok := c.identifierChain(child); ok {
			return &syntax.Node{
				Kind: syntax.KindIdentifier,
				Text: chain,
				Span: spanOf(child),
			}
		}
		return nil
	}
	return nil
}

func (c *converter) convertFunction(n *sitter.Node) *syntax.Node {
	fn := &syntax.Node{Kind: syntax.KindFunction, Span: spanOf(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Text = name.Content(c.source)
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			fn.Children = append(fn.Children, c.patternBindings(params.NamedChild(i), syntax.HoistLexical)...)
		}
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		// arrow functions with a single bare parameter
		fn.Children = append(fn.Children, c.patternBindings(param, syntax.HoistLexical)...)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == nodeStatementBlock {
			// the body block shares the function scope
			fn.Children = append(fn.Children, c.convertChildren(body)...)
		} else {
			fn.Children = append(fn.Children, c.convert(body)...)
		}
	}
	return fn
}

// convertDeclarators maps a var/let/const statement to one binding per
// declared name. The initializer's condensed nodes ride along as children of
// the declarator's first binding.
func (c *converter) convertDeclarators(n *sitter.Node, hoist syntax.Hoist) []*syntax.Node {
	var out []*syntax.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		decl := n.NamedChild(i)
		if decl.Type() != nodeVariableDeclarator {
			continue
		}

		var bindings []*syntax.Node
		if name := decl.ChildByFieldName("name"); name != nil {
			bindings = c.patternBindings(name, hoist)
		}

		var value []*syntax.Node
		if v := decl.ChildByFieldName("value"); v != nil {
			value = c.convert(v)
		}

		if len(bindings) == 0 {
			out = append(out, value...)
			continue
		}
		bindings[0].Children = value
		out = append(out, bindings...)
	}
	return out
}

// patternBindings collects the names a binding pattern introduces. Plain
// identifiers yield one binding; destructuring patterns yield one per bound
// element.
func (c *converter) patternBindings(n *sitter.Node, hoist syntax.Hoist) []*syntax.Node {
	switch n.Type() {
	case nodeIdentifier, nodeShorthandPattern:
		return []*syntax.Node{{
			Kind:  syntax.KindBinding,
			Text:  n.Content(c.source),
			Span:  spanOf(n),
			Hoist: hoist,
		}}
	case nodePairPattern:
		if value := n.ChildByFieldName("value"); value != nil {
			return c.patternBindings(value, hoist)
		}
		return nil
	case nodeAssignmentPattern:
		if left := n.ChildByFieldName("left"); left != nil {
			return c.patternBindings(left, hoist)
		}
		return nil
	case nodeObjectPattern, nodeArrayPattern, nodeRestPattern:
		var out []*syntax.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			out = append(out, c.patternBindings(n.NamedChild(i), hoist)...)
		}
		return out
	default:
		return nil
	}
}

// convertImport maps an import statement to one lexical binding per imported
// local name.
func (c *converter) convertImport(n *sitter.Node) []*syntax.Node {
	var out []*syntax.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		clause := n.NamedChild(i)
		if clause.Type() != nodeImportClause {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			out = append(out, c.importBindings(clause.NamedChild(j))...)
		}
	}
	return out
}

func (c *converter) importBindings(n *sitter.Node) []*syntax.Node {
	bind := func(name *sitter.Node) *syntax.Node {
		return &syntax.Node{
			Kind:  syntax.KindBinding,
			Text:  name.Content(c.source),
			Span:  spanOf(name),
			Hoist: syntax.HoistLexical,
		}
	}

	switch n.Type() {
	case nodeIdentifier:
		return []*syntax.Node{bind(n)}
	case nodeNamespaceImport:
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if child := n.NamedChild(i); child.Type() == nodeIdentifier {
				return []*syntax.Node{bind(child)}
			}
		}
		return nil
	case nodeNamedImports:
		var out []*syntax.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			spec := n.NamedChild(i)
			if spec.Type() != nodeImportSpecifier {
				continue
			}
			local := spec.ChildByFieldName("alias")
			if local == nil {
				local = spec.ChildByFieldName("name")
			}
			if local != nil {
				out = append(out, bind(local))
			}
		}
		return out
	default:
		return nil
	}
}

func (c *converter) convertCall(n *sitter.Node) *syntax.Node {
	call := &syntax.Node{Kind: syntax.KindCall, Span: spanOf(n)}
	if callee := n.ChildByFieldName("function"); callee != nil {
		if chain, ok := c.identifierChain(callee); ok {
			call.Text = chain
		} else {
			call.Children = append(call.Children, c.convert(callee)...)
		}
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		call.Children = append(call.Children, c.convertChildren(args)...)
	}
	return call
}

// identifierChain flattens an identifier or dotted member expression to its
// source text ("React.PureComponent"). Computed members, calls, and any other
// object form fail the chain check.
func (c *converter) identifierChain(n *sitter.Node) (string, bool) {
	switch n.Type() {
	case nodeIdentifier, nodePropertyIdentifier, nodeNestedIdentifier:
		return n.Content(c.source), true
	case nodeMemberExpression:
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if obj == nil || prop == nil || prop.Type() != nodePropertyIdentifier {
			return "", false
		}
		base, ok := c.identifierChain(obj)
		if !ok {
			return "", false
		}
		return base + "." + prop.Content(c.source), true
	default:
		return "", false
	}
}
