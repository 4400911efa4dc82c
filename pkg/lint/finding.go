// Package lint runs the built-in rules over one condensed syntax tree and
// emits findings. Findings carry a kind, a location, and named message
// parameters; turning them into human-readable text is the reporting
// layer's job, not this package's.
package lint

import (
	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// FindingKind tags a finding with its rule family.
type FindingKind string

const (
	// KindNotInScope: the effective factory identifier is not visible at a
	// markup-construction site. Params: name.
	KindNotInScope FindingKind = "not-in-scope"
	// KindBodyLiteral: literal text in markup content. Params: text.
	KindBodyLiteral FindingKind = "body-literal"
	// KindAttributeLiteral: a string literal in an attribute value.
	// Params: text.
	KindAttributeLiteral FindingKind = "attribute-literal"
	// KindMultiComponent: more than one component defined in a file.
	// Params: component.
	KindMultiComponent FindingKind = "multi-component"
	// KindInternalError: a malformed subtree was skipped. Distinguished
	// from user-facing findings. Params: node.
	KindInternalError FindingKind = "internal-error"
)

// Finding is one reported violation. Findings are produced in visit order,
// never mutated, and terminal.
type Finding struct {
	Kind   FindingKind
	Span   syntax.Span
	Params map[string]string
}
