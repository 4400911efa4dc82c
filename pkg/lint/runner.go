package lint

import (
	"github.com/l3aro/go-jsx-lint/pkg/classify"
	"github.com/l3aro/go-jsx-lint/pkg/literal"
	"github.com/l3aro/go-jsx-lint/pkg/pragma"
	"github.com/l3aro/go-jsx-lint/pkg/scope"
	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Options is the per-file rule configuration. Zero values enable only the
// factory-in-scope check.
type Options struct {
	// PragmaOverride forces the factory identifier, winning over any @jsx
	// comment. Dotted paths are allowed.
	PragmaOverride string
	// Factory is the legacy component-factory call name used by the
	// classifier (default createReactClass).
	Factory string

	// NoLiterals enables the literal rules for markup text children.
	NoLiterals bool
	// NoStrings extends the literal rules to string and template
	// expressions in markup content.
	NoStrings bool
	// AllowedStrings lists literals that are permitted; comparison is on
	// trimmed content.
	AllowedStrings []string
	// IgnoreProps skips attribute values entirely.
	IgnoreProps bool
	// NoAttributeStrings flags string literals in attribute values, under a
	// kind distinct from body literals.
	NoAttributeStrings bool

	// NoMultiComp flags every component definition after the first in a
	// file.
	NoMultiComp bool
}

// Runner analyzes one tree at a time. A Runner is stateless between runs and
// safe to reuse; concurrent runs need one Runner each only because the
// options struct is shared by reference.
type Runner struct {
	opts       Options
	classifier classify.Classifier
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts Options) *Runner {
	return &Runner{
		opts:       opts,
		classifier: classify.Classifier{Factory: opts.Factory},
	}
}

// Run builds the scope model, resolves the pragma directive, and walks the
// tree once in pre-order, emitting findings in visit order. For a given
// element, attribute findings precede its child-content findings. The walk
// never mutates the tree and a malformed subtree is skipped with an
// internal-error finding rather than aborting the pass.
func (r *Runner) Run(tree *syntax.Tree) []Finding {
	scopes := scope.Build(tree)
	directive := pragma.Resolve(tree.Comments, r.opts.PragmaOverride)

	var findings []Finding
	seen := make(map[*syntax.Node]bool)
	componentCount := 0

	w := syntax.Walker{
		Malformed: func(n *syntax.Node) {
			findings = append(findings, Finding{
				Kind:   KindInternalError,
				Span:   n.Span,
				Params: map[string]string{"node": n.Kind.String()},
			})
		},
	}

	w.Walk(tree.Root, func(n *syntax.Node, ancestors []*syntax.Node) syntax.Action {
		if n.IsMarkup() {
			findings = append(findings, r.checkScope(scopes, directive, n)...)
			findings = append(findings, r.checkLiterals(n)...)
		}
		if r.opts.NoMultiComp {
			// Classification via a function wrapper and via the wrapped
			// class itself dedupes on the definition node. Every distinct
			// definition after the first is reported at its visit position.
			if desc, ok := r.classifier.Classify(tree, scopes, n); ok && !seen[desc.Definition] {
				seen[desc.Definition] = true
				componentCount++
				if componentCount > 1 {
					findings = append(findings, Finding{
						Kind:   KindMultiComponent,
						Span:   desc.Definition.Span,
						Params: map[string]string{"component": desc.DisplayName},
					})
				}
			}
		}
		return syntax.Continue
	})

	return findings
}

// checkScope verifies the directive's base identifier is lexically reachable
// from the construction site.
func (r *Runner) checkScope(scopes *scope.Model, directive pragma.Directive, site *syntax.Node) []Finding {
	if _, ok := scopes.Resolve(directive.Base, site); ok {
		return nil
	}
	return []Finding{{
		Kind:   KindNotInScope,
		Span:   site.Span,
		Params: map[string]string{"name": directive.Base},
	}}
}

// checkLiterals extracts the element's literal segments and reports the ones
// the options disallow.
func (r *Runner) checkLiterals(site *syntax.Node) []Finding {
	if !r.opts.NoLiterals && !r.opts.NoAttributeStrings {
		return nil
	}

	segs := literal.Extract(site, literal.Options{
		IncludeAttributes: r.opts.NoAttributeStrings && !r.opts.IgnoreProps,
		Allowed:           r.opts.AllowedStrings,
	})

	var findings []Finding
	for _, seg := range segs {
		if seg.Allowed {
			continue
		}
		if seg.InAttribute {
			findings = append(findings, Finding{
				Kind:   KindAttributeLiteral,
				Span:   seg.Span,
				Params: map[string]string{"text": seg.Text},
			})
			continue
		}
		if !r.opts.NoLiterals {
			continue
		}
		if seg.Origin != literal.OriginMarkupText && !r.opts.NoStrings {
			continue
		}
		findings = append(findings, Finding{
			Kind:   KindBodyLiteral,
			Span:   seg.Span,
			Params: map[string]string{"text": seg.Text},
		})
	}
	return findings
}
