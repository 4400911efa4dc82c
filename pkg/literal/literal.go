// Package literal extracts literal-text segments from markup nodes: element
// text children, string and template expressions, and the literal operands
// of composed string-building expressions. Extraction normalizes whitespace
// and applies trim-insensitive allow-list matching; policy belongs to the
// rules consuming the segments.
package literal

import (
	"strings"

	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Origin records which syntactic form a segment was extracted from.
type Origin int

const (
	// OriginMarkupText is a text child of an element or fragment.
	OriginMarkupText Origin = iota
	// OriginString is a string literal inside an expression container,
	// attribute value, or concatenation operand.
	OriginString
	// OriginTemplate is a template literal reported as a whole.
	OriginTemplate
	// OriginTemplatePart is a literal part of a template literal reported
	// independently at a substitution boundary, when splitting is requested.
	OriginTemplatePart
)

func (o Origin) String() string {
	switch o {
	case OriginMarkupText:
		return "markup-text"
	case OriginString:
		return "string"
	case OriginTemplate:
		return "template"
	case OriginTemplatePart:
		return "template-part"
	default:
		return "unknown"
	}
}

// Segment is one extracted literal. Text is the reported text (for logical
// runs of adjacent text children, the members' trimmed content joined by the
// newlines written in source). Trimmed is the normalized form used for
// allow-list comparison. Allowed is set when the trimmed text matches a
// configured allowed string.
type Segment struct {
	Text        string
	Trimmed     string
	Origin      Origin
	Span        syntax.Span
	InAttribute bool
	Allowed     bool
}

// Options controls extraction.
type Options struct {
	// IncludeAttributes extracts attribute-value literals as well. Their
	// segments come first and carry InAttribute.
	IncludeAttributes bool
	// SplitTemplates reports template literals with substitutions as one
	// segment per literal part instead of one segment for the whole literal.
	SplitTemplates bool
	// Allowed is the allow-list. Matching is on trimmed content: entries and
	// segments are both trimmed before comparison.
	Allowed []string
}

// Allows reports whether trimmed text matches an allow-list entry.
func (o Options) Allows(trimmed string) bool {
	for _, entry := range o.Allowed {
		if strings.TrimSpace(entry) == trimmed {
			return true
		}
	}
	return false
}

// Extract walks the children of a markup element or fragment and returns its
// literal segments in source order, attribute segments first. Nested
// elements are not descended into; each markup node is its own extraction
// site.
func Extract(markup *syntax.Node, opts Options) []Segment {
	if !markup.IsMarkup() {
		return nil
	}

	var segs []Segment
	if opts.IncludeAttributes {
		for _, attr := range markup.Attributes() {
			value := attr.Value()
			if value == nil {
				continue
			}
			segs = append(segs, fromValue(value, opts, true)...)
		}
	}

	contents := markup.Contents()
	for i := 0; i < len(contents); {
		child := contents[i]
		switch child.Kind {
		case syntax.KindText:
			j := i
			for j < len(contents) && contents[j].Kind == syntax.KindText {
				j++
			}
			if seg, ok := textRun(contents[i:j], opts); ok {
				segs = append(segs, seg)
			}
			i = j
		case syntax.KindExpression:
			segs = append(segs, fromValue(child, opts, false)...)
			i++
		default:
			i++
		}
	}
	return segs
}

// textRun folds a run of adjacent text children into one logical segment.
// Members that normalize to nothing, or that consist only of an allow-listed
// non-breaking-space entity, are decoration and drop out of the run; a run
// with no surviving member is suppressed entirely.
func textRun(run []*syntax.Node, opts Options) (Segment, bool) {
	var texts, trimmed []string
	var span syntax.Span
	for _, member := range run {
		norm := normalizeText(member.Text)
		if norm == "" {
			continue
		}
		if entityOnly(norm) && opts.Allows(norm) {
			continue
		}
		if len(texts) == 0 {
			span = member.Span
		}
		span.End = member.Span.End
		texts = append(texts, norm)
		trimmed = append(trimmed, norm)
	}
	if len(texts) == 0 {
		return Segment{}, false
	}

	joined := strings.Join(trimmed, "\n")
	return Segment{
		Text:    strings.Join(texts, "\n"),
		Trimmed: joined,
		Origin:  OriginMarkupText,
		Span:    span,
		Allowed: opts.Allows(joined),
	}, true
}

// normalizeText trims a text child. Single-line text keeps its internal
// spacing; text spanning multiple source lines has each line trimmed and the
// non-empty lines rejoined with a single space.
func normalizeText(raw string) string {
	if !strings.Contains(raw, "\n") {
		return strings.TrimSpace(raw)
	}
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// entityOnly reports whether text consists solely of non-breaking-space
// entities (in entity or literal form) and whitespace.
func entityOnly(text string) bool {
	rest := text
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "&nbsp;"):
			rest = rest[len("&nbsp;"):]
		case strings.HasPrefix(rest, " "):
			rest = strings.TrimPrefix(rest, " ")
		case rest[0] == ' ' || rest[0] == '\t':
			rest = rest[1:]
		default:
			return false
		}
	}
	return text != ""
}

// fromValue extracts segments from an attribute value or expression
// container: plain string literals, template literals, and the literal
// operands of concatenation composites. Non-literal expressions contribute
// nothing and never suppress adjacent literals.
func fromValue(n *syntax.Node, opts Options, inAttr bool) []Segment {
	switch n.Kind {
	case syntax.KindText:
		return []Segment{stringSegment(n, opts, inAttr)}
	case syntax.KindExpression:
		var segs []Segment
		for _, child := range n.Children {
			switch child.Kind {
			case syntax.KindText:
				segs = append(segs, stringSegment(child, opts, inAttr))
			case syntax.KindTemplate:
				segs = append(segs, fromTemplate(child, opts, inAttr)...)
			}
		}
		return segs
	case syntax.KindTemplate:
		return fromTemplate(n, opts, inAttr)
	default:
		return nil
	}
}

func stringSegment(n *syntax.Node, opts Options, inAttr bool) Segment {
	trimmed := strings.TrimSpace(n.Text)
	return Segment{
		Text:        n.Text,
		Trimmed:     trimmed,
		Origin:      OriginString,
		Span:        n.Span,
		InAttribute: inAttr,
		Allowed:     opts.Allows(trimmed),
	}
}

// fromTemplate handles both template forms. A source template literal is one
// segment for the whole literal (its raw text when it has substitutions, its
// cooked text otherwise) unless splitting is requested. A composite
// synthesized from concatenation reports each literal operand independently.
func fromTemplate(t *syntax.Node, opts Options, inAttr bool) []Segment {
	if t.Text != "" {
		return sourceTemplate(t, opts, inAttr)
	}

	var segs []Segment
	for _, operand := range t.Children {
		switch operand.Kind {
		case syntax.KindText:
			segs = append(segs, stringSegment(operand, opts, inAttr))
		case syntax.KindTemplate:
			segs = append(segs, fromTemplate(operand, opts, inAttr)...)
		}
	}
	return segs
}

func sourceTemplate(t *syntax.Node, opts Options, inAttr bool) []Segment {
	hasSubs := false
	var cooked strings.Builder
	for _, child := range t.Children {
		switch child.Kind {
		case syntax.KindExpression:
			hasSubs = true
		case syntax.KindText:
			cooked.WriteString(child.Text)
		}
	}

	if hasSubs && opts.SplitTemplates {
		var segs []Segment
		for _, child := range t.Children {
			if child.Kind != syntax.KindText {
				continue
			}
			trimmed := strings.TrimSpace(child.Text)
			if trimmed == "" {
				continue
			}
			segs = append(segs, Segment{
				Text:        child.Text,
				Trimmed:     trimmed,
				Origin:      OriginTemplatePart,
				Span:        child.Span,
				InAttribute: inAttr,
				Allowed:     opts.Allows(trimmed),
			})
		}
		return segs
	}

	text := cooked.String()
	if hasSubs {
		text = t.Text
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return []Segment{{
		Text:        text,
		Trimmed:     trimmed,
		Origin:      OriginTemplate,
		Span:        t.Span,
		InAttribute: inAttr,
		Allowed:     opts.Allows(trimmed),
	}}
}
