// Package pragma determines the effective JSX factory identifier for a file:
// the name that must be in scope wherever markup is constructed.
package pragma

import (
	"regexp"
	"strings"

	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// DefaultFactory is the conventional factory name used when neither a
// directive comment nor a configuration override is present.
const DefaultFactory = "React"

// Source records where the effective directive came from.
type Source int

const (
	SourceDefault Source = iota
	SourceComment
	SourceConfig
)

func (s Source) String() string {
	switch s {
	case SourceComment:
		return "comment"
	case SourceConfig:
		return "config"
	default:
		return "default"
	}
}

// Directive is the effective factory directive for one file. Raw is the full
// dotted expression as written ("Foo.Bar"); Base is always its first segment
// ("Foo"), a single valid identifier, and is the name downstream rules check
// for scope visibility.
type Directive struct {
	Raw    string
	Base   string
	Source Source
}

// directivePattern matches "@jsx <dotted identifier path>" inside a comment.
var directivePattern = regexp.MustCompile(`@jsx\s+([$A-Za-z_][$\w]*(?:\.[$A-Za-z_][$\w]*)*)`)

// Resolve returns the effective directive for a file given its comment
// trivia and the project-level override. The override wins unconditionally;
// comments are the legacy fallback. When a file carries more than one
// directive comment the last one scanned wins.
func Resolve(comments []*syntax.Node, override string) Directive {
	if override != "" {
		return directive(override, SourceConfig)
	}

	found := ""
	for _, c := range comments {
		if c.Kind != syntax.KindComment {
			continue
		}
		if m := directivePattern.FindStringSubmatch(c.Text); m != nil {
			found = m[1]
		}
	}
	if found != "" {
		return directive(found, SourceComment)
	}
	return directive(DefaultFactory, SourceDefault)
}

func directive(raw string, source Source) Directive {
	base := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		base = raw[:i]
	}
	return Directive{Raw: raw, Base: base, Source: source}
}
