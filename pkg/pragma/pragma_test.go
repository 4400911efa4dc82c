package pragma

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

func comment(text string) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindComment, Text: text}
}

func TestResolveDefault(t *testing.T) {
	d := Resolve(nil, "")
	assert.Equal(t, "React", d.Raw)
	assert.Equal(t, "React", d.Base)
	assert.Equal(t, SourceDefault, d.Source)
}

func TestResolveFromComment(t *testing.T) {
	comments := []*syntax.Node{comment("/** @jsx Preact */")}
	d := Resolve(comments, "")
	assert.Equal(t, "Preact", d.Raw)
	assert.Equal(t, "Preact", d.Base)
	assert.Equal(t, SourceComment, d.Source)
}

func TestResolveDottedDirective(t *testing.T) {
	comments := []*syntax.Node{comment("/** @jsx Foo.Bar */")}
	d := Resolve(comments, "")
	assert.Equal(t, "Foo.Bar", d.Raw)
	assert.Equal(t, "Foo", d.Base, "scope checks use only the first segment")
}

func TestResolveLastCommentWins(t *testing.T) {
	comments := []*syntax.Node{
		comment("/** @jsx First */"),
		comment("// unrelated"),
		comment("/** @jsx Second */"),
	}
	d := Resolve(comments, "")
	assert.Equal(t, "Second", d.Raw)
}

func TestResolveOverrideWins(t *testing.T) {
	comments := []*syntax.Node{comment("/** @jsx FromComment */")}
	d := Resolve(comments, "Config.Factory")
	assert.Equal(t, "Config.Factory", d.Raw)
	assert.Equal(t, "Config", d.Base)
	assert.Equal(t, SourceConfig, d.Source)
}

func TestResolveIgnoresMalformedDirectives(t *testing.T) {
	comments := []*syntax.Node{
		comment("/** @jsxRuntime automatic */"),
		comment("/** @jsx */"),
	}
	d := Resolve(comments, "")
	assert.Equal(t, SourceDefault, d.Source)
}

func TestResolveSkipsNonComments(t *testing.T) {
	nodes := []*syntax.Node{{Kind: syntax.KindText, Text: "@jsx Fake"}}
	d := Resolve(nodes, "")
	assert.Equal(t, SourceDefault, d.Source)
}
