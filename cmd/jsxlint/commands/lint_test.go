package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l3aro/go-jsx-lint/pkg/lint"
)

func TestRuleName(t *testing.T) {
	assert.Equal(t, "react-in-jsx-scope", ruleName(lint.KindNotInScope))
	assert.Equal(t, "no-literals", ruleName(lint.KindBodyLiteral))
	assert.Equal(t, "no-literals", ruleName(lint.KindAttributeLiteral))
	assert.Equal(t, "no-multi-comp", ruleName(lint.KindMultiComponent))
	assert.Equal(t, "internal", ruleName(lint.KindInternalError))
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name    string
		finding lint.Finding
		want    string
	}{
		{
			"not in scope",
			lint.Finding{Kind: lint.KindNotInScope, Params: map[string]string{"name": "React"}},
			"'React' must be in scope when using JSX",
		},
		{
			"body literal",
			lint.Finding{Kind: lint.KindBodyLiteral, Params: map[string]string{"text": "hello"}},
			`Strings not allowed in JSX files: "hello"`,
		},
		{
			"attribute literal",
			lint.Finding{Kind: lint.KindAttributeLiteral, Params: map[string]string{"text": "blank image"}},
			`Invalid attribute value: "blank image"`,
		},
		{
			"multi component",
			lint.Finding{Kind: lint.KindMultiComponent, Params: map[string]string{"component": "Second"}},
			"Declare only one React component per file: Second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderMessage(tt.finding))
		})
	}
}
