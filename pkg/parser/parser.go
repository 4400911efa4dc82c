// Package parser turns JavaScript/JSX source into the condensed syntax tree
// consumed by the analysis core. It is the only package that talks to
// tree-sitter; everything downstream sees syntax.Node values exclusively.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

// Parser parses JS/JSX files. A Parser is not safe for concurrent use; create
// one per worker.
type Parser struct {
	parser *sitter.Parser
}

// New creates a Parser backed by the tree-sitter JavaScript grammar, which
// covers JSX syntax as well.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(javascript.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses source and returns the condensed tree for file. The returned
// tree owns no reference to tree-sitter state; the raw parse tree is released
// before Parse returns.
func (p *Parser) Parse(ctx context.Context, file string, source []byte) (*syntax.Tree, error) {
	raw, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	defer raw.Close()

	c := &converter{source: source}
	root := &syntax.Node{
		Kind:     syntax.KindModule,
		Span:     spanOf(raw.RootNode()),
		Children: c.convertChildren(raw.RootNode()),
	}
	return syntax.NewTree(file, root, c.comments), nil
}

func spanOf(n *sitter.Node) syntax.Span {
	return syntax.Span{
		Start:  int(n.StartByte()),
		End:    int(n.EndByte()),
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
	}
}
