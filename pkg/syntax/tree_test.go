package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeParentAndAncestors(t *testing.T) {
	text := &Node{Kind: KindText, Text: "hello"}
	element := &Node{Kind: KindElement, Text: "div", Children: []*Node{text}}
	root := &Node{Kind: KindModule, Children: []*Node{element}}

	tree := NewTree("app.jsx", root, nil)

	assert.Nil(t, tree.Parent(root))
	assert.Same(t, root, tree.Parent(element))
	assert.Same(t, element, tree.Parent(text))

	chain := tree.Ancestors(text)
	require.Len(t, chain, 2)
	assert.Same(t, element, chain[0])
	assert.Same(t, root, chain[1])

	assert.Nil(t, tree.Ancestors(root))
}

func TestNodeAttributesAndContents(t *testing.T) {
	attr := &Node{Kind: KindAttribute, Text: "id", Children: []*Node{{Kind: KindText, Text: "x"}}}
	bare := &Node{Kind: KindAttribute, Text: "disabled"}
	text := &Node{Kind: KindText, Text: "hi"}
	element := &Node{Kind: KindElement, Text: "div", Children: []*Node{attr, bare, text}}

	attrs := element.Attributes()
	require.Len(t, attrs, 2)
	assert.Same(t, attr, attrs[0])

	contents := element.Contents()
	require.Len(t, contents, 1)
	assert.Same(t, text, contents[0])

	require.NotNil(t, attr.Value())
	assert.Equal(t, "x", attr.Value().Text)
	assert.Nil(t, bare.Value())
}

func TestNodeHeritage(t *testing.T) {
	base := &Node{Kind: KindIdentifier, Text: "React.Component"}
	class := &Node{Kind: KindClass, Text: "Hello", Children: []*Node{base}}
	require.NotNil(t, class.Heritage())
	assert.Equal(t, "React.Component", class.Heritage().Text)

	bare := &Node{Kind: KindClass, Text: "Plain"}
	assert.Nil(t, bare.Heritage())

	// a class whose first child is a method has no identifier heritage
	noExtends := &Node{Kind: KindClass, Children: []*Node{{Kind: KindFunction, Text: "render"}}}
	assert.Nil(t, noExtends.Heritage())
}

func TestIsMarkup(t *testing.T) {
	assert.True(t, (&Node{Kind: KindElement}).IsMarkup())
	assert.True(t, (&Node{Kind: KindFragment}).IsMarkup())
	assert.False(t, (&Node{Kind: KindAttribute}).IsMarkup())
	assert.False(t, (&Node{Kind: KindModule}).IsMarkup())
}
