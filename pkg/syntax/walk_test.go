package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds a small tree by hand:
//
//	module
//	  element "div"
//	    attribute "id" -> text "root"
//	    text "hello"
//	  function "render"
func sampleTree() *Node {
	return &Node{
		Kind: KindModule,
		Children: []*Node{
			{
				Kind: KindElement,
				Text: "div",
				Children: []*Node{
					{
						Kind:     KindAttribute,
						Text:     "id",
						Children: []*Node{{Kind: KindText, Text: "root"}},
					},
					{Kind: KindText, Text: "hello"},
				},
			},
			{Kind: KindFunction, Text: "render"},
		},
	}
}

func TestWalkPreOrder(t *testing.T) {
	var visited []Kind
	Walk(sampleTree(), func(n *Node, ancestors []*Node) Action {
		visited = append(visited, n.Kind)
		return Continue
	})

	expected := []Kind{
		KindModule, KindElement, KindAttribute, KindText, KindText, KindFunction,
	}
	assert.Equal(t, expected, visited)
}

func TestWalkAncestorChain(t *testing.T) {
	Walk(sampleTree(), func(n *Node, ancestors []*Node) Action {
		if n.Kind == KindAttribute {
			require.Len(t, ancestors, 2)
			assert.Equal(t, KindModule, ancestors[0].Kind)
			assert.Equal(t, KindElement, ancestors[1].Kind)
		}
		return Continue
	})
}

func TestWalkSkipChildren(t *testing.T) {
	var visited []Kind
	Walk(sampleTree(), func(n *Node, ancestors []*Node) Action {
		visited = append(visited, n.Kind)
		if n.Kind == KindElement {
			return SkipChildren
		}
		return Continue
	})

	assert.Equal(t, []Kind{KindModule, KindElement, KindFunction}, visited)
}

func TestWalkStop(t *testing.T) {
	var visited []Kind
	Walk(sampleTree(), func(n *Node, ancestors []*Node) Action {
		visited = append(visited, n.Kind)
		if n.Kind == KindAttribute {
			return Stop
		}
		return Continue
	})

	assert.Equal(t, []Kind{KindModule, KindElement, KindAttribute}, visited)
}

func TestWalkMalformedSubtreeSkipped(t *testing.T) {
	root := &Node{
		Kind: KindModule,
		Children: []*Node{
			{
				Kind:     Kind(99),
				Children: []*Node{{Kind: KindText, Text: "unreachable"}},
			},
			{Kind: KindFunction, Text: "after"},
		},
	}

	var bad []*Node
	var visited []Kind
	w := Walker{Malformed: func(n *Node) { bad = append(bad, n) }}
	w.Walk(root, func(n *Node, ancestors []*Node) Action {
		visited = append(visited, n.Kind)
		return Continue
	})

	require.Len(t, bad, 1)
	assert.Equal(t, Kind(99), bad[0].Kind)
	// the malformed node's children are never visited; the walk continues
	// with the next sibling
	assert.Equal(t, []Kind{KindModule, KindFunction}, visited)
}

func TestKindValid(t *testing.T) {
	assert.False(t, KindInvalid.Valid())
	assert.False(t, Kind(99).Valid())
	assert.False(t, kindEnd.Valid())
	assert.True(t, KindModule.Valid())
	assert.True(t, KindBinding.Valid())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "element", KindElement.String())
	assert.Equal(t, "binding", KindBinding.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
