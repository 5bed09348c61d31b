package luaast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideKeepsIdentity(t *testing.T) {
	n := Term(Id, "x")
	parent := New(Paren, n)

	n.Override(Term(Number, "7"))

	// the parent still points at the same node, which now has the
	// new content
	assert.Same(t, n, parent.Children[0])
	assert.Equal(t, Number, parent.Children[0].Tag)
	assert.Equal(t, "7", parent.Children[0].Literal)
}

func TestReplace(t *testing.T) {
	x := Term(Id, "x")
	y := Term(Id, "y")
	z := Term(Id, "z")
	root := New(Index, x, New(Paren, y))

	require.True(t, Replace(root, y, z))
	assert.Same(t, z, root.Children[1].Children[0])

	stranger := Term(Id, "w")
	assert.False(t, Replace(root, stranger, x))
}
