package luaast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func binOp(operator string, left, right *Node) *Node {
	n := New(Op, left, right)
	n.Literal = operator
	return n
}

var (
	// an expression like (a + (b + c))
	a     = Term(Id, "a")
	b     = Term(Id, "b")
	c     = Term(Id, "c")
	inner = binOp("add", b, c)
	outer = binOp("add", a, inner)
)

func TestInspect(t *testing.T) {
	expected := []*Node{
		outer,
		a,
		nil, // closes "a"
		inner,
		b,
		nil, // closes "b"
		c,
		nil, // closes "c"
		nil, // closes "inner"
		nil, // closes "outer"
	}

	var actual []*Node
	Inspect(outer, func(n *Node) bool {
		actual = append(actual, n)
		return true
	})

	assert.Equal(t, expected, actual)
}

func TestInspectPrune(t *testing.T) {
	expected := []*Node{
		outer,
		a,
		nil, // closes "a"
		inner,
		nil, // closes "outer"; inner's subtree was pruned
	}

	var actual []*Node
	Inspect(outer, func(n *Node) bool {
		actual = append(actual, n)
		return n != inner
	})

	assert.Equal(t, expected, actual)
}

func TestCountNodes(t *testing.T) {
	assert.Equal(t, 5, CountNodes(outer))
	assert.Equal(t, 1, CountNodes(a))
	assert.Equal(t, 0, CountNodes(nil))
}
