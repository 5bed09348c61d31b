package luawalk

import (
	"github.com/pkg/errors"

	"github.com/Virusilvester/luaforwindows/lang/lua/luaast"
)

// Guess classifies n by its tag and dispatches to the matching entry
// point: expression tags go to Expr (so Call and Invoke, which are
// in both sets, walk as expressions), statement tags go to Stat, and
// untagged aggregates go to Block. A node whose tag is in neither
// set cannot be dispatched; that is an error for the caller, not a
// diagnostic.
func Guess(c *Config, n *luaast.Node, path Path) error {
	switch {
	case n == nil:
		return errors.New("cannot guess the kind of a nil node")
	case luaast.IsExpressionTag(n.Tag):
		return Expr(c, n, path)
	case luaast.IsStatementTag(n.Tag):
		return Stat(c, n, path)
	case n.Tag == "":
		return Block(c, n, path)
	default:
		return errors.Errorf("cannot guess the kind of node with tag %q", n.Tag)
	}
}
