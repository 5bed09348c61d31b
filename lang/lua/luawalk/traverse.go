package luawalk

import (
	"github.com/Virusilvester/luaforwindows/lang/lua/luaast"
)

// The traversers below encode the shape of every grammar production:
// which children exist for a tag and the order they are visited in.
// Recursion goes through the public entry points so hooks fire at
// every visited node; errors from those calls describe nodes below
// the current one and have already been reported, so they are
// dropped here.

func traverseStat(c *Config, n *luaast.Node, path Path) error {
	kids := n.Children
	p := path.push(n)

	switch n.Tag {
	case "":
		// bare statement sequence: the elements are spliced in
		// without the aggregate itself entering the path
		for _, s := range kids {
			Stat(c, s, path)
		}
	case luaast.Do:
		if len(kids) != 1 {
			return c.malformed(n, "want a single body block")
		}
		Block(c, kids[0], p)
	case luaast.Set:
		if len(kids) != 2 {
			return c.malformed(n, "want a left-hand and a right-hand list")
		}
		ExprList(c, kids[0], p)
		ExprList(c, kids[1], p)
	case luaast.While:
		if len(kids) != 2 {
			return c.malformed(n, "want a condition and a body block")
		}
		Expr(c, kids[0], p)
		Block(c, kids[1], p)
	case luaast.Repeat:
		if len(kids) != 2 {
			return c.malformed(n, "want a body block and a condition")
		}
		// repeat-until: the condition is evaluated in the scope of
		// the body, so the body is visited first
		Block(c, kids[0], p)
		Expr(c, kids[1], p)
	case luaast.Local:
		switch len(kids) {
		case 1:
			binderList(c, kids[0], p)
		case 2:
			// the declared names are not in scope for their own
			// initializers, so the values are visited first
			ExprList(c, kids[1], p)
			binderList(c, kids[0], p)
		default:
			return c.malformed(n, "want a name list and an optional value list")
		}
	case luaast.Localrec:
		if len(kids) != 2 {
			return c.malformed(n, "want a name list and a value list")
		}
		// recursive bindings are visible to their own initializers
		binderList(c, kids[0], p)
		ExprList(c, kids[1], p)
	case luaast.Fornum:
		switch len(kids) {
		case 4:
			Expr(c, kids[1], p)
			Expr(c, kids[2], p)
			binder(c, kids[0], p)
			Block(c, kids[3], p)
		case 5:
			Expr(c, kids[1], p)
			Expr(c, kids[2], p)
			Expr(c, kids[3], p)
			binder(c, kids[0], p)
			Block(c, kids[4], p)
		default:
			return c.malformed(n, "want a variable, 2 or 3 range expressions and a body block")
		}
	case luaast.Forin:
		if len(kids) != 3 {
			return c.malformed(n, "want a variable list, a value list and a body block")
		}
		ExprList(c, kids[1], p)
		binderList(c, kids[0], p)
		Block(c, kids[2], p)
	case luaast.If:
		for i := 0; i+1 < len(kids); i += 2 {
			Expr(c, kids[i], p)
			Block(c, kids[i+1], p)
		}
		if len(kids)%2 == 1 {
			// trailing unpaired block is the else branch
			Block(c, kids[len(kids)-1], p)
		}
	case luaast.Call, luaast.Invoke, luaast.Return:
		ExprList(c, n, p)
	case luaast.Break, luaast.Goto, luaast.Label:
		// terminal
	default:
		if !luaast.IsStatementTag(n.Tag) && !luaast.IsExpressionTag(n.Tag) {
			return c.unknown(n, kindStat)
		}
		return c.malformed(n, "not a statement")
	}
	return nil
}

func traverseExpr(c *Config, n *luaast.Node, path Path) error {
	kids := n.Children
	p := path.push(n)

	switch n.Tag {
	case luaast.Paren:
		if len(kids) != 1 {
			return c.malformed(n, "want a single inner expression")
		}
		Expr(c, kids[0], p)
	case luaast.Call, luaast.Invoke:
		ExprList(c, n, p)
	case luaast.Index:
		if len(kids) != 2 {
			return c.malformed(n, "want a base and a key")
		}
		Expr(c, kids[0], p)
		Expr(c, kids[1], p)
	case luaast.Op:
		switch len(kids) {
		case 1, 2:
			for _, e := range kids {
				Expr(c, e, p)
			}
		default:
			return c.malformed(n, "want one or two operands")
		}
	case luaast.Function:
		if len(kids) != 2 {
			return c.malformed(n, "want a parameter list and a body block")
		}
		binderList(c, kids[0], p)
		Block(c, kids[1], p)
	case luaast.Stat:
		if len(kids) != 2 {
			return c.malformed(n, "want a block and a result expression")
		}
		Block(c, kids[0], p)
		Expr(c, kids[1], p)
	case luaast.Table:
		for _, e := range kids {
			if e != nil && e.Tag == luaast.Pair && len(e.Children) == 2 {
				// the Pair wrapper is transparent: key and value see
				// the table as their nearest ancestor
				Expr(c, e.Children[0], p)
				Expr(c, e.Children[1], p)
				continue
			}
			Expr(c, e, p)
		}
	case luaast.Nil, luaast.Dots, luaast.True, luaast.False,
		luaast.Number, luaast.String, luaast.Id:
		// terminal
	default:
		if !luaast.IsStatementTag(n.Tag) && !luaast.IsExpressionTag(n.Tag) {
			return c.unknown(n, kindExpr)
		}
		return c.malformed(n, "not an expression")
	}
	return nil
}

func traverseBlock(c *Config, n *luaast.Node, path Path) error {
	p := path.push(n)
	for _, s := range n.Children {
		Stat(c, s, p)
	}
	return nil
}

func traverseExprList(c *Config, n *luaast.Node, path Path) error {
	for _, e := range n.Children {
		Expr(c, e, path)
	}
	return nil
}

// binderList invokes the binder hook on each identifier element of
// list. The list itself does not enter the path.
func binderList(c *Config, list *luaast.Node, path Path) {
	if list == nil {
		c.invalid(kindBinderList)
		return
	}
	for _, id := range list.Children {
		binder(c, id, path)
	}
}

// binder invokes the binder hook on id if it is identifier-shaped.
// Non-identifier elements, such as Dots in a parameter list, are
// skipped.
func binder(c *Config, id *luaast.Node, path Path) {
	if c.Binder != nil && id != nil && id.Tag == luaast.Id {
		c.Binder(id, path)
	}
}
