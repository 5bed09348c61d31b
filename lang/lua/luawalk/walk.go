// Package luawalk implements generic depth-first traversal over Lua
// ASTs, the substrate source-to-source transformation passes are
// built on. A caller registers pre-order ("down") and post-order
// ("up") hooks per node kind in a Config, then calls one of the
// entry points Stat, Expr, Block or ExprList on a root node; Guess
// picks the entry point from the node's tag. Hooks receive the node
// together with the path of its enclosing statement, expression and
// block nodes, and a down hook can prune the subtree below a node by
// returning SkipChildren.
package luawalk

import (
	"github.com/pkg/errors"

	"github.com/Virusilvester/luaforwindows/lang/lua/luaast"
)

// Path is the chain of enclosing nodes, nearest ancestor first.
// Expression lists, binder lists and Pair wrappers never appear in
// it. Paths are extended by value on descent, so a hook may retain
// the Path it was given.
type Path []*luaast.Node

// push returns a new path with n as the nearest ancestor. The
// receiver is not modified.
func (p Path) push(n *luaast.Node) Path {
	q := make(Path, 0, len(p)+1)
	q = append(q, n)
	return append(q, p...)
}

// Action is returned by a down hook to direct the walk.
type Action int

const (
	// Continue descends into the node's children.
	Continue Action = iota
	// SkipChildren prunes the subtree below the node. The node's up
	// hook still fires.
	SkipChildren
)

type (
	// DownFunc fires before a node's children are visited.
	DownFunc func(n *luaast.Node, path Path) Action
	// UpFunc fires after a node's children have been visited, also
	// when the down hook pruned them.
	UpFunc func(n *luaast.Node, path Path)
	// BinderFunc fires on each identifier that introduces a new
	// lexical binding: function parameters, loop variables, and
	// names declared by Local and Localrec.
	BinderFunc func(id *luaast.Node, path Path)
)

// Hooks holds the callbacks for one node kind.
type Hooks struct {
	Down DownFunc
	Up   UpFunc
	// Skip prunes below every node of this kind without calling
	// Down. Up still fires.
	Skip bool
}

// Config carries the hooks for a walk. The walker only reads it, so
// a single Config may be shared across walks.
//
// Hooks may rewrite the node they are given in place. Rewriting
// siblings or any node the walk has not reached yet leaves the
// remaining traversal order unspecified; do not rely on it.
type Config struct {
	Stat  Hooks
	Expr  Hooks
	Block Hooks
	// Binder is the single hook for binding identifiers. It fires
	// before the bound name's scope opens, except for Localrec
	// where it fires before the initializer list since the name is
	// in scope for its own right-hand side.
	Binder BinderFunc
	// Report receives structural diagnostics. When nil they are
	// written to the package logger on stderr.
	Report func(Diagnostic)
}

// kind names the four traversal categories, plus the binder
// pseudo-kind used only in diagnostics.
type kind int

const (
	kindStat kind = iota
	kindExpr
	kindBlock
	kindExprList
	kindBinderList
)

func (k kind) String() string {
	switch k {
	case kindStat:
		return "statement"
	case kindExpr:
		return "expression"
	case kindBlock:
		return "block"
	case kindExprList:
		return "expression list"
	default:
		return "binder list"
	}
}

func (c *Config) hooks(k kind) Hooks {
	switch k {
	case kindStat:
		return c.Stat
	case kindExpr:
		return c.Expr
	case kindBlock:
		return c.Block
	default:
		// expression lists never receive hooks as a unit
		return Hooks{}
	}
}

type traverseFunc func(c *Config, n *luaast.Node, path Path) error

// walk wraps a structural traverser with the hook protocol shared by
// all four node kinds: down fires before the children and may prune
// them, the traverser recurses into the children, and up fires after
// the subtree has been handled either way.
func walk(c *Config, k kind, traverse traverseFunc, n *luaast.Node, path Path) error {
	if n == nil {
		return c.invalid(k)
	}

	h := c.hooks(k)
	skip := h.Skip
	if !skip && h.Down != nil {
		switch act := h.Down(n, path); act {
		case Continue:
		case SkipChildren:
			skip = true
		default:
			// a broken hook is a programming error, not a data error
			panic(errors.Errorf("%s down hook returned invalid action %d on %s", k, act, n))
		}
	}

	var err error
	if !skip {
		err = traverse(c, n, path)
	}

	if h.Up != nil {
		h.Up(n, path)
	}
	return err
}

// Stat walks a statement node. The returned error reports a
// structural problem with n itself; problems deeper in the tree are
// delivered as Diagnostics and never abort the walk.
func Stat(c *Config, n *luaast.Node, path Path) error {
	return walk(c, kindStat, traverseStat, n, path)
}

// Expr walks an expression node. Error semantics are as for Stat.
func Expr(c *Config, n *luaast.Node, path Path) error {
	return walk(c, kindExpr, traverseExpr, n, path)
}

// Block walks each child of n as a statement, with n itself pushed
// onto their ancestor path. Error semantics are as for Stat.
func Block(c *Config, n *luaast.Node, path Path) error {
	return walk(c, kindBlock, traverseBlock, n, path)
}

// ExprList walks each child of n as an expression. The list never
// receives hooks as a unit and is never pushed onto the path: its
// elements see the node enclosing the list as their nearest
// ancestor. Error semantics are as for Stat.
func ExprList(c *Config, n *luaast.Node, path Path) error {
	return walk(c, kindExprList, traverseExprList, n, path)
}
