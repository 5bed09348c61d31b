package luaast

import (
	"fmt"
	"sort"
)

// Tag identifies the grammar production a node instantiates.
type Tag string

const (
	// -- Statements

	// Do is a do...end statement; its single child is the block.
	Do Tag = "Do"
	// Set is an assignment; children are the left-hand and
	// right-hand expression lists.
	Set Tag = "Set"
	// While is a while loop; children are the condition and the body block.
	While Tag = "While"
	// Repeat is a repeat...until loop; children are the body block
	// and the condition.
	Repeat Tag = "Repeat"
	// Local is a local declaration; children are the name list and
	// an optional value list.
	Local Tag = "Local"
	// Localrec is a recursive local declaration (local function);
	// children are the name list and the value list.
	Localrec Tag = "Localrec"
	// Fornum is a numeric for loop; children are the loop variable,
	// two or three range expressions, and the body block.
	Fornum Tag = "Fornum"
	// Forin is a generic for loop; children are the variable list,
	// the value list, and the body block.
	Forin Tag = "Forin"
	// If is a conditional; children alternate condition and block,
	// with an optional trailing else block.
	If Tag = "If"
	// Return is a return statement; children are the returned expressions.
	Return Tag = "Return"
	// Break is a break statement.
	Break Tag = "Break"
	// Goto is a goto statement; the label is the literal payload.
	Goto Tag = "Goto"
	// Label is a goto target; the name is the literal payload.
	Label Tag = "Label"

	// -- Expressions

	// Nil is the nil literal.
	Nil Tag = "Nil"
	// Dots is the vararg expression "...".
	Dots Tag = "Dots"
	// True is the true literal.
	True Tag = "True"
	// False is the false literal.
	False Tag = "False"
	// Number is a number literal; the source text is the literal payload.
	Number Tag = "Number"
	// String is a string literal; the value is the literal payload.
	String Tag = "String"
	// Id is an identifier reference; the name is the literal payload.
	Id Tag = "Id"
	// Paren is a parenthesized expression truncating multiple
	// results; its single child is the inner expression.
	Paren Tag = "Paren"
	// Op is an operator application; the operator name is the
	// literal payload and the children are one or two operands.
	Op Tag = "Op"
	// Index is a table indexing expression; children are the base
	// and the key.
	Index Tag = "Index"
	// Function is a function literal; children are the parameter
	// list and the body block.
	Function Tag = "Function"
	// Table is a table constructor; children are values and Pair nodes.
	Table Tag = "Table"
	// Stat is an expression with a statement prefix; children are
	// the block and the result expression.
	Stat Tag = "Stat"

	// -- Statements and expressions

	// Call is a function call: a statement when used for its side
	// effect, an expression when used for its value. Children are
	// the callee followed by the arguments.
	Call Tag = "Call"
	// Invoke is a method call, statement or expression like Call.
	// Children are the receiver, the method name, and the arguments.
	Invoke Tag = "Invoke"

	// -- Other nodes

	// Pair is a key/value entry in a table constructor. It is not a
	// production of its own: walkers treat it as transparent.
	Pair Tag = "Pair"
)

// Node is a Lua AST node: a tagged, ordered, mutable record. An
// empty Tag marks an untagged aggregate, a bare sequence whose
// meaning depends on position (block of statements, expression list,
// name list). Nodes are rewritten in place through their pointer, so
// a rewrite stays visible to every holder of a reference, recorded
// ancestor paths included.
type Node struct {
	// Tag of the grammar production, empty for an untagged aggregate.
	Tag Tag
	// Literal payload of Id, String, Number, Goto and Label nodes,
	// and the operator name of an Op node.
	Literal string
	// Children nodes, ordered as produced by the front-end.
	Children []*Node
}

// New returns a tagged node over the given children.
func New(tag Tag, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Seq returns an untagged aggregate: a block in statement position,
// a bare list elsewhere.
func Seq(children ...*Node) *Node {
	return &Node{Children: children}
}

// Term returns a childless node carrying a literal payload,
// e.g. Term(Id, "x") or Term(Number, "42").
func Term(tag Tag, literal string) *Node {
	return &Node{Tag: tag, Literal: literal}
}

// String returns a short representation of the node.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Tag {
	case "":
		return "Block"
	case String:
		return fmt.Sprintf("String[%q]", n.Literal)
	case Id, Number, Op, Goto, Label:
		return fmt.Sprintf("%s[%s]", n.Tag, n.Literal)
	default:
		return string(n.Tag)
	}
}

// The statement and expression tag sets are fixed reference data,
// built once and never mutated. Call and Invoke are in both: they
// are statements when used for their side effect and expressions
// when used for their value.
var statementTags = map[Tag]bool{
	Do: true, Set: true, While: true, Repeat: true,
	Local: true, Localrec: true, Fornum: true, Forin: true,
	If: true, Call: true, Invoke: true, Return: true,
	Break: true, Goto: true, Label: true,
}

var expressionTags = map[Tag]bool{
	Nil: true, Dots: true, True: true, False: true,
	Number: true, String: true, Id: true, Paren: true,
	Op: true, Index: true, Function: true, Table: true,
	Stat: true, Call: true, Invoke: true,
}

// IsStatementTag reports whether tag can start a statement.
func IsStatementTag(tag Tag) bool {
	return statementTags[tag]
}

// IsExpressionTag reports whether tag can start an expression.
func IsExpressionTag(tag Tag) bool {
	return expressionTags[tag]
}

// StatementTags returns the statement tag set, sorted.
func StatementTags() []Tag {
	return tags(statementTags)
}

// ExpressionTags returns the expression tag set, sorted.
func ExpressionTags() []Tag {
	return tags(expressionTags)
}

func tags(set map[Tag]bool) []Tag {
	out := make([]Tag, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
