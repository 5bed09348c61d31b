package luaast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
)

// Print writes an indented textual representation of the tree under
// node to the provided writer.
func Print(node *Node, w io.Writer, indent string) {
	var depth int
	Inspect(node, func(n *Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(indent, depth), n)
		depth++
		return true
	})
}

// Dump returns a verbose rendering of the tree under n, including
// literals and child structure, for use in diagnostics.
func Dump(n *Node) string {
	return pretty.Sprint(n)
}
