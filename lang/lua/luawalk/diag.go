package luawalk

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/Virusilvester/luaforwindows/lang/lua/luaast"
)

// DiagKind classifies a structural problem found during a walk.
type DiagKind int

const (
	// Malformed means the node's tag is classified but its children
	// do not match the shape for that tag. The node is treated as a
	// leaf.
	Malformed DiagKind = iota
	// UnknownTag means the tag is in neither classification set.
	// The node is treated as a leaf.
	UnknownTag
	// InvalidInput means a nil value was found where a node was
	// expected. The sub-walk is abandoned.
	InvalidInput
)

func (k DiagKind) String() string {
	switch k {
	case Malformed:
		return "malformed node"
	case UnknownTag:
		return "unknown tag"
	case InvalidInput:
		return "invalid input"
	default:
		return "invalid diagnostic"
	}
}

// Diagnostic describes a structural problem found during a walk.
// Diagnostics below the root never abort the walk; the public entry
// points additionally return the root node's own diagnostic error so
// top-level contract violations surface to the caller.
type Diagnostic struct {
	Kind DiagKind
	// Node the problem was found at, nil for InvalidInput.
	Node *luaast.Node
	Err  error
}

var logger = log.New(os.Stderr, "[luawalk] ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

func (c *Config) report(d Diagnostic) {
	if c.Report != nil {
		c.Report(d)
		return
	}
	if d.Node != nil {
		logger.Printf("%v\n%s", d.Err, luaast.Dump(d.Node))
		return
	}
	logger.Printf("%v", d.Err)
}

func (c *Config) malformed(n *luaast.Node, msg string) error {
	err := errors.Errorf("malformed %s node: %s", n.Tag, msg)
	c.report(Diagnostic{Kind: Malformed, Node: n, Err: err})
	return err
}

func (c *Config) unknown(n *luaast.Node, k kind) error {
	err := errors.Errorf("unknown tag %q in %s position", n.Tag, k)
	c.report(Diagnostic{Kind: UnknownTag, Node: n, Err: err})
	return err
}

func (c *Config) invalid(k kind) error {
	err := errors.Errorf("nil node where a %s was expected", k)
	c.report(Diagnostic{Kind: InvalidInput, Err: err})
	return err
}
