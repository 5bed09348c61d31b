package luaast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tree := Seq(New(Call, Term(Id, "f"), Term(Number, "1")))

	var buf strings.Builder
	Print(tree, &buf, "  ")

	expected := "Block\n" +
		"  Call\n" +
		"    Id[f]\n" +
		"    Number[1]\n"
	assert.Equal(t, expected, buf.String())
}

func TestDump(t *testing.T) {
	out := Dump(Term(Id, "x"))
	assert.Contains(t, out, "Id")
	assert.Contains(t, out, "x")
}
