package parser

import (
	"strings"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

// IsValidIdentifier reports whether s can be used without backticks. It
// accepts exactly the names the renderer leaves unescaped.
func IsValidIdentifier(s string) bool {
	return cypher.IsIdentifier(s)
}

// Text returns the name without backticks, undoing doubled backticks.
func (n *Name) Text() string {
	if n.Escaped == "" {
		return n.Plain
	}
	inner := n.Escaped[1 : len(n.Escaped)-1]
	return strings.ReplaceAll(inner, "``", "`")
}
