package renderer

import (
	"strings"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

// escapeName quotes s in backticks when always is set or when s is not a
// plain identifier. Backticks inside s are doubled.
func escapeName(s string, always bool) string {
	if !always && cypher.IsIdentifier(s) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

var stringLiteralEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteString(s string) string {
	return "'" + stringLiteralEscaper.Replace(s) + "'"
}
