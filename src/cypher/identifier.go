package cypher

import "regexp"

// IdentifierPattern matches a name that can be written without backticks.
const IdentifierPattern = `[a-zA-Z_][a-zA-Z0-9_]*`

var identifierPattern = regexp.MustCompile(`^` + IdentifierPattern + `$`)

// IsIdentifier reports whether s can be written without backticks.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
