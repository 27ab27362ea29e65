package cypher

// Named is implemented by pattern elements that can be referred to by a
// symbolic name elsewhere in a statement.
type Named interface {
	// RequiredSymbolicName returns the element's name, or an unresolved
	// name owned by the element when it is anonymous.
	RequiredSymbolicName() *SymbolicName
}

// PatternElement is a node or relationship usable in MATCH.
type PatternElement interface {
	Expression
	Named
	patternElement()
}

// NodeElement is a node pattern: a *Node or a type that embeds one.
type NodeElement interface {
	PatternElement
	nodeElement()
}
