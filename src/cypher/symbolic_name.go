package cypher

// SymbolicName identifies a node, relationship or projected value within a
// statement. A SymbolicName without a value is unresolved: the renderer
// synthesizes a name for it when one is needed.
type SymbolicName struct {
	value string
}

// Name creates a resolved symbolic name.
func Name(value string) *SymbolicName {
	mustNotBeEmpty("symbolic name", value)
	return &SymbolicName{value: value}
}

func unresolvedName() *SymbolicName {
	return &SymbolicName{}
}

// Value returns the name as given by the caller, or "" when unresolved.
func (s *SymbolicName) Value() string { return s.value }

// IsResolved reports whether the name carries a caller supplied value.
func (s *SymbolicName) IsResolved() bool { return s.value != "" }

// Equal compares resolved names by value and unresolved names by identity.
func (s *SymbolicName) Equal(other *SymbolicName) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.IsResolved() || !other.IsResolved() {
		return s == other
	}
	return s.value == other.value
}

// Accept implements Visitable.
func (s *SymbolicName) Accept(v Visitor) {
	v.Enter(s)
	v.Leave(s)
}

func (s *SymbolicName) String() string {
	if !s.IsResolved() {
		return "SymbolicName{unresolved}"
	}
	return "SymbolicName{" + s.value + "}"
}
