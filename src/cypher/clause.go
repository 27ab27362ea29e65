package cypher

// ClauseType defines the type of a Cypher clause.
type ClauseType int

// Enum for ClauseType
const (
	UnknownClauseType ClauseType = iota
	MatchClause
	ReturnClause
	CallClause
)

func (t ClauseType) String() string {
	switch t {
	case MatchClause:
		return "MATCH"
	case ReturnClause:
		return "RETURN"
	case CallClause:
		return "CALL"
	default:
		return "UNKNOWN"
	}
}

// Clause represents a single part of a Cypher statement.
type Clause interface {
	Visitable
	// Type returns the specific type of the clause.
	Type() ClauseType
}
