package cypher

// Statement is a complete Cypher statement: clauses rendered in the order
// they were given.
type Statement struct {
	clauses []Clause
}

// NewStatement creates a statement from one or more clauses.
func NewStatement(clauses ...Clause) *Statement {
	if len(clauses) == 0 {
		mustHave("clause", nil)
	}
	for _, c := range clauses {
		mustHave("clause", c)
	}
	return &Statement{clauses: append([]Clause(nil), clauses...)}
}

// Clauses returns the clauses in order.
func (s *Statement) Clauses() []Clause {
	return append([]Clause(nil), s.clauses...)
}

// Accept implements Visitable.
func (s *Statement) Accept(v Visitor) {
	v.Enter(s)
	visitAll(v, s.clauses)
	v.Leave(s)
}
