package cypher

// Match represents a MATCH or OPTIONAL MATCH clause.
type Match struct {
	optional bool
	patterns []PatternElement
	where    *Where
}

// NewMatch creates MATCH over one or more patterns.
func NewMatch(patterns ...PatternElement) *Match {
	return newMatch(false, patterns)
}

// NewOptionalMatch creates OPTIONAL MATCH over one or more patterns.
func NewOptionalMatch(patterns ...PatternElement) *Match {
	return newMatch(true, patterns)
}

func newMatch(optional bool, patterns []PatternElement) *Match {
	if len(patterns) == 0 {
		mustHave("pattern", nil)
	}
	for _, p := range patterns {
		mustHave("pattern", p)
	}
	return &Match{optional: optional, patterns: append([]PatternElement(nil), patterns...)}
}

// Where returns a copy of m filtered by all of conditions.
func (m *Match) Where(conditions ...Expression) *Match {
	return &Match{optional: m.optional, patterns: m.patterns, where: newWhere(conditions)}
}

// IsOptional reports whether this is an OPTIONAL MATCH.
func (m *Match) IsOptional() bool { return m.optional }

// Patterns returns the matched patterns.
func (m *Match) Patterns() []PatternElement {
	return append([]PatternElement(nil), m.patterns...)
}

// Accept implements Visitable.
func (m *Match) Accept(v Visitor) {
	v.Enter(m)
	visitAll(v, m.patterns)
	if m.where != nil {
		m.where.Accept(v)
	}
	v.Leave(m)
}

// Type returns the ClauseType for Match.
func (m *Match) Type() ClauseType {
	return MatchClause
}
