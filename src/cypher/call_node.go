package cypher

// CallSubquery represents CALL { ... } constructs.
type CallSubquery struct {
	body *Statement
}

// NewCallSubquery wraps body in CALL { }.
func NewCallSubquery(body *Statement) *CallSubquery {
	mustHave("subquery body", body)
	return &CallSubquery{body: body}
}

// Body returns the nested statement.
func (c *CallSubquery) Body() *Statement { return c.body }

// Accept implements Visitable.
func (c *CallSubquery) Accept(v Visitor) {
	v.Enter(c)
	c.body.Accept(v)
	v.Leave(c)
}

// Type returns the ClauseType for CallSubquery.
func (c *CallSubquery) Type() ClauseType {
	return CallClause
}
