package cypher

// Return represents a RETURN clause.
type Return struct {
	distinct bool
	items    []Expression
}

// NewReturn creates RETURN items. Nodes and relationships are returned by name.
func NewReturn(items ...Expression) *Return {
	return newReturn(false, items)
}

// NewReturnDistinct creates RETURN DISTINCT items.
func NewReturnDistinct(items ...Expression) *Return {
	return newReturn(true, items)
}

func newReturn(distinct bool, items []Expression) *Return {
	if len(items) == 0 {
		mustHave("return item", nil)
	}
	projected := make([]Expression, len(items))
	for i, item := range items {
		projected[i] = nameOrExpression(item)
	}
	return &Return{distinct: distinct, items: projected}
}

// IsDistinct reports whether this is RETURN DISTINCT.
func (r *Return) IsDistinct() bool { return r.distinct }

// Items returns the projected expressions.
func (r *Return) Items() []Expression {
	return append([]Expression(nil), r.items...)
}

// Accept implements Visitable.
func (r *Return) Accept(v Visitor) {
	v.Enter(r)
	visitAll(v, r.items)
	v.Leave(r)
}

// Type returns the ClauseType for Return.
func (r *Return) Type() ClauseType {
	return ReturnClause
}
