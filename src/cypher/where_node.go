package cypher

// Where represents a WHERE clause with one or more conditions joined by AND.
type Where struct {
	conditions []Expression
}

func newWhere(conditions []Expression) *Where {
	if len(conditions) == 0 {
		return nil
	}
	for _, c := range conditions {
		mustHave("condition", c)
	}
	return &Where{conditions: append([]Expression(nil), conditions...)}
}

// Conditions returns the filter conditions.
func (w *Where) Conditions() []Expression {
	return append([]Expression(nil), w.conditions...)
}

// Accept implements Visitable.
func (w *Where) Accept(v Visitor) {
	v.Enter(w)
	visitAll(v, w.conditions)
	v.Leave(w)
}
