package cypher

// Property is a property lookup such as n.name. The container is a
// reference to something defined elsewhere in the statement, usually the
// symbolic name of a node or relationship.
type Property struct {
	container Expression
	name      string
}

// NewProperty creates a lookup of name on container.
func NewProperty(container Expression, name string) *Property {
	mustHave("property container", container)
	mustNotBeEmpty("property name", name)
	return &Property{container: container, name: name}
}

// Name returns the looked up property key.
func (p *Property) Name() string { return p.name }

// Container returns the expression the property is looked up on.
func (p *Property) Container() Expression { return p.container }

// IsEqualTo creates the condition p = other.
func (p *Property) IsEqualTo(other any) *Comparison { return Compare(p, OpEqual, other) }

// IsNotEqualTo creates the condition p <> other.
func (p *Property) IsNotEqualTo(other any) *Comparison { return Compare(p, OpNotEqual, other) }

// GreaterThan creates the condition p > other.
func (p *Property) GreaterThan(other any) *Comparison { return Compare(p, OpGreaterThan, other) }

// LessThan creates the condition p < other.
func (p *Property) LessThan(other any) *Comparison { return Compare(p, OpLessThan, other) }

// Accept implements Visitable.
func (p *Property) Accept(v Visitor) {
	v.Enter(p)
	p.container.Accept(v)
	v.Leave(p)
}
