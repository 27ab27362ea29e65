package cypher

// Parameter is a named placeholder whose value is sent alongside the
// statement. Anonymous parameters get a generated name when rendered.
type Parameter struct {
	name     string
	value    any
	hasValue bool
}

// NewParameter creates a parameter without a bound value.
func NewParameter(name string) *Parameter {
	mustNotBeEmpty("parameter name", name)
	return &Parameter{name: name}
}

// AnonymousParameter creates a parameter bound to value whose name is
// chosen by the renderer.
func AnonymousParameter(value any) *Parameter {
	return &Parameter{value: value, hasValue: true}
}

// WithValue returns a copy of p bound to value.
func (p *Parameter) WithValue(value any) *Parameter {
	return &Parameter{name: p.name, value: value, hasValue: true}
}

// Name returns the caller supplied name, or "" for anonymous parameters.
func (p *Parameter) Name() string { return p.name }

// IsAnonymous reports whether the renderer has to pick the name.
func (p *Parameter) IsAnonymous() bool { return p.name == "" }

// Value returns the bound value and whether one was bound.
func (p *Parameter) Value() (any, bool) { return p.value, p.hasValue }

// Accept implements Visitable.
func (p *Parameter) Accept(v Visitor) {
	v.Enter(p)
	v.Leave(p)
}
