package cypher

// Direction of a relationship pattern.
type Direction int

const (
	// DirectionLeftToRight renders as (a)-->(b).
	DirectionLeftToRight Direction = iota
	// DirectionRightToLeft renders as (a)<--(b).
	DirectionRightToLeft
	// DirectionUndirected renders as (a)--(b).
	DirectionUndirected
)

func (d Direction) String() string {
	switch d {
	case DirectionLeftToRight:
		return "LTR"
	case DirectionRightToLeft:
		return "RTL"
	case DirectionUndirected:
		return "UNDIRECTED"
	default:
		return "UNKNOWN"
	}
}

// RelationshipTypes lists the types a relationship pattern may have.
type RelationshipTypes struct {
	values []string
}

// Values returns the types in declaration order.
func (t *RelationshipTypes) Values() []string {
	return append([]string(nil), t.values...)
}

// Accept implements Visitable.
func (t *RelationshipTypes) Accept(v Visitor) {
	v.Enter(t)
	v.Leave(t)
}

// RelationshipDetails is the bracketed part of a relationship pattern.
type RelationshipDetails struct {
	direction    Direction
	symbolicName *SymbolicName
	anonymous    *SymbolicName
	types        *RelationshipTypes
	properties   *Properties
}

// Direction returns the arrow direction.
func (d *RelationshipDetails) Direction() Direction { return d.direction }

// SymbolicName returns the name given by the caller, if any.
func (d *RelationshipDetails) SymbolicName() (*SymbolicName, bool) {
	return d.symbolicName, d.symbolicName != nil
}

// RequiredSymbolicName implements Named.
func (d *RelationshipDetails) RequiredSymbolicName() *SymbolicName {
	if d.symbolicName != nil {
		return d.symbolicName
	}
	return d.anonymous
}

// Types returns the relationship types, or nil when untyped.
func (d *RelationshipDetails) Types() *RelationshipTypes { return d.types }

// Properties returns the property map, or nil.
func (d *RelationshipDetails) Properties() *Properties { return d.properties }

// Accept implements Visitable.
func (d *RelationshipDetails) Accept(v Visitor) {
	v.Enter(d)
	if d.symbolicName != nil {
		d.symbolicName.Accept(v)
	}
	if d.types != nil {
		d.types.Accept(v)
	}
	if d.properties != nil {
		d.properties.Accept(v)
	}
	v.Leave(d)
}

// Relationship is a pattern connecting two nodes. The nodes are held by
// reference: the relationship does not copy them, and the same node may
// appear in other parts of the statement.
type Relationship struct {
	start   NodeElement
	end     NodeElement
	details *RelationshipDetails
}

// NewRelationship connects start to end.
func NewRelationship(start, end NodeElement, direction Direction, types ...string) *Relationship {
	mustHave("start node", start)
	mustHave("end node", end)
	var t *RelationshipTypes
	if len(types) > 0 {
		for _, typ := range types {
			mustNotBeEmpty("relationship type", typ)
		}
		t = &RelationshipTypes{values: append([]string(nil), types...)}
	}
	return &Relationship{
		start: start,
		end:   end,
		details: &RelationshipDetails{
			direction: direction,
			anonymous: unresolvedName(),
			types:     t,
		},
	}
}

func (r *Relationship) withDetails(name *SymbolicName, properties *Properties) *Relationship {
	return &Relationship{
		start: r.start,
		end:   r.end,
		details: &RelationshipDetails{
			direction:    r.details.direction,
			symbolicName: name,
			anonymous:    r.details.anonymous,
			types:        r.details.types,
			properties:   properties,
		},
	}
}

// Named returns a copy of r with the given symbolic name.
func (r *Relationship) Named(name string) *Relationship {
	return r.NamedBy(Name(name))
}

// NamedBy returns a copy of r with the given symbolic name.
func (r *Relationship) NamedBy(name *SymbolicName) *Relationship {
	mustHave("symbolic name", name)
	return r.withDetails(name, r.details.properties)
}

// WithProperties returns a copy of r with its properties replaced.
func (r *Relationship) WithProperties(properties *MapExpression) *Relationship {
	return r.withDetails(r.details.symbolicName, NewProperties(properties))
}

// WithRawProperties is WithProperties over alternating keys and values.
func (r *Relationship) WithRawProperties(keysAndValues ...any) *Relationship {
	return r.WithProperties(NewMapExpression(keysAndValues...))
}

// Start returns the start node exactly as passed to NewRelationship.
func (r *Relationship) Start() NodeElement { return r.start }

// End returns the end node exactly as passed to NewRelationship.
func (r *Relationship) End() NodeElement { return r.end }

// Details returns the bracketed part of the pattern.
func (r *Relationship) Details() *RelationshipDetails { return r.details }

// RequiredSymbolicName implements Named.
func (r *Relationship) RequiredSymbolicName() *SymbolicName {
	return r.details.RequiredSymbolicName()
}

// Property creates a lookup of name on this relationship.
func (r *Relationship) Property(name string) *Property {
	return NewProperty(r.RequiredSymbolicName(), name)
}

// Accept implements Visitable.
func (r *Relationship) Accept(v Visitor) {
	v.Enter(r)
	r.start.Accept(v)
	r.details.Accept(v)
	r.end.Accept(v)
	v.Leave(r)
}

func (r *Relationship) patternElement() {}
