package selfref

import "github.com/seuros/gopher-cypher-dsl/src/cypher"

// BelongsToType is the relationship type of BelongsTo.
const BelongsToType = "BELONGS_TO"

// BelongsTo is the relationship (child)-[:BELONGS_TO]->(parent).
type BelongsTo struct {
	*cypher.Relationship

	child  *Example
	parent *Example
}

// NewBelongsTo relates child to parent.
func NewBelongsTo(child, parent *Example) *BelongsTo {
	return &BelongsTo{
		Relationship: cypher.NewRelationship(child, parent, cypher.DirectionLeftToRight, BelongsToType),
		child:        child,
		parent:       parent,
	}
}

// Child returns the start node.
func (b *BelongsTo) Child() *Example { return b.child }

// Parent returns the end node.
func (b *BelongsTo) Parent() *Example { return b.parent }

// Named returns a copy of b with the given symbolic name.
func (b *BelongsTo) Named(name string) *BelongsTo {
	return &BelongsTo{Relationship: b.Relationship.Named(name), child: b.child, parent: b.parent}
}

// NamedBy returns a copy of b with the given symbolic name.
func (b *BelongsTo) NamedBy(name *cypher.SymbolicName) *BelongsTo {
	return &BelongsTo{Relationship: b.Relationship.NamedBy(name), child: b.child, parent: b.parent}
}

// WithProperties returns a copy of b with its properties replaced.
func (b *BelongsTo) WithProperties(properties *cypher.MapExpression) *BelongsTo {
	return &BelongsTo{Relationship: b.Relationship.WithProperties(properties), child: b.child, parent: b.parent}
}

// WithRawProperties is WithProperties over alternating keys and values.
func (b *BelongsTo) WithRawProperties(keysAndValues ...any) *BelongsTo {
	return &BelongsTo{Relationship: b.Relationship.WithRawProperties(keysAndValues...), child: b.child, parent: b.parent}
}
