// Package selfref holds node and relationship types in the shape the model
// generator emits for a schema with one self-referential entity: an
// Example that belongs to a parent Example.
package selfref

import "github.com/seuros/gopher-cypher-dsl/src/cypher"

// ExampleLabel is the primary label of Example.
const ExampleLabel = "Example"

// Example is the node type for the Example label.
type Example struct {
	*cypher.Node

	id *cypher.Property
}

// NewExample returns an anonymous Example node.
func NewExample() *Example {
	return wrapExample(cypher.NewNodeWith(nil, []*cypher.NodeLabel{cypher.Label(ExampleLabel)}, nil))
}

func wrapExample(n *cypher.Node) *Example {
	return &Example{Node: n, id: n.Property("id")}
}

// ID is the lookup of the id property on this node.
func (e *Example) ID() *cypher.Property { return e.id }

// Named returns a copy of e with the given symbolic name.
func (e *Example) Named(name string) *Example {
	return wrapExample(e.Node.Named(name))
}

// NamedBy returns a copy of e with the given symbolic name.
func (e *Example) NamedBy(name *cypher.SymbolicName) *Example {
	return wrapExample(e.Node.NamedBy(name))
}

// WithProperties returns a copy of e with its properties replaced.
func (e *Example) WithProperties(properties *cypher.MapExpression) *Example {
	return wrapExample(e.Node.WithProperties(properties))
}

// WithRawProperties is WithProperties over alternating keys and values.
func (e *Example) WithRawProperties(keysAndValues ...any) *Example {
	return wrapExample(e.Node.WithRawProperties(keysAndValues...))
}

// WithParent relates e to its parent.
func (e *Example) WithParent(parent *Example) *BelongsTo {
	return NewBelongsTo(e, parent)
}
