package cypher

// NodeLabel is a single label of a node pattern.
type NodeLabel struct {
	value string
}

// Label creates a node label.
func Label(value string) *NodeLabel {
	mustNotBeEmpty("label", value)
	return &NodeLabel{value: value}
}

// Value returns the label text.
func (l *NodeLabel) Value() string { return l.value }

// Accept implements Visitable.
func (l *NodeLabel) Accept(v Visitor) {
	v.Enter(l)
	v.Leave(l)
}

// Node is a node pattern such as (n:Person {name: $name}).
//
// Node is immutable. Named and WithProperties return copies that share the
// label list and the unresolved name with the receiver, so references taken
// from an anonymous node stay valid for its copies. Generated model types
// embed *Node and wrap those copies in their own type.
type Node struct {
	symbolicName *SymbolicName
	anonymous    *SymbolicName
	labels       []*NodeLabel
	properties   *Properties
}

// NewNode creates an anonymous node with at least one label.
func NewNode(primaryLabel string, additionalLabels ...string) *Node {
	labels := make([]*NodeLabel, 0, 1+len(additionalLabels))
	labels = append(labels, Label(primaryLabel))
	for _, l := range additionalLabels {
		labels = append(labels, Label(l))
	}
	return newNode(nil, unresolvedName(), labels, nil)
}

// NewAnyNode creates an anonymous node without labels: ().
func NewAnyNode() *Node {
	return newNode(nil, unresolvedName(), nil, nil)
}

// NewNodeWith creates a node from its parts. Generated types use it as
// their primary constructor. labels is copied.
func NewNodeWith(name *SymbolicName, labels []*NodeLabel, properties *Properties) *Node {
	for _, l := range labels {
		mustHave("label", l)
	}
	return newNode(name, unresolvedName(), append([]*NodeLabel(nil), labels...), properties)
}

func newNode(name, anonymous *SymbolicName, labels []*NodeLabel, properties *Properties) *Node {
	return &Node{
		symbolicName: name,
		anonymous:    anonymous,
		labels:       labels,
		properties:   properties,
	}
}

// Named returns a copy of n with the given symbolic name.
func (n *Node) Named(name string) *Node {
	return n.NamedBy(Name(name))
}

// NamedBy returns a copy of n with the given symbolic name.
func (n *Node) NamedBy(name *SymbolicName) *Node {
	mustHave("symbolic name", name)
	return newNode(name, n.anonymous, n.labels, n.properties)
}

// WithProperties returns a copy of n with its properties replaced. A nil
// map removes them.
func (n *Node) WithProperties(properties *MapExpression) *Node {
	return newNode(n.symbolicName, n.anonymous, n.labels, NewProperties(properties))
}

// WithRawProperties is WithProperties over alternating keys and values.
func (n *Node) WithRawProperties(keysAndValues ...any) *Node {
	return n.WithProperties(NewMapExpression(keysAndValues...))
}

// SymbolicName returns the name given by the caller, if any.
func (n *Node) SymbolicName() (*SymbolicName, bool) {
	return n.symbolicName, n.symbolicName != nil
}

// RequiredSymbolicName implements Named.
func (n *Node) RequiredSymbolicName() *SymbolicName {
	if n.symbolicName != nil {
		return n.symbolicName
	}
	return n.anonymous
}

// Labels returns the label texts in declaration order.
func (n *Node) Labels() []string {
	out := make([]string, len(n.labels))
	for i, l := range n.labels {
		out[i] = l.value
	}
	return out
}

// NodeLabels returns the label nodes. The returned slice is a copy;
// pass it to NewNodeWith to build a variant with the same labels.
func (n *Node) NodeLabels() []*NodeLabel {
	return append([]*NodeLabel(nil), n.labels...)
}

// Properties returns the property map, or nil.
func (n *Node) Properties() *Properties { return n.properties }

// Property creates a lookup of name on this node.
func (n *Node) Property(name string) *Property {
	return NewProperty(n.RequiredSymbolicName(), name)
}

// RelationshipTo creates (n)-[:types]->(other).
func (n *Node) RelationshipTo(other NodeElement, types ...string) *Relationship {
	return NewRelationship(n, other, DirectionLeftToRight, types...)
}

// RelationshipFrom creates (n)<-[:types]-(other).
func (n *Node) RelationshipFrom(other NodeElement, types ...string) *Relationship {
	return NewRelationship(n, other, DirectionRightToLeft, types...)
}

// RelationshipBetween creates (n)-[:types]-(other).
func (n *Node) RelationshipBetween(other NodeElement, types ...string) *Relationship {
	return NewRelationship(n, other, DirectionUndirected, types...)
}

// Accept implements Visitable.
func (n *Node) Accept(v Visitor) {
	v.Enter(n)
	if n.symbolicName != nil {
		n.symbolicName.Accept(v)
	}
	visitAll(v, n.labels)
	if n.properties != nil {
		n.properties.Accept(v)
	}
	v.Leave(n)
}

func (n *Node) patternElement() {}
func (n *Node) nodeElement()    {}
