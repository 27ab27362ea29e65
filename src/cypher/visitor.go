package cypher

import "fmt"

// Visitable is implemented by every element of a statement tree.
type Visitable interface {
	// Accept drives v through this element and its children: Enter on
	// the element, then each child in construction order, then Leave.
	Accept(v Visitor)
}

// Visitor observes a depth-first traversal of a statement tree.
type Visitor interface {
	// Enter is called before any child of segment is visited.
	Enter(segment Visitable)
	// Leave is called after all children of segment have been visited.
	Leave(segment Visitable)
}

// Expression is any value that can appear in a Cypher statement.
type Expression interface {
	Visitable
}

// VisitorFuncs adapts a pair of functions to the Visitor interface.
// Either function may be nil.
type VisitorFuncs struct {
	OnEnter func(Visitable)
	OnLeave func(Visitable)
}

// Enter implements Visitor.
func (f VisitorFuncs) Enter(segment Visitable) {
	if f.OnEnter != nil {
		f.OnEnter(segment)
	}
}

// Leave implements Visitor.
func (f VisitorFuncs) Leave(segment Visitable) {
	if f.OnLeave != nil {
		f.OnLeave(segment)
	}
}

// Walk traverses root, calling enter and leave for every element.
func Walk(root Visitable, enter, leave func(Visitable)) {
	mustHave("root", root)
	root.Accept(VisitorFuncs{OnEnter: enter, OnLeave: leave})
}

// visitAll visits each child in order. A nil entry means the composite
// was built around a child it does not hold.
func visitAll[T Visitable](v Visitor, children []T) {
	for i, c := range children {
		if isNil(c) {
			panic(fmt.Errorf("%w: child %d of %T is nil", ErrInconsistentTree, i, children))
		}
		c.Accept(v)
	}
}
