package renderer

import (
	"fmt"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

// nameCatalog is what the pre-scan learns about a tree before rendering.
type nameCatalog struct {
	declared       map[string]struct{}
	declaredParams map[string]struct{}
	referenced     map[*cypher.SymbolicName]struct{}
}

// scanNames walks root once to collect the names chosen by the caller and
// the unresolved names that are referred to somewhere. An anonymous node
// only gets a name in its pattern if something else refers to it.
func scanNames(root cypher.Visitable) *nameCatalog {
	c := &nameCatalog{
		declared:       make(map[string]struct{}),
		declaredParams: make(map[string]struct{}),
		referenced:     make(map[*cypher.SymbolicName]struct{}),
	}
	cypher.Walk(root, func(segment cypher.Visitable) {
		switch s := segment.(type) {
		case *cypher.SymbolicName:
			if s.IsResolved() {
				c.declared[s.Value()] = struct{}{}
			} else {
				c.referenced[s] = struct{}{}
			}
		case *cypher.Parameter:
			if !s.IsAnonymous() {
				c.declaredParams[s.Name()] = struct{}{}
			}
		}
	}, nil)
	return c
}

func (c *nameCatalog) isReferenced(name *cypher.SymbolicName) bool {
	_, ok := c.referenced[name]
	return ok
}

// nameScope hands out the names used in one rendering pass. The same input
// always maps to the same output within a pass.
type nameScope struct {
	generate   bool
	catalog    *nameCatalog
	symbolic   map[string]string
	unresolved map[*cypher.SymbolicName]string
	params     map[string]string
	anonParams map[*cypher.Parameter]string
	nextVar    int
	nextParam  int
}

func newNameScope(generate bool, catalog *nameCatalog) *nameScope {
	return &nameScope{
		generate:   generate,
		catalog:    catalog,
		symbolic:   make(map[string]string),
		unresolved: make(map[*cypher.SymbolicName]string),
		params:     make(map[string]string),
		anonParams: make(map[*cypher.Parameter]string),
	}
}

func (s *nameScope) symbolicName(name *cypher.SymbolicName) string {
	if !name.IsResolved() {
		if n, ok := s.unresolved[name]; ok {
			return n
		}
		n := s.nextVariable()
		s.unresolved[name] = n
		return n
	}
	if !s.generate {
		return name.Value()
	}
	if n, ok := s.symbolic[name.Value()]; ok {
		return n
	}
	n := s.nextVariable()
	s.symbolic[name.Value()] = n
	return n
}

func (s *nameScope) parameterName(p *cypher.Parameter) string {
	if p.IsAnonymous() {
		if n, ok := s.anonParams[p]; ok {
			return n
		}
		n := s.nextParameter()
		s.anonParams[p] = n
		return n
	}
	if !s.generate {
		return p.Name()
	}
	if n, ok := s.params[p.Name()]; ok {
		return n
	}
	n := s.nextParameter()
	s.params[p.Name()] = n
	return n
}

// nextVariable returns the next free vN. Caller names only need to be
// avoided when they are rendered as given.
func (s *nameScope) nextVariable() string {
	for {
		n := fmt.Sprintf("v%d", s.nextVar)
		s.nextVar++
		if _, taken := s.catalog.declared[n]; s.generate || !taken {
			return n
		}
	}
}

func (s *nameScope) nextParameter() string {
	for {
		n := fmt.Sprintf("p%d", s.nextParam)
		s.nextParam++
		if _, taken := s.catalog.declaredParams[n]; s.generate || !taken {
			return n
		}
	}
}
