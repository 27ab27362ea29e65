package renderer

import (
	"fmt"
	"strings"
)

// Dialect names a target database version whose syntax the renderer follows.
type Dialect int

const (
	// DialectDefault works with Neo4j 4.4 and prior.
	DialectDefault Dialect = iota + 1
	// DialectNeo4j5 follows Neo4j 5: point.distance and IS NOT NULL instead
	// of the removed distance and exists functions.
	DialectNeo4j5
	// DialectNeo4j35 writes parameters as {name}, the form used before Neo4j 4.
	DialectNeo4j35
)

var dialectNames = map[Dialect]string{
	DialectDefault: "DEFAULT",
	DialectNeo4j5:  "NEO4J_5",
	DialectNeo4j35: "NEO4J_3_5",
}

func (d Dialect) valid() bool {
	_, ok := dialectNames[d]
	return ok
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseDialect parses a dialect name as returned by Dialect.String.
func ParseDialect(name string) (Dialect, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for d, n := range dialectNames {
		if n == want {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// invocationForm is the text around and between the arguments of a call.
type invocationForm struct {
	open      string
	separator string
	close     string
}

// dialectStrategy holds everything that differs between dialects. The
// renderer looks it up once per pass.
type dialectStrategy interface {
	parameter(name string) string
	invocation(name string, argc int) invocationForm
}

var strategies = map[Dialect]dialectStrategy{
	DialectDefault: defaultDialect{},
	DialectNeo4j5:  neo4j5Dialect{},
	DialectNeo4j35: neo4j35Dialect{},
}

func strategyFor(d Dialect) dialectStrategy {
	if s, ok := strategies[d]; ok {
		return s
	}
	return defaultDialect{}
}

type defaultDialect struct{}

func (defaultDialect) parameter(name string) string { return "$" + name }

func (defaultDialect) invocation(name string, _ int) invocationForm {
	return invocationForm{open: name + "(", separator: ", ", close: ")"}
}

type neo4j5Dialect struct{ defaultDialect }

func (d neo4j5Dialect) invocation(name string, argc int) invocationForm {
	switch {
	case strings.EqualFold(name, "distance"):
		return d.defaultDialect.invocation("point.distance", argc)
	case strings.EqualFold(name, "exists") && argc == 1:
		return invocationForm{close: " IS NOT NULL"}
	}
	return d.defaultDialect.invocation(name, argc)
}

type neo4j35Dialect struct{ defaultDialect }

func (neo4j35Dialect) parameter(name string) string { return "{" + name + "}" }
