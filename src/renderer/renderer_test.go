package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

func exampleStatement(name string) *cypher.Statement {
	n := cypher.NewNode("Example").Named(name)
	return cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(n))
}

func TestRenderExampleNode(t *testing.T) {
	stmt := exampleStatement("n")

	assert.Equal(t, "MATCH (n:`Example`) RETURN n", Render(stmt, DefaultConfig()))
	assert.Equal(t, "MATCH (n:`Example`) RETURN n", Render(stmt, nil), "nil means the default configuration")
	assert.Equal(t, "MATCH (n:Example)\nRETURN n", Render(stmt, PrettyPrinting()))
}

func TestRenderClauses(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	a := cypher.NewNode("A").Named("a")
	b := cypher.NewNode("B").Named("b")

	tests := []struct {
		name     string
		stmt     *cypher.Statement
		expected string
	}{
		{
			name: "where with parameter",
			stmt: cypher.NewStatement(
				cypher.NewMatch(n).Where(n.Property("name").IsEqualTo(cypher.NewParameter("name"))),
				cypher.NewReturn(n),
			),
			expected: "MATCH (n:`Example`) WHERE n.name = $name RETURN n",
		},
		{
			name: "conditions joined by AND",
			stmt: cypher.NewStatement(
				cypher.NewMatch(n).Where(n.Property("age").GreaterThan(21), n.Property("name").IsNotEqualTo("x")),
				cypher.NewReturn(n.Property("name")),
			),
			expected: "MATCH (n:`Example`) WHERE n.age > 21 AND n.name <> 'x' RETURN n.name",
		},
		{
			name:     "optional match and distinct",
			stmt:     cypher.NewStatement(cypher.NewOptionalMatch(n), cypher.NewReturnDistinct(n)),
			expected: "OPTIONAL MATCH (n:`Example`) RETURN DISTINCT n",
		},
		{
			name:     "several patterns",
			stmt:     cypher.NewStatement(cypher.NewMatch(a, b), cypher.NewReturn(a, b)),
			expected: "MATCH (a:`A`), (b:`B`) RETURN a, b",
		},
		{
			name:     "aliased count",
			stmt:     cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(cypher.As(cypher.Count(n), "total"))),
			expected: "MATCH (n:`Example`) RETURN count(n) AS total",
		},
		{
			name:     "id function",
			stmt:     cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(cypher.ID(n))),
			expected: "MATCH (n:`Example`) RETURN id(n)",
		},
		{
			name: "node properties",
			stmt: cypher.NewStatement(
				cypher.NewMatch(n.WithRawProperties("name", "Ada", "age", 42)),
				cypher.NewReturn(n),
			),
			expected: "MATCH (n:`Example` {name: 'Ada', age: 42}) RETURN n",
		},
		{
			name: "node without labels",
			stmt: cypher.NewStatement(
				cypher.NewMatch(cypher.NewAnyNode().Named("x").WithRawProperties("id", 1)),
				cypher.NewReturn(cypher.Name("x")),
			),
			expected: "MATCH (x {id: 1}) RETURN x",
		},
		{
			name: "anonymous node with properties",
			stmt: cypher.NewStatement(
				cypher.NewMatch(cypher.NewAnyNode().WithRawProperties("id", 1).RelationshipTo(n)),
				cypher.NewReturn(n),
			),
			expected: "MATCH ({id: 1})-->(n:`Example`) RETURN n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.stmt, DefaultConfig()))
		})
	}
}

func TestRenderRelationships(t *testing.T) {
	a := cypher.NewNode("Person").Named("a")
	b := cypher.NewNode("Person").Named("b")

	tests := []struct {
		name     string
		pattern  cypher.PatternElement
		expected string
	}{
		{"named and typed", a.RelationshipTo(b, "KNOWS").Named("r"), "(a:`Person`)-[r:`KNOWS`]->(b:`Person`)"},
		{"typed", a.RelationshipTo(b, "KNOWS"), "(a:`Person`)-[:`KNOWS`]->(b:`Person`)"},
		{"incoming bare", a.RelationshipFrom(b), "(a:`Person`)<--(b:`Person`)"},
		{"undirected bare", a.RelationshipBetween(b), "(a:`Person`)--(b:`Person`)"},
		{"several types", a.RelationshipBetween(b, "LIKES", "LOVES"), "(a:`Person`)-[:`LIKES`|`LOVES`]-(b:`Person`)"},
		{"typed with properties", a.RelationshipTo(b, "KNOWS").WithRawProperties("since", 2020), "(a:`Person`)-[:`KNOWS` {since: 2020}]->(b:`Person`)"},
		{"properties only", a.RelationshipTo(b).WithRawProperties("since", 2020), "(a:`Person`)-[{since: 2020}]->(b:`Person`)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := cypher.NewStatement(cypher.NewMatch(tt.pattern), cypher.NewReturn(a))
			assert.Equal(t, "MATCH "+tt.expected+" RETURN a", Render(stmt, DefaultConfig()))
		})
	}
}

func TestRenderAnonymousElements(t *testing.T) {
	t.Run("unreferenced node stays anonymous", func(t *testing.T) {
		m := cypher.NewNode("Movie").Named("m")
		stmt := cypher.NewStatement(
			cypher.NewMatch(cypher.NewNode("Person").RelationshipTo(m, "ACTED_IN")),
			cypher.NewReturn(m),
		)
		assert.Equal(t, "MATCH (:`Person`)-[:`ACTED_IN`]->(m:`Movie`) RETURN m", Render(stmt, DefaultConfig()))
	})

	t.Run("referenced node gets a generated name", func(t *testing.T) {
		n := cypher.NewNode("Example")
		stmt := cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(n))
		assert.Equal(t, "MATCH (v0:`Example`) RETURN v0", Render(stmt, DefaultConfig()))
	})

	t.Run("referenced relationship gets a generated name", func(t *testing.T) {
		a := cypher.NewNode("Person").Named("a")
		r := a.RelationshipTo(cypher.NewNode("Person").Named("b"), "KNOWS")
		stmt := cypher.NewStatement(cypher.NewMatch(r), cypher.NewReturn(cypher.Count(r)))
		assert.Equal(t, "MATCH (a:`Person`)-[v0:`KNOWS`]->(b:`Person`) RETURN count(v0)", Render(stmt, DefaultConfig()))
	})

	t.Run("generated names skip caller names", func(t *testing.T) {
		x := cypher.NewNode("Example").Named("v0")
		anon := cypher.NewNode("Other")
		stmt := cypher.NewStatement(cypher.NewMatch(x.RelationshipTo(anon)), cypher.NewReturn(x, anon))
		assert.Equal(t, "MATCH (v0:`Example`)-->(v1:`Other`) RETURN v0, v1", Render(stmt, DefaultConfig()))
	})

	t.Run("property of anonymous node", func(t *testing.T) {
		n := cypher.NewNode("Example")
		stmt := cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(n.Property("name")))
		assert.Equal(t, "MATCH (v0:`Example`) RETURN v0.name", Render(stmt, DefaultConfig()))
	})
}

func TestRenderCopiesOfAnonymousElements(t *testing.T) {
	t.Run("node", func(t *testing.T) {
		n := cypher.NewNode("Person")
		stmt := cypher.NewStatement(
			cypher.NewMatch(n.WithRawProperties("active", true)),
			cypher.NewReturn(n.Property("age")),
		)
		assert.Equal(t, "MATCH (v0:`Person` {active: true}) RETURN v0.age", Render(stmt, DefaultConfig()))
	})

	t.Run("relationship", func(t *testing.T) {
		a := cypher.NewNode("Person").Named("a")
		r := a.RelationshipTo(cypher.NewNode("Person").Named("b"), "KNOWS")
		stmt := cypher.NewStatement(
			cypher.NewMatch(r.WithRawProperties("since", 2020)),
			cypher.NewReturn(r.Property("since")),
		)
		assert.Equal(t, "MATCH (a:`Person`)-[v0:`KNOWS` {since: 2020}]->(b:`Person`) RETURN v0.since", Render(stmt, DefaultConfig()))
	})
}

func TestRenderIgnoresChangesToLiteralSource(t *testing.T) {
	ids := []int{1, 2}
	n := cypher.NewNode("Example").Named("n")
	stmt := cypher.NewStatement(cypher.NewMatch(n).Where(n.Property("id").IsEqualTo(ids)), cypher.NewReturn(n))

	r := New()
	uncached := New(WithCacheSize(0))
	first := r.Render(stmt, DefaultConfig())
	assert.Equal(t, "MATCH (n:`Example`) WHERE n.id = [1, 2] RETURN n", first)

	ids[0] = 99
	assert.Equal(t, first, r.Render(stmt, DefaultConfig()))
	assert.Equal(t, first, uncached.Render(stmt, DefaultConfig()))
}

func filteredStatement(name, param string) *cypher.Statement {
	n := cypher.NewNode("Example").Named(name)
	return cypher.NewStatement(
		cypher.NewMatch(n).Where(n.Property("name").IsEqualTo(cypher.NewParameter(param))),
		cypher.NewReturn(n),
	)
}

func TestGeneratedNames(t *testing.T) {
	generated := NewConfig().UseGeneratedNames(true).Build()

	first := filteredStatement("n", "name")
	second := filteredStatement("person", "value")

	assert.Equal(t, "MATCH (v0:`Example`) WHERE v0.name = $p0 RETURN v0", Render(first, generated))
	assert.Equal(t, Render(first, generated), Render(first, generated), "rendering is stable")
	assert.Equal(t, Render(first, generated), Render(second, generated), "caller names do not matter")
	assert.NotEqual(t, Render(first, DefaultConfig()), Render(second, DefaultConfig()))
}

func TestGeneratedNamesFollowFirstEncounter(t *testing.T) {
	generated := NewConfig().UseGeneratedNames(true).Build()
	a := cypher.NewNode("A").Named("z")
	b := cypher.NewNode("B").Named("y")
	anon := cypher.NewNode("C")
	stmt := cypher.NewStatement(
		cypher.NewMatch(a.RelationshipTo(b), anon),
		cypher.NewReturn(anon, b, a),
	)

	assert.Equal(t, "MATCH (v0:`A`)-->(v1:`B`), (v2:`C`) RETURN v2, v1, v0", Render(stmt, generated))
}

func TestRenderDialects(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	point := cypher.NewParameter("point")
	stmt := cypher.NewStatement(
		cypher.NewMatch(n).Where(cypher.Exists(n.Property("location")), n.Property("name").IsEqualTo(cypher.NewParameter("name"))),
		cypher.NewReturn(cypher.As(cypher.Distance(n.Property("location"), point), "d")),
	)

	tests := []struct {
		dialect  Dialect
		expected string
	}{
		{DialectDefault, "MATCH (n:`Example`) WHERE exists(n.location) AND n.name = $name RETURN distance(n.location, $point) AS d"},
		{DialectNeo4j5, "MATCH (n:`Example`) WHERE n.location IS NOT NULL AND n.name = $name RETURN point.distance(n.location, $point) AS d"},
		{DialectNeo4j35, "MATCH (n:`Example`) WHERE exists(n.location) AND n.name = {name} RETURN distance(n.location, {point}) AS d"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			config := NewConfig().WithDialect(tt.dialect).Build()
			assert.Equal(t, tt.expected, Render(stmt, config))
		})
	}
}

func TestRenderParameters(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	stmt := cypher.NewStatement(
		cypher.NewMatch(n).Where(
			n.Property("name").IsEqualTo(cypher.NewParameter("name").WithValue("Ada")),
			n.Property("age").GreaterThan(cypher.AnonymousParameter(30)),
			n.Property("role").IsEqualTo(cypher.NewParameter("role")),
		),
		cypher.NewReturn(n),
	)

	result := New(WithCacheSize(0)).RenderContext(context.Background(), stmt, DefaultConfig())
	assert.Equal(t, "MATCH (n:`Example`) WHERE n.name = $name AND n.age > $p0 AND n.role = $role RETURN n", result.Cypher)
	assert.Equal(t, map[string]any{"name": "Ada", "p0": 30}, result.Parameters)

	old := NewConfig().WithDialect(DialectNeo4j35).Build()
	assert.Equal(t, "MATCH (n:`Example`) WHERE n.name = {name} AND n.age > {p0} AND n.role = {role} RETURN n", Render(stmt, old))
}

func TestAnonymousParametersAvoidCallerNames(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	stmt := cypher.NewStatement(
		cypher.NewMatch(n).Where(
			n.Property("a").IsEqualTo(cypher.NewParameter("p0")),
			n.Property("b").IsEqualTo(cypher.AnonymousParameter(1)),
		),
		cypher.NewReturn(n),
	)

	assert.Equal(t, "MATCH (n:`Example`) WHERE n.a = $p0 AND n.b = $p1 RETURN n", Render(stmt, DefaultConfig()))
}

func TestConflictingParameterValues(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	same := cypher.NewStatement(
		cypher.NewMatch(n).Where(
			n.Property("a").IsEqualTo(cypher.NewParameter("x").WithValue(1)),
			n.Property("b").IsEqualTo(cypher.NewParameter("x").WithValue(1)),
		),
		cypher.NewReturn(n),
	)
	assert.NotPanics(t, func() { Render(same, DefaultConfig()) })

	conflicting := cypher.NewStatement(
		cypher.NewMatch(n).Where(
			n.Property("a").IsEqualTo(cypher.NewParameter("x").WithValue(1)),
			n.Property("b").IsEqualTo(cypher.NewParameter("x").WithValue(2)),
		),
		cypher.NewReturn(n),
	)
	err := recoverError(func() { Render(conflicting, DefaultConfig()) })
	assert.ErrorIs(t, err, ErrConflictingParameters)
}

func TestRenderEscaping(t *testing.T) {
	n := cypher.NewNode("My Label", "a`b").Named("my node").WithRawProperties("first name", "x")
	stmt := cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(n.Property("last name")))

	assert.Equal(t,
		"MATCH (`my node`:`My Label`:`a``b` {`first name`: 'x'})\nRETURN `my node`.`last name`",
		Render(stmt, PrettyPrinting()))
	assert.Equal(t,
		"MATCH (`my node`:`My Label`:`a``b` {`first name`: 'x'}) RETURN `my node`.`last name`",
		Render(stmt, DefaultConfig()))

	plain := NewConfig().AlwaysEscapeNames(false).Build()
	assert.Equal(t, "MATCH (n:Example) RETURN n", Render(exampleStatement("n"), plain))
}

func TestRenderCallSubquery(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	body := cypher.NewStatement(
		cypher.NewMatch(n).Where(n.Property("id").IsEqualTo(1)),
		cypher.NewReturn(n),
	)
	stmt := cypher.NewStatement(cypher.NewCallSubquery(body), cypher.NewReturn(n))

	tests := []struct {
		name     string
		config   *Configuration
		expected string
	}{
		{
			name:     "single line",
			config:   DefaultConfig(),
			expected: "CALL {MATCH (n:`Example`) WHERE n.id = 1 RETURN n} RETURN n",
		},
		{
			name:     "spaces",
			config:   PrettyPrinting(),
			expected: "CALL {\n  MATCH (n:Example)\n  WHERE n.id = 1\n  RETURN n\n}\nRETURN n",
		},
		{
			name:     "four spaces",
			config:   NewConfig().WithPrettyPrint(true).WithIndentSize(4).Build(),
			expected: "CALL {\n    MATCH (n:Example)\n    WHERE n.id = 1\n    RETURN n\n}\nRETURN n",
		},
		{
			name:     "tabs",
			config:   NewConfig().WithPrettyPrint(true).WithIndentStyle(IndentStyleTab).WithIndentSize(8).Build(),
			expected: "CALL {\n\tMATCH (n:Example)\n\tWHERE n.id = 1\n\tRETURN n\n}\nRETURN n",
		},
		{
			name:     "no indentation",
			config:   NewConfig().WithPrettyPrint(true).WithIndentSize(0).Build(),
			expected: "CALL {\nMATCH (n:Example)\nWHERE n.id = 1\nRETURN n\n}\nRETURN n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(stmt, tt.config))
		})
	}
}

func TestRenderNestedCallSubquery(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	inner := cypher.NewStatement(cypher.NewMatch(n), cypher.NewReturn(n))
	middle := cypher.NewStatement(cypher.NewCallSubquery(inner), cypher.NewReturn(n))
	stmt := cypher.NewStatement(cypher.NewCallSubquery(middle), cypher.NewReturn(n))

	expected := "CALL {\n" +
		"  CALL {\n" +
		"    MATCH (n:Example)\n" +
		"    RETURN n\n" +
		"  }\n" +
		"  RETURN n\n" +
		"}\n" +
		"RETURN n"
	assert.Equal(t, expected, Render(stmt, PrettyPrinting()))
}

// passthrough is a clause kind the renderer has no rule for.
type passthrough struct {
	inner cypher.Visitable
}

func (p passthrough) Accept(v cypher.Visitor) {
	v.Enter(p)
	p.inner.Accept(v)
	v.Leave(p)
}

func (passthrough) Type() cypher.ClauseType { return cypher.UnknownClauseType }

func TestUnknownSegmentsRenderTheirChildren(t *testing.T) {
	n := cypher.NewNode("Example").Named("n")
	stmt := cypher.NewStatement(cypher.NewMatch(n), passthrough{inner: cypher.NewReturn(n)})

	assert.Equal(t, "MATCH (n:`Example`) RETURN n", Render(stmt, DefaultConfig()))
}

func TestRenderRejectsNilRoot(t *testing.T) {
	err := recoverError(func() { Render(nil, DefaultConfig()) })
	assert.ErrorIs(t, err, cypher.ErrInvalidArgument)
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{nil, "NULL"},
		{true, "true"},
		{false, "false"},
		{"plain", "'plain'"},
		{"it's", `'it\'s'`},
		{`back\slash`, `'back\\slash'`},
		{42, "42"},
		{int8(-3), "-3"},
		{uint64(7), "7"},
		{1.5, "1.5"},
		{2.0, "2.0"},
		{float32(0.25), "0.25"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{[]int{1, 2}, "[1, 2]"},
		{[]any{"a", nil, []string{"b"}}, "['a', NULL, ['b']]"},
		{[0]int{}, "[]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T %v", tt.value, tt.value), func(t *testing.T) {
			assert.Equal(t, tt.expected, formatLiteral(tt.value))
		})
	}
}

func TestRenderFromManyGoroutines(t *testing.T) {
	stmt := filteredStatement("n", "name")
	configs := []*Configuration{
		DefaultConfig(),
		PrettyPrinting(),
		NewConfig().UseGeneratedNames(true).Build(),
		NewConfig().WithDialect(DialectNeo4j35).Build(),
	}
	expected := make([]string, len(configs))
	for i, c := range configs {
		expected[i] = New(WithCacheSize(0)).Render(stmt, c)
	}

	r := New()
	var wg sync.WaitGroup
	results := make([][]string, 16)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out := make([]string, 0, len(configs)*10)
			for i := 0; i < 10; i++ {
				for _, c := range configs {
					out = append(out, r.Render(stmt, c))
				}
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	for _, out := range results {
		require.Len(t, out, len(configs)*10)
		for i, s := range out {
			assert.Equal(t, expected[i%len(configs)], s)
		}
	}
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	f()
	return nil
}
