package renderer

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

// ErrConflictingParameters is raised when one parameter name is bound to
// two different values in the same statement.
var ErrConflictingParameters = errors.New("renderer: conflicting parameter values")

// frame tracks a composite whose children are being visited.
type frame struct {
	segment   cypher.Visitable
	children  int
	separator string
	suffix    string
	indented  bool
}

// renderingVisitor writes the text of one statement. It lives for a single
// pass; the configuration is only read.
type renderingVisitor struct {
	config  *Configuration
	dialect dialectStrategy
	catalog *nameCatalog
	names   *nameScope

	out    strings.Builder
	last   byte
	frames []frame
	depth  int
	params map[string]any
}

func newRenderingVisitor(config *Configuration, catalog *nameCatalog) *renderingVisitor {
	return &renderingVisitor{
		config:  config,
		dialect: strategyFor(config.Dialect()),
		catalog: catalog,
		names:   newNameScope(config.UseGeneratedNames(), catalog),
		params:  make(map[string]any),
	}
}

// Output returns the rendered statement.
func (r *renderingVisitor) Output() string { return r.out.String() }

// Enter implements cypher.Visitor.
func (r *renderingVisitor) Enter(segment cypher.Visitable) {
	if n := len(r.frames); n > 0 {
		parent := &r.frames[n-1]
		r.write(r.separatorBefore(parent, segment))
		parent.children++
	}
	r.frames = append(r.frames, r.enter(segment))
}

// Leave implements cypher.Visitor.
func (r *renderingVisitor) Leave(segment cypher.Visitable) {
	n := len(r.frames)
	if n == 0 || !sameSegment(r.frames[n-1].segment, segment) {
		panic(fmt.Errorf("%w: leaving %T that was not entered", cypher.ErrInconsistentTree, segment))
	}
	f := r.frames[n-1]
	r.frames = r.frames[:n-1]
	if f.indented {
		r.depth--
	}
	r.write(f.suffix)
}

func (r *renderingVisitor) separatorBefore(parent *frame, child cypher.Visitable) string {
	if _, ok := child.(*cypher.Where); ok {
		return r.clauseSeparator()
	}
	if parent.children == 0 {
		return ""
	}
	return parent.separator
}

func (r *renderingVisitor) enter(segment cypher.Visitable) frame {
	f := frame{segment: segment}
	switch s := segment.(type) {
	case *cypher.Statement:
		f.separator = r.clauseSeparator()
	case *cypher.Match:
		if s.IsOptional() {
			r.write("OPTIONAL ")
		}
		r.write("MATCH ")
		f.separator = ", "
	case *cypher.Where:
		r.write("WHERE ")
		f.separator = " AND "
	case *cypher.Return:
		r.write("RETURN ")
		if s.IsDistinct() {
			r.write("DISTINCT ")
		}
		f.separator = ", "
	case *cypher.CallSubquery:
		r.write("CALL {")
		f.suffix = "}"
		if r.config.PrettyPrint() {
			f.suffix = r.newline() + "}"
			f.indented = true
			r.depth++
			r.write(r.newline())
		}
	case *cypher.Node:
		r.write("(")
		if _, named := s.SymbolicName(); !named {
			r.writeIfReferenced(s.RequiredSymbolicName())
		}
		f.suffix = ")"
	case *cypher.NodeLabel:
		r.write(":" + escapeName(s.Value(), r.config.AlwaysEscapeNames()))
	case *cypher.RelationshipDetails:
		r.enterRelationshipDetails(s, &f)
	case *cypher.RelationshipTypes:
		types := s.Values()
		for i, t := range types {
			types[i] = escapeName(t, r.config.AlwaysEscapeNames())
		}
		r.write(":" + strings.Join(types, "|"))
	case *cypher.Properties:
		if r.last != '(' && r.last != '[' {
			r.write(" ")
		}
	case *cypher.MapExpression:
		r.write("{")
		f.separator = ", "
		f.suffix = "}"
	case *cypher.KeyValueMapEntry:
		r.write(escapeName(s.Key(), false) + ": ")
	case *cypher.SymbolicName:
		r.write(escapeName(r.names.symbolicName(s), false))
	case *cypher.Property:
		f.suffix = "." + escapeName(s.Name(), false)
	case *cypher.Comparison:
		f.separator = " " + string(s.Operator()) + " "
	case *cypher.FunctionInvocation:
		form := r.dialect.invocation(s.Name(), len(s.Arguments()))
		r.write(form.open)
		f.separator = form.separator
		f.suffix = form.close
	case *cypher.AliasedExpression:
		f.separator = " AS "
	case *cypher.Parameter:
		r.writeParameter(s)
	case *cypher.Literal:
		r.write(formatLiteral(s.Value()))
	}
	return f
}

func (r *renderingVisitor) enterRelationshipDetails(d *cypher.RelationshipDetails, f *frame) {
	left, right := "-", "-"
	switch d.Direction() {
	case cypher.DirectionLeftToRight:
		right = "->"
	case cypher.DirectionRightToLeft:
		left = "<-"
	}
	_, named := d.SymbolicName()
	referenced := !named && r.catalog.isReferenced(d.RequiredSymbolicName())
	if !named && !referenced && d.Types() == nil && d.Properties() == nil {
		r.write(left)
		f.suffix = right
		return
	}
	r.write(left + "[")
	if referenced {
		r.write(escapeName(r.names.symbolicName(d.RequiredSymbolicName()), false))
	}
	f.suffix = "]" + right
}

func (r *renderingVisitor) writeIfReferenced(name *cypher.SymbolicName) {
	if r.catalog.isReferenced(name) {
		r.write(escapeName(r.names.symbolicName(name), false))
	}
}

func (r *renderingVisitor) writeParameter(p *cypher.Parameter) {
	name := r.names.parameterName(p)
	r.write(r.dialect.parameter(name))
	value, bound := p.Value()
	if !bound {
		return
	}
	if existing, seen := r.params[name]; seen && !reflect.DeepEqual(existing, value) {
		panic(fmt.Errorf("%w: %s is bound to %v and %v", ErrConflictingParameters, name, existing, value))
	}
	r.params[name] = value
}

func (r *renderingVisitor) clauseSeparator() string {
	if r.config.PrettyPrint() {
		return r.newline()
	}
	return " "
}

func (r *renderingVisitor) newline() string {
	return "\n" + r.indent(r.depth)
}

func (r *renderingVisitor) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	if r.config.IndentStyle() == IndentStyleTab {
		return strings.Repeat("\t", depth)
	}
	if r.config.IndentSize() <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*r.config.IndentSize())
}

func (r *renderingVisitor) write(s string) {
	if s == "" {
		return
	}
	r.out.WriteString(s)
	r.last = s[len(s)-1]
}

func sameSegment(a, b cypher.Visitable) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return true
	}
	return a == b
}

func formatLiteral(v any) string {
	return formatValue(reflect.ValueOf(v))
}

func formatValue(rv reflect.Value) string {
	if !rv.IsValid() {
		return "NULL"
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if rv.IsNil() {
			return "NULL"
		}
		return formatValue(rv.Elem())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return quoteString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatValue(rv.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(rv.Interface())
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
