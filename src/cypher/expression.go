package cypher

import "fmt"

// Operator is a binary comparison operator.
type Operator string

// Supported comparison operators.
const (
	OpEqual            Operator = "="
	OpNotEqual         Operator = "<>"
	OpLessThan         Operator = "<"
	OpLessThanEqual    Operator = "<="
	OpGreaterThan      Operator = ">"
	OpGreaterThanEqual Operator = ">="
)

func (o Operator) valid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual:
		return true
	}
	return false
}

// Comparison represents a comparison expression (e.g., a = b).
type Comparison struct {
	left     Expression
	operator Operator
	right    Expression
}

// Compare creates left op right. Operands that are not expressions become literals.
func Compare(left any, op Operator, right any) *Comparison {
	if !op.valid() {
		panic(fmt.Errorf("%w: unknown operator %q", ErrInvalidArgument, string(op)))
	}
	return &Comparison{left: asExpression(left), operator: op, right: asExpression(right)}
}

// Left returns the left operand.
func (c *Comparison) Left() Expression { return c.left }

// Operator returns the comparison operator.
func (c *Comparison) Operator() Operator { return c.operator }

// Right returns the right operand.
func (c *Comparison) Right() Expression { return c.right }

// Accept implements Visitable.
func (c *Comparison) Accept(v Visitor) {
	v.Enter(c)
	c.left.Accept(v)
	c.right.Accept(v)
	v.Leave(c)
}

// FunctionInvocation represents a function call (e.g., count(n)). How the
// call is spelled can depend on the target dialect.
type FunctionInvocation struct {
	name      string
	arguments []Expression
}

// Function creates a call of name with the given arguments.
func Function(name string, arguments ...any) *FunctionInvocation {
	mustNotBeEmpty("function name", name)
	args := make([]Expression, len(arguments))
	for i, a := range arguments {
		args[i] = asExpression(a)
	}
	return &FunctionInvocation{name: name, arguments: args}
}

// Count creates count(expression). Pattern elements are counted by name.
func Count(expression Expression) *FunctionInvocation {
	return Function("count", nameOrExpression(expression))
}

// ID creates id(element).
func ID(element Named) *FunctionInvocation {
	mustHave("element", element)
	return Function("id", element.RequiredSymbolicName())
}

// Exists creates exists(property).
func Exists(property *Property) *FunctionInvocation {
	mustHave("property", property)
	return Function("exists", property)
}

// Distance creates distance(a, b) between two points.
func Distance(a, b Expression) *FunctionInvocation {
	return Function("distance", a, b)
}

// Name returns the function name as written by the caller.
func (f *FunctionInvocation) Name() string { return f.name }

// Arguments returns the call arguments.
func (f *FunctionInvocation) Arguments() []Expression {
	return append([]Expression(nil), f.arguments...)
}

// Accept implements Visitable.
func (f *FunctionInvocation) Accept(v Visitor) {
	v.Enter(f)
	visitAll(v, f.arguments)
	v.Leave(f)
}

// AliasedExpression represents an expression with an alias (e.g., expr AS alias).
type AliasedExpression struct {
	expression Expression
	alias      *SymbolicName
}

// As aliases expression.
func As(expression Expression, alias string) *AliasedExpression {
	mustHave("expression", expression)
	return &AliasedExpression{expression: nameOrExpression(expression), alias: Name(alias)}
}

// Expression returns the aliased expression.
func (a *AliasedExpression) Expression() Expression { return a.expression }

// Alias returns the alias.
func (a *AliasedExpression) Alias() *SymbolicName { return a.alias }

// Accept implements Visitable.
func (a *AliasedExpression) Accept(v Visitor) {
	v.Enter(a)
	a.expression.Accept(v)
	a.alias.Accept(v)
	v.Leave(a)
}

// nameOrExpression replaces pattern elements with a reference to their name.
func nameOrExpression(e Expression) Expression {
	mustHave("expression", e)
	if p, ok := e.(PatternElement); ok {
		return p.RequiredSymbolicName()
	}
	return e
}
