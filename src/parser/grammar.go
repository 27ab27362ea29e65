package parser

// Statement is the root of the grammar: one or more clauses.
type Statement struct {
	Clauses []*Clause `@@+`
}

type Clause struct {
	Match  *MatchClause  `  @@`
	Call   *CallClause   `| @@`
	Return *ReturnClause `| @@`
}

type MatchClause struct {
	Optional bool          `@"OPTIONAL"?`
	Patterns []*Pattern    `"MATCH" @@ ("," @@)*`
	Where    []*Expression `("WHERE" @@ ("AND" @@)*)?`
}

type CallClause struct {
	Body *Statement `"CALL" "{" @@ "}"`
}

type ReturnClause struct {
	Distinct bool          `"RETURN" @"DISTINCT"?`
	Items    []*ReturnItem `@@ ("," @@)*`
}

type ReturnItem struct {
	Value *Expression `@@`
	Alias *Name       `("AS" @@)?`
}

type Pattern struct {
	Start *NodePattern   `@@`
	Links []*PatternLink `@@*`
}

type PatternLink struct {
	Relationship *RelationshipPattern `@@`
	Node         *NodePattern         `@@`
}

type NodePattern struct {
	Variable   *Name       `"(" @@?`
	Labels     []*Name     `(":" @@)*`
	Properties *MapLiteral `@@? ")"`
}

type RelationshipPattern struct {
	Incoming bool                `( @"<-" | "-" )`
	Detail   *RelationshipDetail `("[" @@ "]")?`
	Outgoing bool                `( @"->" | "-" )`
}

type RelationshipDetail struct {
	Variable   *Name       `@@?`
	Types      []*Name     `(":" @@ ("|" @@)*)?`
	Properties *MapLiteral `@@?`
}

// Name is an identifier, either plain or in backticks.
type Name struct {
	Plain   string `  @Ident`
	Escaped string `| @EscapedIdent`
}

type Expression struct {
	Left      *Term  `@@`
	Operator  string `( @("=" | "<>" | "<=" | ">=" | "<" | ">")`
	Right     *Term  `  @@ )?`
	IsNotNull bool   `( @"IS" "NOT" "NULL" )?`
}

// Term is a single operand. Legacy holds a parameter written as {name}.
type Term struct {
	Literal   *Literal     `  @@`
	Parameter *string      `| @Param`
	Legacy    *string      `| "{" @Ident "}"`
	Map       *MapLiteral  `| @@`
	List      *ListLiteral `| @@`
	Reference *Reference   `| @@`
}

type Literal struct {
	String *string  `  @String`
	Float  *float64 `| @Float`
	Int    *int64   `| @Int`
	Bool   *string  `| @("TRUE" | "FALSE")`
	Null   bool     `| @"NULL"`
}

// Reference is a variable, a property lookup or a function call.
type Reference struct {
	Parts []*Name    `@@ ("." @@)*`
	Call  *Arguments `@@?`
}

type Arguments struct {
	Values []*Expression `"(" ( @@ ( "," @@ )* )? ")"`
}

type MapLiteral struct {
	Entries []*MapEntry `"{" ( @@ ( "," @@ )* )? "}"`
}

type MapEntry struct {
	Key   *Name       `@@ ":"`
	Value *Expression `@@`
}

type ListLiteral struct {
	Values []*Expression `"[" ( @@ ( "," @@ )* )? "]"`
}
