// Package parser checks that rendered Cypher is well formed. It covers the
// subset of the language the renderer produces and does not build a
// statement tree from the text.
package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

// ErrMultipleStatements is returned for input holding more than one statement.
var ErrMultipleStatements = errors.New("multiple statements not allowed")

var cypherLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(?:[^'\\]|\\.)*'`},
	{Name: "EscapedIdent", Pattern: "`(?:[^`]|``)*`"},
	{Name: "Param", Pattern: `\$` + cypher.IdentifierPattern},
	{Name: "Float", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: cypher.IdentifierPattern},
	{Name: "Operators", Pattern: `<-|->|<>|>=|<=|=|<|>`},
	{Name: "Punct", Pattern: `[(){}\[\],.:|;-]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type Parser struct {
	parser *participle.Parser[Statement]
}

func New() (*Parser, error) {
	parser, err := participle.Build[Statement](
		participle.Lexer(cypherLexer),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a single statement into its grammar tree.
func (p *Parser) Parse(input string) (*Statement, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	statement, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return statement, nil
}

// Validate reports whether input is a well formed statement.
func (p *Parser) Validate(input string) error {
	_, err := p.Parse(input)
	return err
}

// validateInput rejects statement separators outside of string literals and
// escaped names.
func validateInput(input string) error {
	var (
		quote   rune
		escaped bool
	)
	for _, r := range input {
		switch {
		case escaped:
			escaped = false
		case quote == '\'' && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '`':
			quote = r
		case r == ';':
			return ErrMultipleStatements
		}
	}
	return nil
}
