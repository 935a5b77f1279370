package parser

import "github.com/alecthomas/participle/v2/lexer"

// Grammar structs for participle parser.
// Whitespace is a real token here: it separates a form's keyword from each
// of its operands, so it is matched explicitly instead of being elided.

type description struct {
	Expr *expression `parser:"Whitespace? @@ Whitespace?"`
}

type expression struct {
	Pos lexer.Position

	Form   *form   `parser:"( '(' Whitespace? @@ ')'"`
	String *string `parser:"| @String"`
	Word   *string `parser:"| @Word )"`
}

type form struct {
	Pos lexer.Position

	Keyword  string     `parser:"@Word"`
	Operands []*operand `parser:"@@+"`
}

// operand is a separating whitespace run followed by an expression. The
// whitespace before a closing paren parses as an operand with no expression.
type operand struct {
	Expr *expression `parser:"Whitespace @@?"`
}
