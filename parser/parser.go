// Package parser reads rx descriptions into ast trees using participle.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/sansecio/rx/ast"
)

// Error is a parse failure at a position in the input.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Parser parses rx descriptions. It holds no per-parse state and may be
// shared between goroutines.
type Parser struct {
	parser *participle.Parser[description]
}

// New creates a new description parser.
func New() (*Parser, error) {
	lex, err := lexer.NewSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"(?:[^"\\]|\\["\\])*"`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Word", Pattern: `[^\s()]+`},
	})
	if err != nil {
		return nil, fmt.Errorf("building lexer: %w", err)
	}

	p, err := participle.Build[description](
		participle.Lexer(lex),
	)
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}

	return &Parser{parser: p}, nil
}

// Parse parses a complete description. Input left over after the first
// expression is an error.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	d, err := p.parser.ParseString("", input)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &Error{Pos: perr.Position(), Msg: perr.Message()}
		}
		return nil, err
	}
	return convertExpr(d.Expr)
}

var (
	sharedOnce   sync.Once
	sharedParser *Parser
	sharedErr    error
)

// Parse parses input with a package-level Parser built on first use.
func Parse(input string) (ast.Expr, error) {
	sharedOnce.Do(func() {
		sharedParser, sharedErr = New()
	})
	if sharedErr != nil {
		return nil, sharedErr
	}
	return sharedParser.Parse(input)
}

var assertions = map[string]ast.Assertion{
	"line-start":        ast.LineStart,
	"bol":               ast.LineStart,
	"line-end":          ast.LineEnd,
	"eol":               ast.LineEnd,
	"word-boundary":     ast.WordBoundary,
	"not-word-boundary": ast.NotWordBoundary,
}

var classes = map[string]ast.CharClass{
	"space":        ast.Whitespace,
	"whitespace":   ast.Whitespace,
	"white":        ast.Whitespace,
	"alpha":        ast.Alpha,
	"alphabetic":   ast.Alpha,
	"letter":       ast.Alpha,
	"digit":        ast.Digit,
	"numeric":      ast.Digit,
	"num":          ast.Digit,
	"alnum":        ast.AlphaNum,
	"alphanumeric": ast.AlphaNum,
	"xdigit":       ast.Hex,
	"hex-digit":    ast.Hex,
	"hex":          ast.Hex,
	"lower":        ast.LowerCase,
	"lower-case":   ast.LowerCase,
	"upper":        ast.UpperCase,
	"upper-case":   ast.UpperCase,
	"word":         ast.Word,
	"wordchar":     ast.Word,
}

func convertExpr(e *expression) (ast.Expr, error) {
	switch {
	case e.Form != nil:
		return convertForm(e.Form)
	case e.String != nil:
		return ast.String{Value: stripQuotes(*e.String)}, nil
	case e.Word != nil:
		if a, ok := assertions[*e.Word]; ok {
			return a, nil
		}
		return convertAtomWord(e.Pos, *e.Word)
	}
	return nil, errorf(e.Pos, "empty expression")
}

func convertAtom(e *expression) (ast.Atom, error) {
	switch {
	case e.Form != nil:
		return nil, errorf(e.Pos, "expected a character, string or class, found (%s ...)", e.Form.Keyword)
	case e.String != nil:
		return ast.String{Value: stripQuotes(*e.String)}, nil
	case e.Word != nil:
		return convertAtomWord(e.Pos, *e.Word)
	}
	return nil, errorf(e.Pos, "empty expression")
}

// convertAtomWord resolves a bare word: class keywords win over the
// single-character fallback.
func convertAtomWord(pos lexer.Position, w string) (ast.Atom, error) {
	if c, ok := classes[w]; ok {
		return c, nil
	}
	if utf8.RuneCountInString(w) == 1 {
		r, _ := utf8.DecodeRuneInString(w)
		return ast.Char{Value: r}, nil
	}
	return nil, errorf(pos, "unknown keyword %q", w)
}

func convertForm(f *form) (ast.Expr, error) {
	args := f.args()

	switch f.Keyword {
	case "seq", ":", "sequence", "and":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.Seq{Exprs: x} })
	case "or", "|":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.Or{Exprs: x} })
	case "zero-or-one", "opt", "optional":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.ZeroOrOne{Exprs: x} })
	case "zero-or-more", "0+", "*":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.ZeroOrMore{Exprs: x} })
	case "*?":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.ZeroOrMoreReluctant{Exprs: x} })
	case "one-or-more", "1+", "+":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.OneOrMore{Exprs: x} })
	case "+?":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.OneOrMoreReluctant{Exprs: x} })
	case "group", "submatch":
		return withExprs(f, args, func(x []ast.Expr) ast.Expr { return ast.Group{Exprs: x} })

	case "=":
		return withCounts(f, args, 1, func(n []int, x []ast.Expr) ast.Expr {
			return ast.Exactly{Count: n[0], Exprs: x}
		})
	case ">=":
		return withCounts(f, args, 1, func(n []int, x []ast.Expr) ast.Expr {
			return ast.AtLeast{Count: n[0], Exprs: x}
		})
	case "**":
		return withCounts(f, args, 2, func(n []int, x []ast.Expr) ast.Expr {
			return ast.Between{Low: n[0], High: n[1], Exprs: x}
		})
	case "group-n", "submatch-n":
		return withCounts(f, args, 1, func(n []int, x []ast.Expr) ast.Expr {
			return ast.GroupN{Number: n[0], Exprs: x}
		})

	case "not":
		if len(args) != 1 {
			return nil, errorf(f.Pos, "(not) takes exactly one atom, got %d operands", len(args))
		}
		atom, err := convertAtom(args[0])
		if err != nil {
			return nil, err
		}
		return ast.Not{Atom: atom}, nil

	case "any", "in", "char":
		atoms := make([]ast.Atom, 0, len(args))
		for _, a := range args {
			atom, err := convertAtom(a)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, atom)
		}
		if len(atoms) == 0 {
			return nil, errorf(f.Pos, "(%s) needs at least one atom", f.Keyword)
		}
		return ast.Any{Atoms: atoms}, nil

	case "backref":
		if len(args) != 1 {
			return nil, errorf(f.Pos, "(backref) takes exactly one reference, got %d operands", len(args))
		}
		ref := args[0]
		switch {
		case ref.String != nil:
			return ast.BackRef{Ref: stripQuotes(*ref.String)}, nil
		case ref.Word != nil && ast.IsNumericRef(*ref.Word):
			return ast.BackRef{Ref: *ref.Word}, nil
		}
		return nil, errorf(ref.Pos, "backreference must be a group number or a quoted name")
	}

	return nil, errorf(f.Pos, "unknown form %q", f.Keyword)
}

func (f *form) args() []*expression {
	args := make([]*expression, 0, len(f.Operands))
	for _, o := range f.Operands {
		if o.Expr != nil {
			args = append(args, o.Expr)
		}
	}
	return args
}

func withExprs(f *form, args []*expression, build func([]ast.Expr) ast.Expr) (ast.Expr, error) {
	if len(args) == 0 {
		return nil, errorf(f.Pos, "(%s) needs at least one expression", f.Keyword)
	}
	exprs := make([]ast.Expr, 0, len(args))
	for _, a := range args {
		e, err := convertExpr(a)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return build(exprs), nil
}

// withCounts reads n leading unsigned integers before the operand expressions.
func withCounts(f *form, args []*expression, n int, build func([]int, []ast.Expr) ast.Expr) (ast.Expr, error) {
	if len(args) < n {
		return nil, errorf(f.Pos, "(%s) needs %d count(s)", f.Keyword, n)
	}
	counts := make([]int, n)
	for i := range counts {
		c, err := parseCount(args[i])
		if err != nil {
			return nil, err
		}
		counts[i] = c
	}
	return withExprs(f, args[n:], func(x []ast.Expr) ast.Expr { return build(counts, x) })
}

func parseCount(e *expression) (int, error) {
	if e.Word == nil || !ast.IsNumericRef(*e.Word) {
		return 0, errorf(e.Pos, "expected an unsigned integer")
	}
	n, err := strconv.Atoi(*e.Word)
	if err != nil {
		return 0, errorf(e.Pos, "count %s out of range", *e.Word)
	}
	return n, nil
}

// stripQuotes removes the surrounding quotes of a String token. Escapes
// inside are kept as written.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[1 : len(s)-1]
}
