// Package rx converts rx descriptions into regular expressions.
//
// A description is an S-expression such as
//
//	(seq bol (1+ digit) eol)
//
// which the PCRE renderer turns into ^(?:[\d]+)$.
package rx

import (
	"errors"
	"fmt"

	"github.com/sansecio/rx/ast"
	"github.com/sansecio/rx/parser"
	"github.com/sansecio/rx/render"
)

// ErrParse is returned, wrapped around the positioned parser error, when
// the description does not match the grammar.
var ErrParse = errors.New("failed to parse input")

// ErrUnknownDialect is returned by ConvertDialect for unregistered names.
var ErrUnknownDialect = errors.New("unknown output format")

// Parse parses source into an expression tree.
func Parse(source string) (ast.Expr, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return expr, nil
}

// Convert parses source and renders it with r. Render errors are returned
// unchanged.
func Convert(source string, r render.Renderer) (string, error) {
	expr, err := Parse(source)
	if err != nil {
		return "", err
	}
	return r.Render(expr)
}

// ConvertDialect converts source with the renderer registered under name.
func ConvertDialect(source, name string) (string, error) {
	r, ok := render.Get(name)
	if !ok {
		return "", fmt.Errorf("%w %q (available: %v)", ErrUnknownDialect, name, render.Names())
	}
	return Convert(source, r)
}
