package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sansecio/rx/ast"
)

// dialect holds the parts of regex output that differ between engines.
// Everything else is shared by the PCRE, PCRE2 and JavaScript renderers.
type dialect struct {
	name string

	// numberedGroup returns the opening of an explicitly numbered group.
	numberedGroup func(n int) (string, error)
	// namedBackref renders a backreference to a non-numeric label.
	namedBackref func(label string) (string, error)
}

func (d *dialect) unsupported(feature string) error {
	return &FeatureNotSupportedError{Dialect: d.name, Feature: feature}
}

func (d *dialect) render(e ast.Expr) (string, error) {
	var b strings.Builder
	if err := d.write(&b, e); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (d *dialect) write(b *strings.Builder, e ast.Expr) error {
	switch n := e.(type) {
	case ast.Char:
		b.WriteRune(n.Value)
	case ast.String:
		b.WriteString(n.Value)
	case ast.CharClass:
		b.WriteByte('[')
		b.WriteString(classInterior(n))
		b.WriteByte(']')
	case ast.Assertion:
		b.WriteString(assertionText(n))

	case ast.Seq:
		for _, x := range n.Exprs {
			if isAtomOrAssertion(x) {
				if err := d.write(b, x); err != nil {
					return err
				}
				continue
			}
			if err := d.nonCapturing(b, []ast.Expr{x}); err != nil {
				return err
			}
		}
	case ast.Or:
		for i, x := range n.Exprs {
			if i > 0 {
				b.WriteByte('|')
			}
			if err := d.write(b, x); err != nil {
				return err
			}
		}

	case ast.ZeroOrOne:
		return d.quantify(b, n.Exprs, "?")
	case ast.ZeroOrMore:
		return d.quantify(b, n.Exprs, "*")
	case ast.ZeroOrMoreReluctant:
		return d.quantify(b, n.Exprs, "*?")
	case ast.OneOrMore:
		return d.quantify(b, n.Exprs, "+")
	case ast.OneOrMoreReluctant:
		return d.quantify(b, n.Exprs, "+?")
	case ast.Exactly:
		return d.count(b, n.Exprs, "{"+strconv.Itoa(n.Count)+"}")
	case ast.AtLeast:
		return d.count(b, n.Exprs, "{"+strconv.Itoa(n.Count)+",}")
	case ast.Between:
		return d.count(b, n.Exprs, "{"+strconv.Itoa(n.Low)+","+strconv.Itoa(n.High)+"}")

	case ast.Not:
		b.WriteString("[^")
		if err := d.writeSetMember(b, n.Atom); err != nil {
			return err
		}
		b.WriteByte(']')
	case ast.Any:
		b.WriteByte('[')
		for _, a := range n.Atoms {
			if err := d.writeSetMember(b, a); err != nil {
				return err
			}
		}
		b.WriteByte(']')

	case ast.Group:
		b.WriteByte('(')
		if err := d.writeAll(b, n.Exprs); err != nil {
			return err
		}
		b.WriteByte(')')
	case ast.GroupN:
		open, err := d.numberedGroup(n.Number)
		if err != nil {
			return err
		}
		b.WriteString(open)
		if err := d.writeAll(b, n.Exprs); err != nil {
			return err
		}
		b.WriteByte(')')
	case ast.BackRef:
		if ast.IsNumericRef(n.Ref) {
			b.WriteByte('\\')
			b.WriteString(n.Ref)
			return nil
		}
		ref, err := d.namedBackref(n.Ref)
		if err != nil {
			return err
		}
		b.WriteString(ref)

	default:
		return fmt.Errorf("%s output: unknown expression type %T", d.name, e)
	}
	return nil
}

// writeAll concatenates exprs. When there is more than one, an alternation
// among them is grouped so it does not take in its neighbours.
func (d *dialect) writeAll(b *strings.Builder, exprs []ast.Expr) error {
	for _, x := range exprs {
		if or, ok := x.(ast.Or); ok && len(exprs) > 1 && len(or.Exprs) > 1 {
			if err := d.nonCapturing(b, []ast.Expr{x}); err != nil {
				return err
			}
			continue
		}
		if err := d.write(b, x); err != nil {
			return err
		}
	}
	return nil
}

func (d *dialect) nonCapturing(b *strings.Builder, exprs []ast.Expr) error {
	b.WriteString("(?:")
	if err := d.writeAll(b, exprs); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// quantify applies a postfix operator, grouping the body unless it is a
// single regex unit.
func (d *dialect) quantify(b *strings.Builder, exprs []ast.Expr, suffix string) error {
	if len(exprs) == 1 && isUnit(exprs[0]) {
		if err := d.write(b, exprs[0]); err != nil {
			return err
		}
		b.WriteString(suffix)
		return nil
	}
	if err := d.nonCapturing(b, exprs); err != nil {
		return err
	}
	b.WriteString(suffix)
	return nil
}

// count applies a counted repetition. The body is always grouped.
func (d *dialect) count(b *strings.Builder, exprs []ast.Expr, suffix string) error {
	if err := d.nonCapturing(b, exprs); err != nil {
		return err
	}
	b.WriteString(suffix)
	return nil
}

// writeSetMember writes an atom inside a bracket expression, where a class
// contributes only its interior.
func (d *dialect) writeSetMember(b *strings.Builder, a ast.Atom) error {
	if c, ok := a.(ast.CharClass); ok {
		b.WriteString(classInterior(c))
		return nil
	}
	return d.write(b, a)
}

func isAtomOrAssertion(e ast.Expr) bool {
	switch e.(type) {
	case ast.Atom, ast.Assertion:
		return true
	}
	return false
}

// isUnit reports whether e renders as one regex element that a postfix
// operator binds to as a whole.
func isUnit(e ast.Expr) bool {
	switch n := e.(type) {
	case ast.Char, ast.CharClass, ast.Assertion:
		return true
	case ast.String:
		return utf8.RuneCountInString(n.Value) == 1 || (len(n.Value) == 2 && n.Value[0] == '\\')
	}
	return false
}

func classInterior(c ast.CharClass) string {
	switch c {
	case ast.Whitespace:
		return `\s`
	case ast.Alpha:
		return "a-zA-Z"
	case ast.Digit:
		return `\d`
	case ast.AlphaNum:
		return "0-9a-zA-Z"
	case ast.Hex:
		return "0-9a-fA-F"
	case ast.LowerCase:
		return "a-z"
	case ast.UpperCase:
		return "A-Z"
	case ast.Word:
		return `\w`
	}
	panic(fmt.Sprintf("render: unknown character class %d", int(c)))
}

func assertionText(a ast.Assertion) string {
	switch a {
	case ast.LineStart:
		return "^"
	case ast.LineEnd:
		return "$"
	case ast.WordBoundary:
		return `\b`
	case ast.NotWordBoundary:
		return `\B`
	}
	panic(fmt.Sprintf("render: unknown assertion %d", int(a)))
}
