// Package ast defines the expression tree produced by the rx parser.
package ast

import "strconv"

// Expr represents a node of a parsed description.
type Expr interface {
	exprNode()
}

// Atom is a single static element. Every Atom is also an Expr.
type Atom interface {
	Expr
	atomNode()
}

// Char represents a single literal character.
type Char struct {
	Value rune
}

func (Char) exprNode() {}
func (Char) atomNode() {}

// String represents a quoted literal. Value holds the text between the
// quotes as written, so escaped quotes and backslashes stay escaped.
type String struct {
	Value string
}

func (String) exprNode() {}
func (String) atomNode() {}

// CharClass is one of the predefined character classes.
type CharClass int

const (
	Whitespace CharClass = iota
	Alpha
	Digit
	AlphaNum
	Hex
	LowerCase
	UpperCase
	Word
)

var classNames = [...]string{
	Whitespace: "Whitespace",
	Alpha:      "Alpha",
	Digit:      "Digit",
	AlphaNum:   "AlphaNum",
	Hex:        "Hex",
	LowerCase:  "LowerCase",
	UpperCase:  "UpperCase",
	Word:       "Word",
}

func (c CharClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "CharClass(?)"
	}
	return classNames[c]
}

func (CharClass) exprNode() {}
func (CharClass) atomNode() {}

// Assertion is a zero-width condition.
type Assertion int

const (
	LineStart Assertion = iota
	LineEnd
	WordBoundary
	NotWordBoundary
)

var assertionNames = [...]string{
	LineStart:       "LineStart",
	LineEnd:         "LineEnd",
	WordBoundary:    "WordBoundary",
	NotWordBoundary: "NotWordBoundary",
}

func (a Assertion) String() string {
	if a < 0 || int(a) >= len(assertionNames) {
		return "Assertion(?)"
	}
	return assertionNames[a]
}

func (Assertion) exprNode() {}

// Seq matches all expressions in order.
type Seq struct {
	Exprs []Expr
}

func (Seq) exprNode() {}

// Or matches any single one of the expressions.
type Or struct {
	Exprs []Expr
}

func (Or) exprNode() {}

// ZeroOrOne matches the concatenation of Exprs optionally.
type ZeroOrOne struct {
	Exprs []Expr
}

func (ZeroOrOne) exprNode() {}

// ZeroOrMore is greedy zero-or-more repetition.
type ZeroOrMore struct {
	Exprs []Expr
}

func (ZeroOrMore) exprNode() {}

// ZeroOrMoreReluctant is non-greedy zero-or-more repetition.
type ZeroOrMoreReluctant struct {
	Exprs []Expr
}

func (ZeroOrMoreReluctant) exprNode() {}

// OneOrMore is greedy one-or-more repetition.
type OneOrMore struct {
	Exprs []Expr
}

func (OneOrMore) exprNode() {}

// OneOrMoreReluctant is non-greedy one-or-more repetition.
type OneOrMoreReluctant struct {
	Exprs []Expr
}

func (OneOrMoreReluctant) exprNode() {}

// Exactly repeats Exprs exactly Count times.
type Exactly struct {
	Count int
	Exprs []Expr
}

func (Exactly) exprNode() {}

// AtLeast repeats Exprs Count or more times.
type AtLeast struct {
	Count int
	Exprs []Expr
}

func (AtLeast) exprNode() {}

// Between repeats Exprs from Low to High times. Low <= High is not enforced.
type Between struct {
	Low   int
	High  int
	Exprs []Expr
}

func (Between) exprNode() {}

// Not matches any character not matched by Atom.
type Not struct {
	Atom Atom
}

func (Not) exprNode() {}

// Any matches a single character from the union of Atoms.
type Any struct {
	Atoms []Atom
}

func (Any) exprNode() {}

// Group is an auto-numbered capturing group.
type Group struct {
	Exprs []Expr
}

func (Group) exprNode() {}

// GroupN is an explicitly numbered capturing group.
type GroupN struct {
	Number int
	Exprs  []Expr
}

func (GroupN) exprNode() {}

// BackRef refers to text matched by an earlier group. Ref is either all
// decimal digits or a quoted label as written.
type BackRef struct {
	Ref string
}

func (BackRef) exprNode() {}

// IsNumericRef reports whether ref is a non-empty run of ASCII digits.
func IsNumericRef(ref string) bool {
	if ref == "" {
		return false
	}
	for i := 0; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return false
		}
	}
	return true
}

// GroupName returns the name a numbered group is emitted under.
func GroupName(n int) string {
	return "n" + strconv.Itoa(n)
}
