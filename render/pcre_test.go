package render

import (
	"testing"

	"github.com/sansecio/rx/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderWith(t *testing.T, r Renderer, input string) string {
	t.Helper()
	e, err := parser.Parse(input)
	require.NoError(t, err, "parsing %q", input)
	out, err := r.Render(e)
	require.NoError(t, err, "rendering %q", input)
	return out
}

var pcreCases = []struct {
	name  string
	input string
	want  string
}{
	{"char", `f`, `f`},
	{"string", `"f"`, `f`},
	{"whitespace", `whitespace`, `[\s]`},
	{"alpha", `alpha`, `[a-zA-Z]`},
	{"digit", `digit`, `[\d]`},
	{"alphanum", `alnum`, `[0-9a-zA-Z]`},
	{"hex", `hex`, `[0-9a-fA-F]`},
	{"lowercase", `lower`, `[a-z]`},
	{"uppercase", `upper`, `[A-Z]`},
	{"word string", `"foo"`, `foo`},
	{"word class", `word`, `[\w]`},
	{"line start", `(: bol "foo")`, `^foo`},
	{"line end", `(: "foo" eol)`, `foo$`},
	{"zero or more char", `(0+ f)`, `f*`},
	{"zero or more two chars", `(0+ f g)`, `(?:fg)*`},
	{"zero or more reluctant char", `(*? f)`, `f*?`},
	{"zero or more reluctant two chars", `(*? f g)`, `(?:fg)*?`},
	{"one or more char", `(1+ f)`, `f+`},
	{"one or more two chars", `(1+ f g)`, `(?:fg)+`},
	{"one or more reluctant char", `(+? f)`, `f+?`},
	{"one or more reluctant two chars", `(+? f g)`, `(?:fg)+?`},
	{"zero or one char", `(opt f)`, `f?`},
	{"zero or one two chars", `(opt f g)`, `(?:fg)?`},
	{"zero or one string", `(opt "foo")`, `(?:foo)?`},
	{"one or more escaped quote", `(1+ "\"")`, `\"+`},
	{"seq", `(seq a "bc" alpha)`, `abc[a-zA-Z]`},
	{"any char class", `(any lower)`, `[a-z]`},
	{"any char classes", `(any lower upper)`, `[a-zA-Z]`},
	{"any mixed", `(any digit "_-" x)`, `[\d_-x]`},
	{"not char", `(not f)`, `[^f]`},
	{"not string", `(not "abc")`, `[^abc]`},
	{"not range string", `(not "a-z")`, `[^a-z]`},
	{"not char class", `(not alpha)`, `[^a-zA-Z]`},
	{"not backslash char class", `(not digit)`, `[^\d]`},
	{"or string", `(or "foo")`, `foo`},
	{"or two strings", `(or "foo" "bar")`, `foo|bar`},
	{"or three strings", `(or "foo" "bar" "baz")`, `foo|bar|baz`},
	{"or string seq", `(or "foo" (: a word))`, `foo|a[\w]`},
	{"or in seq", `(seq (or "foo" "bar") (or "dingle" "bop"))`, `(?:foo|bar)(?:dingle|bop)`},
	{"charclass in seq", `(seq digit (0+ digit))`, `[\d](?:[\d]*)`},
	{"word boundary", `(seq (1+ digit) word-boundary (1+ digit))`, `(?:[\d]+)\b(?:[\d]+)`},
	{"not word boundary", `(seq (1+ digit) not-word-boundary (1+ digit))`, `(?:[\d]+)\B(?:[\d]+)`},
	{"exact count char", `(= 2 f)`, `(?:f){2}`},
	{"exact count string", `(= 2 "foo")`, `(?:foo){2}`},
	{"exact count char class", `(= 2 lower)`, `(?:[a-z]){2}`},
	{"exact count char classes", `(= 2 lower upper)`, `(?:[a-z][A-Z]){2}`},
	{"at least count char", `(>= 2 f)`, `(?:f){2,}`},
	{"at least count string", `(>= 2 "foo")`, `(?:foo){2,}`},
	{"at least count char class", `(>= 2 lower)`, `(?:[a-z]){2,}`},
	{"at least count char classes", `(>= 2 lower upper)`, `(?:[a-z][A-Z]){2,}`},
	{"between count char", `(** 2 5 f)`, `(?:f){2,5}`},
	{"between count string", `(** 2 5 "foo")`, `(?:foo){2,5}`},
	{"between count char class", `(** 2 5 lower)`, `(?:[a-z]){2,5}`},
	{"between count char classes", `(** 2 5 lower upper)`, `(?:[a-z][A-Z]){2,5}`},
	{"between inverted bounds", `(** 5 2 f)`, `(?:f){5,2}`},
	{"group", `(group lower)`, `([a-z])`},
	{"group two", `(group lower upper)`, `([a-z][A-Z])`},
	{"group n", `(group-n 5 lower)`, `(?<n5>[a-z])`},
	{"backref", `(backref 5)`, `\5`},
	{"named backref", `(backref "n5")`, `(?P=n5)`},
	{"group with alternation", `(group (or a b) c)`, `((?:a|b)c)`},
	{"group n with alternation", `(group-n 1 (or a b) c)`, `(?<n1>(?:a|b)c)`},
	{"zero or more with alternation", `(0+ (or a b) c)`, `(?:(?:a|b)c)*`},
	{"exact count with alternation", `(= 2 c (or a b))`, `(?:c(?:a|b)){2}`},
	{"single alternation in group", `(group (or a b))`, `(a|b)`},
	{"nested quantifiers", `(1+ (0+ f))`, `(?:f*)+`},
	{"seq in group in seq", `(seq bol (group (1+ digit)) eol)`, `^(?:([\d]+))$`},
}

func TestPCRE(t *testing.T) {
	for _, tt := range pcreCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderWith(t, PCRE{}, tt.input))
		})
	}
}
