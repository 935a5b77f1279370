package render

import "github.com/sansecio/rx/ast"

// PCRE2 renders PCRE2 syntax. It differs from PCRE in using the \k<name>
// form for named backreferences.
type PCRE2 struct{}

var pcre2Dialect = &dialect{
	name:          "PCRE2",
	numberedGroup: namedGroupOpen,
	namedBackref: func(label string) (string, error) {
		return `\k<` + label + ">", nil
	},
}

// Render implements Renderer.
func (PCRE2) Render(e ast.Expr) (string, error) {
	return pcre2Dialect.render(e)
}
