package render

import "github.com/sansecio/rx/ast"

// PCRE renders Perl Compatible Regular Expressions.
type PCRE struct{}

var pcreDialect = &dialect{
	name:          "PCRE",
	numberedGroup: namedGroupOpen,
	namedBackref: func(label string) (string, error) {
		return "(?P=" + label + ")", nil
	},
}

// Render implements Renderer.
func (PCRE) Render(e ast.Expr) (string, error) {
	return pcreDialect.render(e)
}

// namedGroupOpen names an explicitly numbered group after its number, so
// group-n 5 becomes (?<n5>...).
func namedGroupOpen(n int) (string, error) {
	return "(?<" + ast.GroupName(n) + ">", nil
}
