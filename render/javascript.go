package render

import "github.com/sansecio/rx/ast"

// JavaScript renders RegExp source for JavaScript engines. Named capture
// groups and named backreferences are rejected.
type JavaScript struct{}

var jsDialect = &dialect{name: "JavaScript"}

func init() {
	jsDialect.numberedGroup = func(int) (string, error) {
		return "", jsDialect.unsupported("named capture groups")
	}
	jsDialect.namedBackref = func(string) (string, error) {
		return "", jsDialect.unsupported("non-numerical backrefs")
	}
}

// Render implements Renderer.
func (JavaScript) Render(e ast.Expr) (string, error) {
	return jsDialect.render(e)
}
