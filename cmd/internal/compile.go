package internal

import (
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/wasilibs/go-re2"
)

// pythonBackref matches the (?P=name) backreference form, which regexp2
// spells \k<name>.
var pythonBackref = regexp.MustCompile(`\(\?P=([^)]+)\)`)

// CompileCheck reports whether pattern compiles in an engine close to the
// named dialect. JavaScript output goes through regexp2 in ECMAScript mode.
// Everything else tries RE2 first and falls back to regexp2, since RE2 has
// no backreferences.
func CompileCheck(dialect, pattern string) error {
	if dialect == "js" {
		_, err := regexp2.Compile(pattern, regexp2.ECMAScript)
		return err
	}
	if _, err := re2.Compile(pattern); err == nil {
		return nil
	}
	_, err := regexp2.Compile(pythonBackref.ReplaceAllString(pattern, `\k<$1>`), regexp2.None)
	return err
}
