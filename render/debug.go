package render

import (
	"github.com/k0kubun/pp/v3"
	"github.com/sansecio/rx/ast"
)

// Debug dumps the expression tree. The format is for people and may change.
type Debug struct{}

// Render implements Renderer. It never fails.
func (Debug) Render(e ast.Expr) (string, error) {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(e), nil
}
