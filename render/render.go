// Package render turns rx expression trees into regular-expression text
// for a target dialect.
package render

import (
	"errors"
	"fmt"

	"github.com/sansecio/rx/ast"
)

// Renderer renders an expression tree in one output format. Renderers are
// stateless and safe for concurrent use.
type Renderer interface {
	Render(e ast.Expr) (string, error)
}

// ErrFeatureNotSupported matches every FeatureNotSupportedError.
var ErrFeatureNotSupported = errors.New("feature not supported")

// FeatureNotSupportedError is returned when a dialect cannot express a
// construct present in the tree.
type FeatureNotSupportedError struct {
	Dialect string
	Feature string
}

func (e *FeatureNotSupportedError) Error() string {
	return fmt.Sprintf("feature not supported by %s output: %s", e.Dialect, e.Feature)
}

func (e *FeatureNotSupportedError) Is(target error) bool {
	return target == ErrFeatureNotSupported
}
