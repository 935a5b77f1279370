package parser_test

import (
	"fmt"

	"github.com/sansecio/rx/ast"
	"github.com/sansecio/rx/parser"
)

func ExampleParser_Parse() {
	p, err := parser.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	expr, err := p.Parse(`(seq bol (1+ digit) eol)`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seq := expr.(ast.Seq)
	fmt.Printf("Parsed sequence of %d expression(s)\n", len(seq.Exprs))
	fmt.Printf("First: %v\n", seq.Exprs[0])
	// Output:
	// Parsed sequence of 3 expression(s)
	// First: LineStart
}
