package rx_test

import (
	"fmt"

	"github.com/sansecio/rx"
	"github.com/sansecio/rx/render"
)

func ExampleConvert() {
	out, err := rx.Convert(`(seq bol (1+ digit) eol)`, render.PCRE{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)

	_, err = rx.Convert(`(group-n 1 digit)`, render.JavaScript{})
	fmt.Println(err)
	// Output:
	// ^(?:[\d]+)$
	// feature not supported by JavaScript output: named capture groups
}
