package expr_test

import (
	"fmt"

	"github.com/katalvlaran/montransform/expr"
)

// ExampleParse parses a post-stage expression once and evaluates it on a
// recorded slot.
func ExampleParse() {
	prog, err := expr.Parse("mon**2 - 1", expr.NewScope("mon"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	out, _ := prog.Eval(expr.Env{Size: 4, Vars: [][]float64{{0, 2, 4, 6}}})
	fmt.Println(prog, out)
	// Output:
	// ((mon ** 2) - 1) [-1 3 15 35]
}

// ExampleParse_syntaxError shows that assignment is rejected before evaluation.
func ExampleParse_syntaxError() {
	_, err := expr.Parse("a=3", expr.IndexedScope{Prefix: "x"})
	fmt.Println(err)
	// Output:
	// expr: syntax error: unexpected character '=' at offset 1 in "a=3"
}
