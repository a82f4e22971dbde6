// SPDX-License-Identifier: MIT

package transform_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
)

// ExampleNew builds a monitor transform over named model variables and
// applies both stages to one state.
func ExampleNew() {
	tr, err := transform.New("V;W;V**2;W-V", ";;;mon*10", transform.WithVariableNames("V", "W"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	state, _ := ndarray.FromSlice(2, 2, 1, []float64{1, 2, 3, 5})

	pre, _ := tr.ApplyPre(state)
	post, _ := tr.ApplyPost(transform.Sample{Time: 0.5, Data: pre})
	fmt.Print(post.Data)
	// Output:
	// [1, 2]
	// [3, 5]
	// [1, 4]
	// [20, 30]
}

// ExampleNew_errors shows the construction-time error classes.
func ExampleNew_errors() {
	_, err := transform.New("x0;x1", "mon;mon;mon")
	fmt.Println(errors.Is(err, transform.ErrShape))

	_, err = transform.New(";;", ";;")
	fmt.Println(errors.Is(err, transform.ErrSyntax))

	_, err = transform.New("a=3", "")
	fmt.Println(errors.Is(err, transform.ErrSyntax))
	// Output:
	// true
	// true
	// true
}

func ExampleSplit() {
	list, _ := transform.Split("2.34*(x0+1.5);;", ";")
	fmt.Printf("%d %q\n", len(list), list)
	// Output:
	// 3 ["2.34*(x0+1.5)" "" ""]
}
