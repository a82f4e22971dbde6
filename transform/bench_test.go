// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
)

const (
	benchNodes = 76
	benchModes = 3
)

func benchState(b *testing.B, vars int) *ndarray.Array {
	b.Helper()
	a, err := ndarray.NewArray(vars, benchNodes, benchModes)
	if err != nil {
		b.Fatal(err)
	}
	for v := 0; v < vars; v++ {
		for n := 0; n < benchNodes; n++ {
			for m := 0; m < benchModes; m++ {
				_ = a.Set(v, n, m, float64(v+n+m)*0.01)
			}
		}
	}

	return a
}

func BenchmarkApplyPre(b *testing.B) {
	tr, err := transform.New("x0;x1;x0**2 - x1;sin(x0)*exp(-x1)", "", transform.WithStateVariables(2))
	if err != nil {
		b.Fatal(err)
	}
	state := benchState(b, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.ApplyPre(state); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApplyPost(b *testing.B) {
	tr, err := transform.New("x0", "mon**2 - 1")
	if err != nil {
		b.Fatal(err)
	}
	s := transform.Sample{Data: benchState(b, 4)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.ApplyPost(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := transform.New("V;W;V**2;W-V", ";;mon**2;exp(mon)", transform.WithVariableNames("V", "W")); err != nil {
			b.Fatal(err)
		}
	}
}
