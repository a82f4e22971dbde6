package expr

import (
	"math"
	"sort"
)

// function is one whitelisted callable. Exactly one of f1/f2 is set and
// arity matches it.
type function struct {
	arity int
	f1    func(float64) float64
	f2    func(a, b float64) float64
}

// builtins is the function whitelist. Names follow numpy (arcsin, power,
// maximum) since that is what simulator users already write.
var builtins = map[string]function{
	"exp":     {arity: 1, f1: math.Exp},
	"log":     {arity: 1, f1: math.Log},
	"log10":   {arity: 1, f1: math.Log10},
	"log2":    {arity: 1, f1: math.Log2},
	"sqrt":    {arity: 1, f1: math.Sqrt},
	"abs":     {arity: 1, f1: math.Abs},
	"sin":     {arity: 1, f1: math.Sin},
	"cos":     {arity: 1, f1: math.Cos},
	"tan":     {arity: 1, f1: math.Tan},
	"arcsin":  {arity: 1, f1: math.Asin},
	"arccos":  {arity: 1, f1: math.Acos},
	"arctan":  {arity: 1, f1: math.Atan},
	"sinh":    {arity: 1, f1: math.Sinh},
	"cosh":    {arity: 1, f1: math.Cosh},
	"tanh":    {arity: 1, f1: math.Tanh},
	"floor":   {arity: 1, f1: math.Floor},
	"ceil":    {arity: 1, f1: math.Ceil},
	"sign":    {arity: 1, f1: sign},
	"power":   {arity: 2, f2: math.Pow},
	"arctan2": {arity: 2, f2: math.Atan2},
	"maximum": {arity: 2, f2: math.Max},
	"minimum": {arity: 2, f2: math.Min},
}

// constants are folded into literals at parse time unless the scope
// shadows them.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// sign mirrors numpy.sign: -1, 0 or +1, NaN stays NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // 0, -0 or NaN
	}
}

// Functions returns the sorted names of every whitelisted function.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
