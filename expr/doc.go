// Package expr implements the small arithmetic language used by monitor
// transforms: a whitelisted grammar parsed once into an AST and interpreted
// elementwise over flat float64 slices.
//
// 🚀 Grammar
//
//	expr    := term   (('+' | '-') term)*
//	term    := unary  (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('**' unary)?          // right-associative, binds tighter than unary minus
//	primary := NUMBER | NAME | NAME '(' expr (',' expr)* ')' | '(' expr ')'
//
// Numbers accept decimal and scientific notation (2, 2.34, .5, 1e-3).
// Names are resolved at parse time against a Scope (variables), the
// constants pi and e, and the function whitelist returned by Functions.
// Anything else, including assignment ('a=3'), is rejected with ErrSyntax
// before any data is evaluated.
//
// ⚙️ Usage:
//
//	prog, err := expr.Parse("mon**2 - 1", expr.NewScope("mon"))
//	if err != nil {
//		// errors.Is(err, expr.ErrSyntax)
//	}
//	out, err := prog.Eval(expr.Env{Size: 4, Vars: [][]float64{{0, 1, 2, 3}}})
//	// out == [-1 0 3 8]
//
// Evaluation never writes into bound slices; every call allocates its
// result. Arithmetic follows IEEE-754: division by zero yields ±Inf or NaN
// and it is up to the caller to enforce a finite-value policy.
package expr
